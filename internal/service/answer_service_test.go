package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFunctionAnswerer_Answer(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"answer": "The report covers Q3."})
	}))
	defer server.Close()

	answerer := NewFunctionAnswerer(server.URL, "test-key", "answer-question")

	answer, err := answerer.Answer(context.Background(), "What does the report cover?", "Q3 results ...")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if answer != "The report covers Q3." {
		t.Errorf("Expected answer 'The report covers Q3.', got %q", answer)
	}
	if gotPath != "/functions/v1/answer-question" {
		t.Errorf("Expected function path, got %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if gotBody["question"] != "What does the report cover?" {
		t.Errorf("Expected question in request body, got %q", gotBody["question"])
	}
	if gotBody["documentText"] != "Q3 results ..." {
		t.Errorf("Expected document text in request body, got %q", gotBody["documentText"])
	}
}

func TestFunctionAnswerer_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	answerer := NewFunctionAnswerer(server.URL, "test-key", "answer-question")

	if _, err := answerer.Answer(context.Background(), "question", "text"); err == nil {
		t.Error("Expected error for non-200 response")
	}
}

func TestFunctionAnswerer_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	answerer := NewFunctionAnswerer(server.URL, "test-key", "answer-question")

	if _, err := answerer.Answer(context.Background(), "question", "text"); err == nil {
		t.Error("Expected error for malformed response body")
	}
}

func TestFunctionAnswerer_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	answerer := NewFunctionAnswerer(server.URL, "test-key", "answer-question")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := answerer.Answer(ctx, "question", "text"); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
)

// FunctionAnswerer invokes a remote answer function (a Supabase Edge
// Function) with the question and the full document text. The function is a
// black box; only its request/response shape is fixed here.
type FunctionAnswerer struct {
	baseURL      string
	apiKey       string
	functionName string
	httpClient   *http.Client
}

// NewFunctionAnswerer creates an answer client backed by a remote function.
func NewFunctionAnswerer(baseURL, apiKey, functionName string) *FunctionAnswerer {
	return &FunctionAnswerer{
		baseURL:      baseURL,
		apiKey:       apiKey,
		functionName: functionName,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Answer posts {question, documentText} and expects {answer} in return.
func (a *FunctionAnswerer) Answer(ctx context.Context, question string, documentText string) (string, error) {
	url := fmt.Sprintf("%s/functions/v1/%s", a.baseURL, a.functionName)

	requestBody := map[string]string{
		"question":     question,
		"documentText": documentText,
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("answer function request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("answer function returned status: %d", resp.StatusCode)
	}

	var result struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode answer response: %w", err)
	}

	return result.Answer, nil
}

// VertexAnswerer answers questions with Gemini on Vertex AI, prompting the
// model with the full document text as context.
type VertexAnswerer struct {
	genaiClient *genai.Client
}

// NewVertexAnswerer creates an answer client backed by Vertex AI.
func NewVertexAnswerer(ctx context.Context, projectID, location string) (*VertexAnswerer, error) {
	if projectID == "" {
		return nil, fmt.Errorf("GCP project ID is required for the vertex answer provider")
	}
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &VertexAnswerer{genaiClient: client}, nil
}

// Answer asks Gemini the question, constrained to the document text.
func (a *VertexAnswerer) Answer(ctx context.Context, question string, documentText string) (string, error) {
	model := a.genaiClient.GenerativeModel("gemini-2.0-flash-001")
	model.SetTemperature(0.2)

	var prompt strings.Builder
	prompt.WriteString("Document:\n---------------------\n")
	prompt.WriteString(documentText)
	prompt.WriteString("\n---------------------\n")
	prompt.WriteString("RULES: Answer the user's question using ONLY the document above. ")
	prompt.WriteString("If the question cannot be answered from the document, say so briefly. ")
	prompt.WriteString("Do not use outside knowledge.\n")
	prompt.WriteString("Question: ")
	prompt.WriteString(question)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}

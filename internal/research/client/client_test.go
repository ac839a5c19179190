package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prospect_backend/internal/prospects/domain"
	"prospect_backend/platform/apperr"
	"prospect_backend/platform/logger"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) GetPerplexityAPIKey() string  { return "test-key" }
func (c testConfig) GetPerplexityBaseURL() string { return c.baseURL }
func (c testConfig) GetResearchModel() string     { return "sonar-pro" }

func TestResearchCompany(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "Acme raised a Series D in March 2024."}}]}`))
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))
	contacts := []domain.Contact{
		{FullName: "Jane Doe", JobTitle: "Software Engineer"},
		{FullName: "John Smith", JobTitle: "Engineering Manager"},
	}

	got, err := c.ResearchCompany(context.Background(), "Acme", contacts)
	if err != nil {
		t.Fatalf("research company: %v", err)
	}
	if got != "Acme raised a Series D in March 2024." {
		t.Fatalf("unexpected research text %q", got)
	}

	if captured.Model != "sonar-pro" {
		t.Fatalf("expected sonar-pro model, got %q", captured.Model)
	}
	if captured.MaxTokens != 4000 || captured.Temperature != 0.7 {
		t.Fatalf("unexpected sampling params: %+v", captured)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}

	user := captured.Messages[1].Content
	if !strings.Contains(user, "Research company: Acme") {
		t.Fatalf("expected company in prompt, got %q", user)
	}
	if !strings.Contains(user, "Prospects to analyze:\n- Jane Doe (Software Engineer)\n- John Smith (Engineering Manager)") {
		t.Fatalf("expected prospect roster in prompt, got %q", user)
	}
}

func TestResearchCompanyUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": {"message": "upstream overloaded"}}`))
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))
	_, err := c.ResearchCompany(context.Background(), "Acme", nil)
	if err == nil {
		t.Fatalf("expected error on upstream failure")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable kind, got %v", apperr.GetKind(err))
	}
}

func TestResearchCompanyEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))
	_, err := c.ResearchCompany(context.Background(), "Acme", nil)
	if err == nil {
		t.Fatalf("expected error on empty choices")
	}
}

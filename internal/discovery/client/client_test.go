package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"prospect_backend/platform/apperr"
	"prospect_backend/platform/logger"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) GetHunterAPIKey() string  { return "test-key" }
func (c testConfig) GetHunterBaseURL() string { return c.baseURL }
func (c testConfig) GetDiscoveryLimit() int   { return 25 }

func TestCompanyDomain(t *testing.T) {
	cases := []struct {
		company string
		want    string
	}{
		{"Anthropic", "anthropic.com"},
		{"Mistral", "mistral.ai"},
		{"Notion", "notion.so"},
		{"Hugging Face", "huggingface.co"},
		{"Acme Labs", "acmelabs.com"},
	}

	for _, tc := range cases {
		if got := CompanyDomain(tc.company); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.company, tc.want, got)
		}
	}
}

func TestLinkedInURL(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jane Doe", "https://linkedin.com/in/jane-doe"},
		{"Mary-Jane O'Brien", "https://linkedin.com/in/maryjane-obrien"},
		{"José Silva", "https://linkedin.com/in/jos-silva"},
	}

	for _, tc := range cases {
		if got := LinkedInURL(tc.name); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestFindContactsFiltersIncompleteEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domain-search" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("domain") != "acme.com" {
			t.Fatalf("unexpected domain %q", q.Get("domain"))
		}
		if q.Get("api_key") != "test-key" {
			t.Fatalf("unexpected api key %q", q.Get("api_key"))
		}
		if q.Get("limit") != "25" {
			t.Fatalf("unexpected limit %q", q.Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"domain": "acme.com",
				"emails": [
					{
						"value": "jane.doe@acme.com",
						"first_name": "Jane",
						"last_name": "Doe",
						"position": "Software Engineer",
						"seniority": "senior",
						"confidence": 94
					},
					{
						"value": "info@acme.com",
						"first_name": "",
						"last_name": "",
						"position": ""
					},
					{
						"value": "john@acme.com",
						"first_name": "John",
						"last_name": "Smith",
						"position": "Engineering Manager",
						"confidence": 72
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))
	contacts, err := c.FindContacts(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("find contacts: %v", err)
	}

	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].FullName != "Jane Doe" || contacts[0].SeniorityHint != "senior" {
		t.Fatalf("unexpected first contact %+v", contacts[0])
	}
	if contacts[0].SourceConfidence != 0.94 {
		t.Fatalf("expected source confidence 0.94, got %v", contacts[0].SourceConfidence)
	}
	if contacts[0].LinkedInURL != "https://linkedin.com/in/jane-doe" {
		t.Fatalf("unexpected linkedin url %q", contacts[0].LinkedInURL)
	}
	if contacts[1].SeniorityHint != "unknown" {
		t.Fatalf("expected unknown seniority when unreported, got %q", contacts[1].SeniorityHint)
	}
	if contacts[1].SourceConfidence != 0.72 {
		t.Fatalf("expected source confidence 0.72, got %v", contacts[1].SourceConfidence)
	}
	if contacts[1].Company != "Acme" {
		t.Fatalf("expected company to carry through, got %q", contacts[1].Company)
	}
}

func TestFindContactsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"errors": [{"details": "rate limit exceeded"}]}`))
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))
	_, err := c.FindContacts(context.Background(), "Acme")
	if err == nil {
		t.Fatalf("expected error on upstream failure")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable kind, got %v", apperr.GetKind(err))
	}
}

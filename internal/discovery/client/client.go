// Package client provides the Hunter domain-search client used for
// contact discovery.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"prospect_backend/internal/prospects/domain"
	"prospect_backend/platform/apperr"
	"prospect_backend/platform/logger"
)

const defaultHTTPTimeout = 15 * time.Second

// knownDomains maps company names to their primary email domain where the
// naive "<company>.com" guess would miss.
var knownDomains = map[string]string{
	"anthropic":    "anthropic.com",
	"openai":       "openai.com",
	"stripe":       "stripe.com",
	"databricks":   "databricks.com",
	"figma":        "figma.com",
	"discord":      "discord.com",
	"mistral":      "mistral.ai",
	"midjourney":   "midjourney.com",
	"notion":       "notion.so",
	"linear":       "linear.app",
	"vercel":       "vercel.com",
	"replit":       "replit.com",
	"hugging face": "huggingface.co",
	"scale":        "scale.com",
	"cohere":       "cohere.com",
}

var linkedinSlugPattern = regexp.MustCompile(`[^a-z0-9\s]`)

// Config carries the credentials and base URL for the Hunter API.
type Config interface {
	GetHunterAPIKey() string
	GetHunterBaseURL() string
	GetDiscoveryLimit() int
}

// Client calls the Hunter domain-search endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        Config
	log        *logger.Logger
}

// New creates a Hunter client. The rate limiter protects the upstream
// quota; Hunter free-tier accounts allow roughly one search per second.
func New(cfg Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		limiter:    rate.NewLimiter(rate.Limit(1), 2),
		cfg:        cfg,
		log:        log,
	}
}

type domainSearchResponse struct {
	Data struct {
		Domain string `json:"domain"`
		Emails []struct {
			Value      string `json:"value"`
			FirstName  string `json:"first_name"`
			LastName   string `json:"last_name"`
			Position   string `json:"position"`
			Seniority  string `json:"seniority"`
			Confidence int    `json:"confidence"`
		} `json:"emails"`
	} `json:"data"`
	Errors []struct {
		Details string `json:"details"`
	} `json:"errors"`
}

// FindContacts looks up employees of the given company via Hunter
// domain search. Entries without a full name and position are dropped.
func (c *Client) FindContacts(ctx context.Context, company string) ([]domain.Contact, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("domain", CompanyDomain(company))
	params.Set("api_key", c.cfg.GetHunterAPIKey())
	params.Set("limit", strconv.Itoa(c.cfg.GetDiscoveryLimit()))

	reqURL := fmt.Sprintf("%s/domain-search?%s", c.cfg.GetHunterBaseURL(), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build hunter request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ProviderError("hunter", "domain-search", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "contact discovery unavailable", err)
	}
	defer resp.Body.Close()

	var payload domainSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.ProviderError("hunter", "decode", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "contact discovery unavailable", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("hunter status %d", resp.StatusCode)
		if len(payload.Errors) > 0 {
			err = fmt.Errorf("hunter status %d: %s", resp.StatusCode, payload.Errors[0].Details)
		}
		c.log.ProviderError("hunter", "domain-search", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "contact discovery unavailable", err)
	}

	contacts := make([]domain.Contact, 0, len(payload.Data.Emails))
	for _, e := range payload.Data.Emails {
		if e.FirstName == "" || e.LastName == "" || e.Position == "" {
			continue
		}
		fullName := e.FirstName + " " + e.LastName
		seniority := e.Seniority
		if seniority == "" {
			seniority = "unknown"
		}
		contacts = append(contacts, domain.Contact{
			FullName:         fullName,
			JobTitle:         e.Position,
			Email:            e.Value,
			Company:          company,
			LinkedInURL:      LinkedInURL(fullName),
			SeniorityHint:    seniority,
			SourceConfidence: float64(e.Confidence) / 100,
		})
	}

	c.log.Info("hunter domain search completed",
		"company", company,
		"domain", payload.Data.Domain,
		"contacts", len(contacts),
	)

	return contacts, nil
}

// CompanyDomain resolves a company name to the domain used for the
// Hunter search. Unknown companies fall back to "<name>.com".
func CompanyDomain(company string) string {
	key := strings.ToLower(strings.TrimSpace(company))
	if d, ok := knownDomains[key]; ok {
		return d
	}
	return strings.ReplaceAll(key, " ", "") + ".com"
}

// LinkedInURL builds a best-guess profile URL from a person's name.
func LinkedInURL(fullName string) string {
	slug := strings.ToLower(fullName)
	slug = linkedinSlugPattern.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(strings.TrimSpace(slug), " ", "-")
	return "https://linkedin.com/in/" + slug
}

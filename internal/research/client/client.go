// Package client provides the Perplexity research client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"prospect_backend/internal/prospects/domain"
	"prospect_backend/platform/apperr"
	"prospect_backend/platform/logger"
)

const (
	defaultHTTPTimeout = 60 * time.Second
	maxTokens          = 4000
	temperature        = 0.7
)

const systemPrompt = "You are a senior equity sales analyst specializing in pre-IPO secondary market intelligence. For each individual prospect, provide structured, actionable data to support outbound equity sales. Analyze both company fundamentals and individual prospect details for comprehensive sales intelligence."

// Config carries the credentials and model selection for Perplexity.
type Config interface {
	GetPerplexityAPIKey() string
	GetPerplexityBaseURL() string
	GetResearchModel() string
}

// Client calls the Perplexity chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        Config
	log        *logger.Logger
}

func New(cfg Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		limiter:    rate.NewLimiter(rate.Limit(0.5), 1),
		cfg:        cfg,
		log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ResearchCompany asks Perplexity for company fundamentals and
// per-prospect liquidity signals in a single call. The returned text is
// fed to the signal extractor, not parsed structurally.
func (c *Client) ResearchCompany(ctx context.Context, company string, contacts []domain.Contact) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.GetResearchModel(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(company, contacts)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal perplexity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GetPerplexityBaseURL()+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build perplexity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.GetPerplexityAPIKey())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ProviderError("perplexity", "chat-completions", err)
		return "", apperr.Wrap(apperr.KindUnavailable, "company research unavailable", err)
	}
	defer resp.Body.Close()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.ProviderError("perplexity", "decode", err)
		return "", apperr.Wrap(apperr.KindUnavailable, "company research unavailable", err)
	}

	if resp.StatusCode != http.StatusOK || payload.Error != nil {
		err := fmt.Errorf("perplexity status %d", resp.StatusCode)
		if payload.Error != nil {
			err = fmt.Errorf("perplexity status %d: %s", resp.StatusCode, payload.Error.Message)
		}
		c.log.ProviderError("perplexity", "chat-completions", err)
		return "", apperr.Wrap(apperr.KindUnavailable, "company research unavailable", err)
	}

	if len(payload.Choices) == 0 {
		err := fmt.Errorf("perplexity returned no choices")
		c.log.ProviderError("perplexity", "chat-completions", err)
		return "", apperr.Wrap(apperr.KindUnavailable, "company research unavailable", err)
	}

	content := payload.Choices[0].Message.Content
	c.log.Info("company research completed",
		"company", company,
		"prospects", len(contacts),
		"response_chars", len(content),
	)

	return content, nil
}

func buildUserPrompt(company string, contacts []domain.Contact) string {
	var b strings.Builder
	b.WriteString(researchPrompt(company))
	b.WriteString("\n\nProspects to analyze:\n")
	for i, c := range contacts {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s (%s)", c.FullName, c.JobTitle)
	}
	return b.String()
}

func researchPrompt(company string) string {
	return fmt.Sprintf(`
Research company: %[1]s and analyze prospects for equity sales.

COMPANY ANALYSIS:
1. Founding year and current company age
2. Latest funding round (Series A/B/C/D/etc.) and date
3. Current estimated valuation and recent investor list
4. Total employees and growth trajectory
5. Industry sector and business model
6. IPO timeline and likelihood
7. Recent executive departures or equity events
8. Typical equity compensation structure for this industry/stage

CRITICAL: SPECIFIC LIQUIDITY SIGNALS ANALYSIS
For employees at %[1]s, identify specific, actionable liquidity signals from these categories:

**COMPANY-DRIVEN EVENTS:**
* Recent layoffs, restructuring, or cost-cutting rounds (with dates)
* Upcoming or recent funding rounds creating liquidity windows
* Announced or rumored secondary programs at the company
* Changes in company policy regarding secondary sales
* Leadership transitions, CEO changes, or strategic pivots
* Performance concerns, slowing growth, or delayed IPO timeline

**EMPLOYMENT & VESTING STATUS:**
* Recent resignations or employees planning to leave
* Vesting milestones - employees recently fully vested or approaching cliffs
* Length of tenure indicating likely vesting status
* Stock option expiration timelines

**MARKET & INDUSTRY FACTORS:**
* Industry-wide concerns affecting company valuation
* Regulatory changes impacting the sector
* Competitor performance affecting market sentiment
* Economic conditions creating urgency for diversification

**PERSONAL FINANCIAL MOTIVATIONS (if inferable):**
* Life stage indicators suggesting major expenses (homebuying, family expansion)
* Career transitions or geographic moves
* Educational pursuits requiring funding

PROSPECT ANALYSIS:
For employees at %[1]s, provide:
* Job title and seniority level assessment
* Estimated tenure at the company (years/months employed)
* Employment status (current or former employee)
* Estimated equity value or range (if inferable from role/stage)
* Preferred communication channel (email, LinkedIn, phone)
* **SPECIFIC LIQUIDITY SIGNALS:** List 2-3 most relevant, actionable signals with timeframes
* Compliance/KYC status requirements
* Equity ownership likelihood (High/Medium/Low)
* Liquidity motivation score (1-10) based on identified signals
* Personalized outreach strategy referencing specific liquidity signals
* Sales summary paragraph incorporating signal-based messaging

EXAMPLE FORMAT FOR LIQUIDITY SIGNALS:
Instead of: "Standard motivation"
Provide: "Company announced 15%% layoffs in January 2025; Employee likely fully vested after 3+ years; Delayed IPO creates portfolio concentration risk"

EQUITY CONTEXT:
- How equity-generous is this company vs industry peers?
- What roles typically get significant equity grants?
- Any recent secondary market activity or liquidity events?
- Employee tenure patterns and vesting schedules
- Current market conditions affecting liquidity motivation

OUTPUT: Provide comprehensive structured data with specific, actionable liquidity signals that can be used for targeted outreach messaging.
`, company)
}

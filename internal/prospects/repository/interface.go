package repository

import (
	"context"

	"github.com/google/uuid"
)

// Prospect is a persisted, scored equity prospect.
type Prospect struct {
	ID                   uuid.UUID     `db:"id"`
	FullName             string        `db:"full_name"`
	RoleTitle            string        `db:"role_title"`
	CompanyName          string        `db:"company_name"`
	Email                *string       `db:"email"`
	LinkedInURL          *string       `db:"linkedin_url"`
	ProspectType         string        `db:"prospect_type"`
	PriorityScore        int           `db:"priority_score"`
	ConfidenceLevel      int           `db:"confidence_level"`
	QualificationStatus  string        `db:"qualification_status"`
	DiscoveryMethod      string        `db:"discovery_method"`
	JobSeniority         string        `db:"job_seniority"`
	EstimatedTenure      string        `db:"estimated_tenure"`
	EmploymentStatus     string        `db:"employment_status"`
	EstimatedEquityValue string        `db:"estimated_equity_value"`
	PreferredChannel     string        `db:"preferred_channel"`
	LiquiditySignals     string        `db:"liquidity_signals"`
	EquityLikelihood     string        `db:"equity_likelihood"`
	LiquidityScore       int           `db:"liquidity_score"`
	OutreachStrategy     string        `db:"outreach_strategy"`
	SalesSummary         string        `db:"sales_summary"`
	OutreachAngle        string        `db:"outreach_angle"`
	ResearchNotes        ResearchNotes `db:"research_notes"`
	EngineVersion        string        `db:"engine_version"`
	CreatedAt            string        `db:"created_at"`
}

// ResearchNotes is stored as a JSONB document alongside the scored row
// so the extracted company signals survive rescans.
type ResearchNotes struct {
	CompanyStage  string `json:"companyStage,omitempty"`
	Valuation     string `json:"valuation,omitempty"`
	IPOStatus     string `json:"ipoStatus,omitempty"`
	LastFunding   string `json:"lastFunding,omitempty"`
	FundingDate   string `json:"fundingDate,omitempty"`
	GrowthRate    string `json:"growthRate,omitempty"`
	EmployeeCount string `json:"employeeCount,omitempty"`
}

// InsertParams contains parameters for persisting a scored prospect.
type InsertParams struct {
	FullName             string
	RoleTitle            string
	CompanyName          string
	Email                *string
	LinkedInURL          *string
	ProspectType         string
	PriorityScore        int
	ConfidenceLevel      int
	QualificationStatus  string
	DiscoveryMethod      string
	JobSeniority         string
	EstimatedTenure      string
	EmploymentStatus     string
	EstimatedEquityValue string
	PreferredChannel     string
	LiquiditySignals     string
	EquityLikelihood     string
	LiquidityScore       int
	OutreachStrategy     string
	SalesSummary         string
	OutreachAngle        string
	ResearchNotes        ResearchNotes
	EngineVersion        string
}

// StatusCounts aggregates the stored pipeline by qualification status.
type StatusCounts struct {
	Total         int
	Qualified     int
	NeedsResearch int
}

// ProspectReader provides read operations for prospects.
type ProspectReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Prospect, error)
	List(ctx context.Context, company string) ([]Prospect, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

// ProspectWriter provides write operations for prospects.
type ProspectWriter interface {
	Insert(ctx context.Context, params InsertParams) (Prospect, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository combines all prospect repository operations.
type Repository interface {
	ProspectReader
	ProspectWriter
}

package transport

import (
	"github.com/google/uuid"

	"prospect_backend/internal/prospects/repository"
)

// SearchRequest contains the target company for a discovery run.
type SearchRequest struct {
	Company string `json:"company" validate:"required,min=2,max=100"`
}

// SearchResponse summarizes a completed discovery run.
type SearchResponse struct {
	Company        string             `json:"company"`
	ContactsFound  int                `json:"contactsFound"`
	ProspectsSaved int                `json:"prospectsSaved"`
	Qualified      int                `json:"qualified"`
	DurationMs     int64              `json:"durationMs"`
	Prospects      []ProspectResponse `json:"prospects"`
}

// ProspectResponse represents a stored prospect in API responses.
type ProspectResponse struct {
	ID                   uuid.UUID `json:"id"`
	FullName             string    `json:"fullName"`
	RoleTitle            string    `json:"roleTitle"`
	CompanyName          string    `json:"companyName"`
	Email                *string   `json:"email,omitempty"`
	LinkedInURL          *string   `json:"linkedinUrl,omitempty"`
	ProspectType         string    `json:"prospectType"`
	PriorityScore        int       `json:"priorityScore"`
	ConfidenceLevel      int       `json:"confidenceLevel"`
	QualificationStatus  string    `json:"qualificationStatus"`
	DiscoveryMethod      string    `json:"discoveryMethod"`
	JobSeniority         string    `json:"jobSeniority"`
	EstimatedTenure      string    `json:"estimatedTenure"`
	EmploymentStatus     string    `json:"employmentStatus"`
	EstimatedEquityValue string    `json:"estimatedEquityValue"`
	PreferredChannel     string    `json:"preferredChannel"`
	LiquiditySignals     string    `json:"liquiditySignals"`
	EquityLikelihood     string    `json:"equityLikelihood"`
	LiquidityScore       int       `json:"liquidityScore"`
	OutreachStrategy     string    `json:"outreachStrategy"`
	SalesSummary         string    `json:"salesSummary"`
	OutreachAngle        string    `json:"outreachAngle"`
	EngineVersion        string    `json:"engineVersion"`
	CreatedAt            string    `json:"createdAt"`
}

// ProspectListResponse wraps a list of prospects.
type ProspectListResponse struct {
	Items []ProspectResponse `json:"items"`
	Total int                `json:"total"`
}

// StatusResponse aggregates the stored pipeline by qualification status.
type StatusResponse struct {
	Total         int `json:"total"`
	Qualified     int `json:"qualified"`
	NeedsResearch int `json:"needsResearch"`
}

// ToProspectResponse maps a repository row to its API representation.
func ToProspectResponse(p repository.Prospect) ProspectResponse {
	return ProspectResponse{
		ID:                   p.ID,
		FullName:             p.FullName,
		RoleTitle:            p.RoleTitle,
		CompanyName:          p.CompanyName,
		Email:                p.Email,
		LinkedInURL:          p.LinkedInURL,
		ProspectType:         p.ProspectType,
		PriorityScore:        p.PriorityScore,
		ConfidenceLevel:      p.ConfidenceLevel,
		QualificationStatus:  p.QualificationStatus,
		DiscoveryMethod:      p.DiscoveryMethod,
		JobSeniority:         p.JobSeniority,
		EstimatedTenure:      p.EstimatedTenure,
		EmploymentStatus:     p.EmploymentStatus,
		EstimatedEquityValue: p.EstimatedEquityValue,
		PreferredChannel:     p.PreferredChannel,
		LiquiditySignals:     p.LiquiditySignals,
		EquityLikelihood:     p.EquityLikelihood,
		LiquidityScore:       p.LiquidityScore,
		OutreachStrategy:     p.OutreachStrategy,
		SalesSummary:         p.SalesSummary,
		OutreachAngle:        p.OutreachAngle,
		EngineVersion:        p.EngineVersion,
		CreatedAt:            p.CreatedAt,
	}
}

// ToProspectResponses maps a slice of repository rows.
func ToProspectResponses(prospects []repository.Prospect) []ProspectResponse {
	items := make([]ProspectResponse, 0, len(prospects))
	for _, p := range prospects {
		items = append(items, ToProspectResponse(p))
	}
	return items
}

// Package domain contains the deterministic prospect evaluation engine:
// signal extraction from research text, role classification, seller
// eligibility, equity and confidence scoring, and sales intelligence
// synthesis. Everything in this package is pure and side-effect free.
package domain

// Contact is a person discovered at a target company.
type Contact struct {
	FullName    string
	JobTitle    string
	Email       string
	Company     string
	LinkedInURL string
	// SeniorityHint is the discovery provider's seniority label for the
	// contact ("junior", "senior", "executive"), or empty when unreported.
	SeniorityHint string
	// SourceConfidence is the provider's 0-1 confidence in the contact record.
	SourceConfidence float64
}

// Qualification statuses for persisted prospects.
const (
	StatusQualified     = "qualified"
	StatusNeedsResearch = "needs research"
)

// ScoredProspect is the full evaluation result for one contact.
type ScoredProspect struct {
	Contact         Contact
	Role            RoleProfile
	Company         CompanyProfile
	Signals         CompanySignals
	EquityScore     int
	ConfidenceScore int
	Qualified       bool
	Intelligence    Intelligence
}

// QualificationStatus maps the qualified flag to its stored status value.
func (p *ScoredProspect) QualificationStatus() string {
	if p.Qualified {
		return StatusQualified
	}
	return StatusNeedsResearch
}

package domain

// engineVersion identifies the evaluation rules that produced a prospect
// record. Bump when scoring or eligibility semantics change.
const engineVersion = "v1"

// Engine evaluates discovered contacts against company research text.
// All stages are deterministic: the same contact and research text always
// produce the same result.
type Engine struct {
	extractor *SignalExtractor
	filter    *EligibilityFilter
}

// NewEngine builds an engine with the default extractor and the embedded
// eligibility ruleset.
func NewEngine() (*Engine, error) {
	rules, err := LoadDefaultRules()
	if err != nil {
		return nil, err
	}
	return &Engine{
		extractor: NewSignalExtractor(),
		filter:    NewEligibilityFilter(rules),
	}, nil
}

// Version returns the engine version string stored alongside prospects.
func (e *Engine) Version() string {
	return engineVersion
}

// RulesVersion returns the active eligibility ruleset version.
func (e *Engine) RulesVersion() int {
	return e.filter.RulesVersion()
}

// EvaluateProspect runs the full pipeline for a single contact: eligibility
// filtering, signal extraction, role classification, scoring, and
// intelligence synthesis. It returns (nil, false) when the contact is not
// an eligible seller.
func (e *Engine) EvaluateProspect(c Contact, researchText string) (*ScoredProspect, bool) {
	if !e.filter.Eligible(c) {
		return nil, false
	}

	signals := e.extractor.Extract(researchText)
	company := BuildCompanyProfile(c.Company, signals)
	role := ClassifyRole(c.JobTitle)

	equity := EquityScore(c.SeniorityHint, role, company)
	confidence := ConfidenceScore(c)

	return &ScoredProspect{
		Contact:         c,
		Role:            role,
		Company:         company,
		Signals:         signals,
		EquityScore:     equity,
		ConfidenceScore: confidence,
		Qualified:       Qualified(equity, confidence),
		Intelligence:    Synthesize(c, role, company, signals),
	}, true
}

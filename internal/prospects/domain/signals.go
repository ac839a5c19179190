package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// FundingStage is the coarse funding stage inferred from research text.
type FundingStage string

const (
	StageUnknown     FundingStage = "Unknown"
	StagePublic      FundingStage = "Public"
	StageLateUnicorn FundingStage = "Late Stage Unicorn"
	StageGrowth      FundingStage = "Growth Stage"
	StageEarly       FundingStage = "Early Stage"
)

// CompanySignals is everything the extractor can read out of a research blob.
// Every field has a fallback value, so extraction is total: empty or
// unrelated text still yields a usable (conservative) signal set.
type CompanySignals struct {
	Stage          FundingStage
	ValuationUSD   float64
	ValuationLabel string
	IPOStatus      string
	LastFunding    string
	FundingDate    string
	GrowthRate     string
	EmployeeCount  string

	HasTenderOffer     bool
	HasLayoffs         bool
	HasSecondaryMarket bool

	// Hints used only when the funding stage is unknown.
	StartupHint  bool
	MaturityHint bool
}

// defaultValuationUSD is assumed when research text names no valuation.
const defaultValuationUSD = 1e9

// largeCapThresholdUSD splits large-cap companies from the rest for equity
// value estimation and liquidity scoring.
const largeCapThresholdUSD = 10e9

var (
	valuationPattern     = regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*billion`)
	fundingDatePattern   = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}`)
	growthRatePattern    = regexp.MustCompile(`(?i)(\d+)%\s*(?:YoY|year-over-year|growth)`)
	employeeCountPattern = regexp.MustCompile(`(?i)(\d+(?:,\d+)?)\s*employees`)
)

// SignalExtractor derives CompanySignals from free-form research text.
// All matching is case-insensitive.
type SignalExtractor struct {
	// DefaultValuationUSD is used when no dollar valuation appears in the text.
	DefaultValuationUSD float64
}

// NewSignalExtractor creates an extractor with the standard defaults.
func NewSignalExtractor() *SignalExtractor {
	return &SignalExtractor{DefaultValuationUSD: defaultValuationUSD}
}

// Extract reads all supported signals from the research text.
func (e *SignalExtractor) Extract(text string) CompanySignals {
	lower := strings.ToLower(text)

	signals := CompanySignals{
		Stage:              e.extractStage(lower),
		IPOStatus:          extractIPOStatus(lower),
		LastFunding:        extractLastFunding(lower),
		FundingDate:        extractFundingDate(text),
		GrowthRate:         extractGrowthRate(text),
		EmployeeCount:      extractEmployeeCount(text),
		HasTenderOffer:     strings.Contains(lower, "tender offer") || strings.Contains(lower, "secondary liquidity"),
		HasLayoffs:         strings.Contains(lower, "layoffs") || strings.Contains(lower, "restructuring"),
		HasSecondaryMarket: strings.Contains(lower, "secondary market") || strings.Contains(lower, "employee tender") || strings.Contains(lower, "liquidity"),
		StartupHint:        strings.Contains(lower, "startup") || strings.Contains(lower, "seed"),
		MaturityHint:       strings.Contains(lower, "established") || strings.Contains(lower, "mature"),
	}

	signals.ValuationUSD, signals.ValuationLabel = e.extractValuation(text)

	return signals
}

// extractStage maps stage keywords to a funding stage. Rules are checked in
// priority order; the first hit wins.
func (e *SignalExtractor) extractStage(lower string) FundingStage {
	switch {
	case strings.Contains(lower, "ipo") || strings.Contains(lower, "public company"):
		return StagePublic
	case strings.Contains(lower, "unicorn") || strings.Contains(lower, "billion") ||
		strings.Contains(lower, "series f") || strings.Contains(lower, "series g"):
		return StageLateUnicorn
	case strings.Contains(lower, "series c") || strings.Contains(lower, "series d") || strings.Contains(lower, "series e"):
		return StageGrowth
	case strings.Contains(lower, "series a") || strings.Contains(lower, "series b"):
		return StageEarly
	default:
		return StageUnknown
	}
}

func (e *SignalExtractor) extractValuation(text string) (float64, string) {
	fallback := e.DefaultValuationUSD
	if fallback <= 0 {
		fallback = defaultValuationUSD
	}

	match := valuationPattern.FindStringSubmatch(text)
	if match == nil {
		return fallback, "Multi-billion dollar valuation"
	}

	var billions float64
	if _, err := fmt.Sscanf(match[1], "%f", &billions); err != nil || billions <= 0 {
		return fallback, "Multi-billion dollar valuation"
	}

	return billions * 1e9, fmt.Sprintf("$%sB valuation", match[1])
}

func extractIPOStatus(lower string) string {
	switch {
	case strings.Contains(lower, "ipo filed") || strings.Contains(lower, "filed for ipo"):
		return "IPO filed"
	case strings.Contains(lower, "ipo expected") || strings.Contains(lower, "ipo within"):
		return "IPO expected soon"
	case strings.Contains(lower, "ipo delay") || strings.Contains(lower, "delayed ipo"):
		return "IPO delayed"
	default:
		return "Pre-IPO stage"
	}
}

func extractLastFunding(lower string) string {
	switch {
	case strings.Contains(lower, "tender offer"):
		return "Recent tender offer"
	case strings.Contains(lower, "series e"):
		return "Series E"
	case strings.Contains(lower, "series d"):
		return "Series D"
	case strings.Contains(lower, "funding"):
		return "Recent funding round"
	default:
		return "Well-funded growth stage"
	}
}

func extractFundingDate(text string) string {
	if match := fundingDatePattern.FindString(text); match != "" {
		return match
	}
	return "Recent"
}

func extractGrowthRate(text string) string {
	if match := growthRatePattern.FindStringSubmatch(text); match != nil {
		return match[1] + "% YoY growth"
	}
	return "Strong growth trajectory"
}

func extractEmployeeCount(text string) string {
	if match := employeeCountPattern.FindStringSubmatch(text); match != nil {
		return match[1] + " employees"
	}
	return "Scaling team"
}

// CompanyProfile is the evaluated view of a company used by the scorers.
type CompanyProfile struct {
	Name               string
	Stage              FundingStage
	ValuationUSD       float64
	ValuationLabel     string
	HasSecondaryMarket bool
	EquityMultiplier   float64
	LargeCap           bool
}

// stageMultipliers maps each known funding stage to its equity multiplier.
var stageMultipliers = map[FundingStage]float64{
	StagePublic:      0.9,
	StageLateUnicorn: 1.1,
	StageGrowth:      1.2,
	StageEarly:       1.15,
}

const secondaryMarketBoost = 0.1

// BuildCompanyProfile derives the scoring view of a company from its signals.
// The equity multiplier is clamped to [0.8, 1.3].
func BuildCompanyProfile(name string, signals CompanySignals) CompanyProfile {
	multiplier, ok := stageMultipliers[signals.Stage]
	if !ok {
		switch {
		case signals.StartupHint:
			multiplier = 1.1
		case signals.MaturityHint:
			multiplier = 0.95
		default:
			multiplier = 1.0
		}
	}

	if signals.HasSecondaryMarket {
		multiplier += secondaryMarketBoost
	}

	return CompanyProfile{
		Name:               name,
		Stage:              signals.Stage,
		ValuationUSD:       signals.ValuationUSD,
		ValuationLabel:     signals.ValuationLabel,
		HasSecondaryMarket: signals.HasSecondaryMarket,
		EquityMultiplier:   clampFloat(multiplier, 0.8, 1.3),
		LargeCap:           signals.ValuationUSD >= largeCapThresholdUSD,
	}
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

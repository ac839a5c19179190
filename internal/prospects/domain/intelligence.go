package domain

import (
	"fmt"
	"strings"
)

// Intelligence is the sales-ready enrichment attached to a scored prospect.
type Intelligence struct {
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
}

const fallbackLiquiditySignal = "Market conditions favorable for equity transactions"

// equityValueTable maps role tier to estimated equity value ranges, split by
// whether the company is large-cap.
var equityValueTable = map[RoleTier]struct {
	largeCap string
	standard string
}{
	TierVicePresident:  {"$5M–$15M", "$3M–$10M"},
	TierDirector:       {"$2M–$8M", "$1M–$5M"},
	TierSeniorEngineer: {"$800K–$3M", "$500K–$2M"},
	TierManager:        {"$600K–$2.5M", "$400K–$1.5M"},
	TierEngineer:       {"$300K–$1.2M", "$200K–$800K"},
	TierHRPeople:       {"$200K–$800K", "$150K–$600K"},
	TierSupport:        {"$100K–$400K", "$75K–$300K"},
	TierMid:            {"$250K–$1M", "$200K–$750K"},
}

// Synthesize builds the full intelligence record for a classified contact.
// It is total: any combination of inputs produces a complete record.
func Synthesize(c Contact, role RoleProfile, company CompanyProfile, signals CompanySignals) Intelligence {
	liquiditySignals := LiquiditySignals(role, company, signals)

	return Intelligence{
		JobSeniority:         string(role.Tier),
		EstimatedTenure:      role.TenureRange,
		EmploymentStatus:     "Current",
		EstimatedEquityValue: EquityValueEstimate(role.Tier, company.LargeCap),
		PreferredChannel:     role.PreferredChannel,
		LiquiditySignals:     liquiditySignals,
		EquityLikelihood:     role.EquityLikelihood,
		LiquidityScore:       LiquidityScore(role, company, signals),
		OutreachStrategy:     OutreachStrategy(c.FullName, role, company, signals),
		SalesSummary:         SalesSummary(c.FullName, c.JobTitle, role, company, signals),
		OutreachAngle:        liquiditySignals,
	}
}

// EquityValueEstimate returns the estimated equity value range for a tier.
func EquityValueEstimate(tier RoleTier, largeCap bool) string {
	entry, ok := equityValueTable[tier]
	if !ok {
		entry = equityValueTable[TierMid]
	}
	if largeCap {
		return entry.largeCap
	}
	return entry.standard
}

// LiquiditySignals composes up to three liquidity signals in priority order:
// vesting position first, then liquidity events, then valuation exposure.
func LiquiditySignals(role RoleProfile, company CompanyProfile, signals CompanySignals) string {
	var parts []string

	if strings.Contains(role.TenureRange, "3-5") || strings.Contains(role.TenureRange, "4-6") {
		parts = append(parts, "Likely fully vested with substantial equity holdings")
	} else if strings.Contains(role.TenureRange, "2-4") || strings.Contains(role.TenureRange, "2-3") {
		parts = append(parts, "Approaching or recently reached major vesting milestones")
	}

	if signals.HasTenderOffer {
		parts = append(parts, fmt.Sprintf("Recent %s provided limited liquidity", signals.LastFunding))
	}

	if strings.Contains(signals.IPOStatus, "delay") {
		parts = append(parts, "IPO delays increasing portfolio concentration risk")
	} else if strings.Contains(signals.IPOStatus, "expected") {
		parts = append(parts, "Upcoming IPO creates pre-liquidity urgency")
	}

	if company.LargeCap {
		parts = append(parts, fmt.Sprintf("%s at %s creates significant portfolio exposure", company.Name, company.ValuationLabel))
	}

	if len(parts) == 0 {
		return fallbackLiquiditySignal
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, "; ")
}

// LiquidityScore rates how urgent a liquidity conversation is for this
// prospect, starting from the role base score and adding a point per
// liquidity pressure signal, capped at 10.
func LiquidityScore(role RoleProfile, company CompanyProfile, signals CompanySignals) int {
	score := role.BaseScore

	if strings.Contains(signals.IPOStatus, "delay") {
		score++
	}
	if strings.Contains(signals.IPOStatus, "expected") {
		score++
	}
	if signals.HasTenderOffer {
		score++
	}
	if company.LargeCap {
		score++
	}

	if score > 10 {
		score = 10
	}
	return score
}

// OutreachStrategy renders the outreach playbook line for a prospect.
func OutreachStrategy(prospectName string, role RoleProfile, company CompanyProfile, signals CompanySignals) string {
	timing := "current market conditions"
	if strings.Contains(signals.IPOStatus, "delay") {
		timing = "delayed IPO timeline"
	}

	event := "limited liquidity opportunities"
	if signals.HasTenderOffer {
		event = "recent " + signals.LastFunding
	}

	return fmt.Sprintf(
		"Contact %s regarding %s equity opportunities. Reference %s and %s. Emphasize %s-level liquidity strategies and portfolio diversification benefits.",
		prospectName, company.Name, event, timing, strings.ToLower(string(role.Tier)),
	)
}

// SalesSummary renders the one-paragraph pitch summary for a prospect.
func SalesSummary(prospectName, prospectRole string, role RoleProfile, company CompanyProfile, signals CompanySignals) string {
	timing := "pre-IPO timing"
	if strings.Contains(signals.IPOStatus, "delay") {
		timing = "IPO uncertainty"
	}

	return fmt.Sprintf(
		"%s, as a %s at %s, represents a high-priority prospect with %s estimated equity value. With %s's %s and %s, this is an optimal window for secondary liquidity discussions.",
		prospectName, prospectRole, company.Name,
		EquityValueEstimate(role.Tier, company.LargeCap),
		company.Name, timing, company.ValuationLabel,
	)
}

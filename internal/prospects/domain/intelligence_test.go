package domain

import (
	"strings"
	"testing"
)

func TestEquityValueEstimate(t *testing.T) {
	cases := []struct {
		tier     RoleTier
		largeCap bool
		want     string
	}{
		{TierVicePresident, true, "$5M–$15M"},
		{TierVicePresident, false, "$3M–$10M"},
		{TierDirector, true, "$2M–$8M"},
		{TierSeniorEngineer, false, "$500K–$2M"},
		{TierEngineer, true, "$300K–$1.2M"},
		{TierHRPeople, false, "$150K–$600K"},
		{TierSupport, true, "$100K–$400K"},
		{TierMid, false, "$200K–$750K"},
	}

	for _, tc := range cases {
		if got := EquityValueEstimate(tc.tier, tc.largeCap); got != tc.want {
			t.Fatalf("%s largeCap=%v: expected %q, got %q", tc.tier, tc.largeCap, tc.want, got)
		}
	}
}

func TestLiquiditySignalsPriorityAndCap(t *testing.T) {
	role := ClassifyRole("Director of Engineering") // 3-5 years tenure
	signals := CompanySignals{
		HasTenderOffer: true,
		LastFunding:    "Recent tender offer",
		IPOStatus:      "IPO delayed",
		ValuationUSD:   17.84e9,
		ValuationLabel: "$17.84B valuation",
	}
	company := BuildCompanyProfile("Acme", signals)

	got := LiquiditySignals(role, company, signals)
	parts := strings.Split(got, "; ")
	if len(parts) != 3 {
		t.Fatalf("expected 3 signals, got %d: %q", len(parts), got)
	}
	if parts[0] != "Likely fully vested with substantial equity holdings" {
		t.Fatalf("expected vesting signal first, got %q", parts[0])
	}
	if parts[1] != "Recent Recent tender offer provided limited liquidity" {
		t.Fatalf("unexpected tender signal %q", parts[1])
	}
	if parts[2] != "IPO delays increasing portfolio concentration risk" {
		t.Fatalf("unexpected ipo signal %q", parts[2])
	}
}

func TestLiquiditySignalsFallback(t *testing.T) {
	role := RoleProfile{TenureRange: "unknown"}
	signals := CompanySignals{IPOStatus: "Pre-IPO stage"}
	company := CompanyProfile{Name: "Acme"}

	got := LiquiditySignals(role, company, signals)
	if got != "Market conditions favorable for equity transactions" {
		t.Fatalf("expected fallback signal, got %q", got)
	}
}

func TestLiquidityScoreCappedAtTen(t *testing.T) {
	role := ClassifyRole("Board Member") // base 9
	signals := CompanySignals{
		IPOStatus:      "IPO delayed",
		HasTenderOffer: true,
		ValuationUSD:   20e9,
	}
	company := BuildCompanyProfile("Acme", signals)

	if got := LiquidityScore(role, company, signals); got != 10 {
		t.Fatalf("expected capped liquidity score 10, got %d", got)
	}
}

func TestOutreachStrategyTemplates(t *testing.T) {
	role := ClassifyRole("Software Engineer")
	signals := CompanySignals{IPOStatus: "IPO delayed", HasTenderOffer: true, LastFunding: "Series E"}
	company := CompanyProfile{Name: "Acme"}

	got := OutreachStrategy("Jane Doe", role, company, signals)
	want := "Contact Jane Doe regarding Acme equity opportunities. Reference recent Series E and delayed IPO timeline. Emphasize engineer-level liquidity strategies and portfolio diversification benefits."
	if got != want {
		t.Fatalf("unexpected outreach strategy:\n got %q\nwant %q", got, want)
	}

	// Without liquidity events the template uses the neutral variants.
	neutral := OutreachStrategy("Jane Doe", role, company, CompanySignals{IPOStatus: "Pre-IPO stage"})
	if !strings.Contains(neutral, "limited liquidity opportunities") || !strings.Contains(neutral, "current market conditions") {
		t.Fatalf("expected neutral outreach variants, got %q", neutral)
	}
}

func TestSalesSummaryTemplate(t *testing.T) {
	role := ClassifyRole("Senior Software Engineer")
	signals := CompanySignals{IPOStatus: "Pre-IPO stage"}
	company := CompanyProfile{Name: "Acme", ValuationLabel: "$4B valuation"}

	got := SalesSummary("Jane Doe", "Senior Software Engineer", role, company, signals)
	if !strings.HasPrefix(got, "Jane Doe, as a Senior Software Engineer at Acme,") {
		t.Fatalf("unexpected summary prefix: %q", got)
	}
	if !strings.Contains(got, "$500K–$2M estimated equity value") {
		t.Fatalf("expected equity value in summary, got %q", got)
	}
	if !strings.Contains(got, "pre-IPO timing") || !strings.Contains(got, "$4B valuation") {
		t.Fatalf("expected timing and valuation in summary, got %q", got)
	}
}

func TestSynthesizeProducesCompleteRecord(t *testing.T) {
	contact := Contact{FullName: "Jane Doe", JobTitle: "Head of Engineering", Company: "Acme"}
	role := ClassifyRole(contact.JobTitle)
	signals := NewSignalExtractor().Extract("Acme raised a Series D in March 2024")
	company := BuildCompanyProfile(contact.Company, signals)

	intel := Synthesize(contact, role, company, signals)

	if intel.JobSeniority != "Director" {
		t.Fatalf("expected Director seniority, got %q", intel.JobSeniority)
	}
	if intel.EmploymentStatus != "Current" {
		t.Fatalf("expected Current employment status, got %q", intel.EmploymentStatus)
	}
	if intel.EstimatedTenure == "" || intel.EstimatedEquityValue == "" || intel.PreferredChannel == "" ||
		intel.LiquiditySignals == "" || intel.EquityLikelihood == "" ||
		intel.OutreachStrategy == "" || intel.SalesSummary == "" || intel.OutreachAngle == "" {
		t.Fatalf("expected fully populated intelligence record, got %+v", intel)
	}
	if intel.LiquidityScore < 1 || intel.LiquidityScore > 10 {
		t.Fatalf("liquidity score %d out of range", intel.LiquidityScore)
	}
}

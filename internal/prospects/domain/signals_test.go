package domain

import "testing"

func TestExtractStagePrecedence(t *testing.T) {
	extractor := NewSignalExtractor()

	cases := []struct {
		name string
		text string
		want FundingStage
	}{
		{"ipo mention wins", "The company filed for IPO after its Series B", StagePublic},
		{"public company", "Now a public company traded on NASDAQ", StagePublic},
		{"unicorn", "A unicorn in the infrastructure space", StageLateUnicorn},
		{"billion valuation implies late stage", "Valued at $4 billion after the round", StageLateUnicorn},
		{"series f", "Closed its Series F in March", StageLateUnicorn},
		{"series d", "Raised a Series D round", StageGrowth},
		{"series b", "Announced its Series B", StageEarly},
		{"no signal", "A company that makes software", StageUnknown},
		{"empty text", "", StageUnknown},
	}

	for _, tc := range cases {
		got := extractor.Extract(tc.text).Stage
		if got != tc.want {
			t.Fatalf("%s: expected stage %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestExtractValuation(t *testing.T) {
	extractor := NewSignalExtractor()

	signals := extractor.Extract("Recently valued at $17.84 billion by investors")
	if signals.ValuationUSD != 17.84e9 {
		t.Fatalf("expected valuation 17.84e9, got %g", signals.ValuationUSD)
	}
	if signals.ValuationLabel != "$17.84B valuation" {
		t.Fatalf("unexpected valuation label %q", signals.ValuationLabel)
	}

	signals = extractor.Extract("no numbers here")
	if signals.ValuationUSD != 1e9 {
		t.Fatalf("expected default valuation 1e9, got %g", signals.ValuationUSD)
	}
	if signals.ValuationLabel != "Multi-billion dollar valuation" {
		t.Fatalf("unexpected fallback label %q", signals.ValuationLabel)
	}
}

func TestExtractFallbacksOnEmptyText(t *testing.T) {
	signals := NewSignalExtractor().Extract("")

	if signals.IPOStatus != "Pre-IPO stage" {
		t.Fatalf("expected IPO fallback, got %q", signals.IPOStatus)
	}
	if signals.LastFunding != "Well-funded growth stage" {
		t.Fatalf("expected funding fallback, got %q", signals.LastFunding)
	}
	if signals.FundingDate != "Recent" {
		t.Fatalf("expected funding date fallback, got %q", signals.FundingDate)
	}
	if signals.GrowthRate != "Strong growth trajectory" {
		t.Fatalf("expected growth fallback, got %q", signals.GrowthRate)
	}
	if signals.EmployeeCount != "Scaling team" {
		t.Fatalf("expected employee fallback, got %q", signals.EmployeeCount)
	}
	if signals.HasTenderOffer || signals.HasLayoffs || signals.HasSecondaryMarket {
		t.Fatalf("expected no event flags on empty text")
	}
}

func TestExtractEventFlags(t *testing.T) {
	signals := NewSignalExtractor().Extract(
		"A tender offer followed layoffs; the secondary market remains active. 1,200 employees, 40% YoY growth, funded in May 2025.")

	if !signals.HasTenderOffer {
		t.Fatalf("expected tender offer flag")
	}
	if !signals.HasLayoffs {
		t.Fatalf("expected layoffs flag")
	}
	if !signals.HasSecondaryMarket {
		t.Fatalf("expected secondary market flag")
	}
	if signals.EmployeeCount != "1,200 employees" {
		t.Fatalf("unexpected employee count %q", signals.EmployeeCount)
	}
	if signals.GrowthRate != "40% YoY growth" {
		t.Fatalf("unexpected growth rate %q", signals.GrowthRate)
	}
	if signals.FundingDate != "May 2025" {
		t.Fatalf("unexpected funding date %q", signals.FundingDate)
	}
}

func TestBuildCompanyProfileMultipliers(t *testing.T) {
	cases := []struct {
		name    string
		signals CompanySignals
		want    float64
	}{
		{"public", CompanySignals{Stage: StagePublic}, 0.9},
		{"late unicorn", CompanySignals{Stage: StageLateUnicorn}, 1.1},
		{"growth", CompanySignals{Stage: StageGrowth}, 1.2},
		{"early", CompanySignals{Stage: StageEarly}, 1.15},
		{"unknown startup hint", CompanySignals{Stage: StageUnknown, StartupHint: true}, 1.1},
		{"unknown maturity hint", CompanySignals{Stage: StageUnknown, MaturityHint: true}, 0.95},
		{"unknown no hint", CompanySignals{Stage: StageUnknown}, 1.0},
		{"secondary boost", CompanySignals{Stage: StagePublic, HasSecondaryMarket: true}, 1.0},
		{"boost clamped at max", CompanySignals{Stage: StageGrowth, HasSecondaryMarket: true}, 1.3},
	}

	for _, tc := range cases {
		profile := BuildCompanyProfile("acme", tc.signals)
		if profile.EquityMultiplier != tc.want {
			t.Fatalf("%s: expected multiplier %g, got %g", tc.name, tc.want, profile.EquityMultiplier)
		}
		if profile.EquityMultiplier < 0.8 || profile.EquityMultiplier > 1.3 {
			t.Fatalf("%s: multiplier %g outside [0.8, 1.3]", tc.name, profile.EquityMultiplier)
		}
	}
}

func TestBuildCompanyProfileLargeCap(t *testing.T) {
	large := BuildCompanyProfile("acme", CompanySignals{ValuationUSD: 17.84e9})
	if !large.LargeCap {
		t.Fatalf("expected $17.84B company to be large-cap")
	}

	small := BuildCompanyProfile("acme", CompanySignals{ValuationUSD: 4e9})
	if small.LargeCap {
		t.Fatalf("expected $4B company not to be large-cap")
	}
}

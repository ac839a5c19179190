package domain

import "testing"

func TestEquityScoreClampedAtTen(t *testing.T) {
	// Board member (base 9) at a growth-stage company with secondary market
	// activity (multiplier 1.3): round(9 * 1.3) = 12, clamped to 10.
	company := BuildCompanyProfile("acme", CompanySignals{Stage: StageGrowth, HasSecondaryMarket: true})
	role := ClassifyRole("Board Member")

	if got := EquityScore("", role, company); got != 10 {
		t.Fatalf("expected clamped score 10, got %d", got)
	}
}

func TestEquityScoreSeniorityHint(t *testing.T) {
	company := BuildCompanyProfile("acme", CompanySignals{Stage: StageUnknown})

	plain := EquityScore("unknown", ClassifyRole("Software Engineer"), company)
	if plain != 6 {
		t.Fatalf("expected engineer score 6, got %d", plain)
	}

	hinted := EquityScore("senior", ClassifyRole("Software Engineer"), company)
	if hinted != 7 {
		t.Fatalf("expected hinted engineer score 7, got %d", hinted)
	}

	// A senior title moves the ladder base. Only the provider hint earns
	// the bonus point.
	titled := EquityScore("unknown", ClassifyRole("Senior Software Engineer"), company)
	if titled != 7 {
		t.Fatalf("expected senior-titled engineer score 7, got %d", titled)
	}

	executive := EquityScore("Executive", ClassifyRole("Senior Software Engineer"), company)
	if executive != 8 {
		t.Fatalf("expected executive-hinted score 8, got %d", executive)
	}
}

func TestEquityScoreMultiplierApplied(t *testing.T) {
	role := ClassifyRole("Software Engineer")

	growth := BuildCompanyProfile("acme", CompanySignals{Stage: StageGrowth})
	if got := EquityScore("unknown", role, growth); got != 7 {
		t.Fatalf("expected round(6*1.2)=7, got %d", got)
	}

	public := BuildCompanyProfile("acme", CompanySignals{Stage: StagePublic})
	if got := EquityScore("unknown", role, public); got != 5 {
		t.Fatalf("expected round(6*0.9)=5, got %d", got)
	}
}

func TestConfidenceScoreBounds(t *testing.T) {
	// Even an empty record keeps the discovery-channel point.
	empty := ConfidenceScore(Contact{})
	if empty != 2 {
		t.Fatalf("expected floor confidence 2, got %d", empty)
	}

	full := ConfidenceScore(Contact{
		FullName: "Jane Doe",
		JobTitle: "Software Engineer",
		Email:    "jane.doe@acme.com",
	})
	if full != 5 {
		t.Fatalf("expected ceiling confidence 5, got %d", full)
	}
}

func TestConfidenceScoreComponents(t *testing.T) {
	// Placeholder email addresses do not earn the email point.
	got := ConfidenceScore(Contact{
		FullName: "Jane Doe",
		JobTitle: "Software Engineer",
		Email:    "noemail@acme.com",
	})
	if got != 4 {
		t.Fatalf("expected confidence 4 with placeholder email, got %d", got)
	}

	// Short titles do not earn the title point.
	got = ConfidenceScore(Contact{
		FullName: "Jane Doe",
		JobTitle: "Dev",
		Email:    "jane.doe@acme.com",
	})
	if got != 4 {
		t.Fatalf("expected confidence 4 with short title, got %d", got)
	}

	// Name plus the channel point alone lands at 3.
	got = ConfidenceScore(Contact{
		FullName: "Jane Doe",
		JobTitle: "Dev",
	})
	if got != 3 {
		t.Fatalf("expected confidence 3 with name only, got %d", got)
	}
}

func TestQualifiedThresholds(t *testing.T) {
	cases := []struct {
		equity     int
		confidence int
		want       bool
	}{
		{7, 4, true},
		{6, 3, true},
		{7, 3, true},
		{6, 2, false},
		{5, 5, false},
		{10, 1, false},
	}

	for _, tc := range cases {
		if got := Qualified(tc.equity, tc.confidence); got != tc.want {
			t.Fatalf("Qualified(%d, %d): expected %v, got %v", tc.equity, tc.confidence, tc.want, got)
		}
	}
}

package domain

import "strings"

// RoleTier buckets job titles into outreach profiles.
type RoleTier string

const (
	TierVicePresident  RoleTier = "VP"
	TierDirector       RoleTier = "Director"
	TierSeniorEngineer RoleTier = "Senior Engineer"
	TierEngineer       RoleTier = "Engineer"
	TierManager        RoleTier = "Manager"
	TierHRPeople       RoleTier = "HR/People"
	TierSupport        RoleTier = "Support"
	TierMid            RoleTier = "Mid-level"
)

// RoleProfile is the classification result for a job title.
type RoleProfile struct {
	Tier             RoleTier
	BaseScore        int
	TenureRange      string
	PreferredChannel string
	EquityLikelihood string
}

// tierProfiles holds the per-tier outreach attributes. Base scores come from
// the title ladder, not this table.
var tierProfiles = map[RoleTier]struct {
	tenure     string
	channel    string
	likelihood string
}{
	TierVicePresident:  {"4-6 years", "LinkedIn", "High"},
	TierDirector:       {"3-5 years", "LinkedIn", "High"},
	TierSeniorEngineer: {"2-4 years", "LinkedIn", "High"},
	TierEngineer:       {"1-3 years", "LinkedIn", "Medium-High"},
	TierManager:        {"2-4 years", "LinkedIn", "High"},
	TierHRPeople:       {"2-3 years", "LinkedIn", "Medium"},
	TierSupport:        {"1-2 years", "Email", "Medium"},
	TierMid:            {"2-3 years", "LinkedIn", "Medium-High"},
}

// ClassifyRole maps a job title to its role profile. The title ladder is
// checked in precedence order; the first matching rule wins. Matching is
// case-insensitive.
func ClassifyRole(jobTitle string) RoleProfile {
	lower := strings.ToLower(jobTitle)
	tier, base := ladderMatch(lower)

	profile := tierProfiles[tier]
	return RoleProfile{
		Tier:             tier,
		BaseScore:        base,
		TenureRange:      profile.tenure,
		PreferredChannel: profile.channel,
		EquityLikelihood: profile.likelihood,
	}
}

func ladderMatch(lower string) (RoleTier, int) {
	switch {
	case strings.Contains(lower, "board") && strings.Contains(lower, "member"):
		return TierVicePresident, 9
	case strings.Contains(lower, "ceo") || strings.Contains(lower, "cto") || strings.Contains(lower, "cfo"):
		return TierVicePresident, 9
	case strings.Contains(lower, "chief"):
		return TierVicePresident, 8
	case strings.Contains(lower, "vp") || strings.Contains(lower, "vice president"):
		return TierVicePresident, 8
	case strings.Contains(lower, "head") || strings.Contains(lower, "director"):
		return TierDirector, 8
	case strings.Contains(lower, "senior") || strings.Contains(lower, "staff") || strings.Contains(lower, "principal"):
		return TierSeniorEngineer, 7
	case strings.Contains(lower, "manager") || strings.Contains(lower, "lead"):
		return TierManager, 6
	case strings.Contains(lower, "engineer") || strings.Contains(lower, "scientist") || strings.Contains(lower, "researcher"):
		return TierEngineer, 6
	case (strings.Contains(lower, "product") && strings.Contains(lower, "manager")) ||
		strings.Contains(lower, "designer") || strings.Contains(lower, "design"):
		return TierMid, 6
	case strings.Contains(lower, "administrative") || strings.Contains(lower, "assistant") || strings.Contains(lower, "coordinator"):
		return TierSupport, 3
	case strings.Contains(lower, "hr") || strings.Contains(lower, "recruiting") || strings.Contains(lower, "talent"):
		return TierHRPeople, 4
	default:
		return TierMid, 5
	}
}

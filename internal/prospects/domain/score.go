package domain

import (
	"math"
	"strings"
)

// Score bounds.
const (
	minEquityScore     = 1
	maxEquityScore     = 10
	minConfidenceScore = 1
	maxConfidenceScore = 5
)

// EquityScore estimates how much sellable equity a prospect likely holds,
// on a 1-10 scale. The title ladder supplies the base score, the discovery
// provider's seniority hint adds one point for senior or executive labels,
// and the company's equity multiplier scales the result before rounding
// and clamping.
func EquityScore(seniorityHint string, role RoleProfile, company CompanyProfile) int {
	base := role.BaseScore

	hint := strings.ToLower(seniorityHint)
	if hint == "executive" || hint == "senior" {
		base = clampScore(base+1, minEquityScore, maxEquityScore)
	}

	scaled := int(math.Round(float64(base) * company.EquityMultiplier))
	return clampScore(scaled, minEquityScore, maxEquityScore)
}

// ConfidenceScore rates how trustworthy the contact record itself is, on a
// 1-5 scale. One point each for a plausible name, a descriptive title, and
// a usable email, plus one for arriving through the discovery channel at
// all, so every discovered contact starts at 2.
func ConfidenceScore(c Contact) int {
	// Base of 1 plus the discovery-channel point.
	score := 2

	if strings.Contains(c.FullName, " ") && len(c.FullName) > 3 {
		score++
	}
	if len(c.JobTitle) > 5 {
		score++
	}
	if strings.Contains(c.Email, "@") && !strings.Contains(strings.ToLower(c.Email), "noemail") {
		score++
	}

	return clampScore(score, minConfidenceScore, maxConfidenceScore)
}

// Qualified applies the two-tier qualification threshold: either a strong
// equity score with solid confidence, or a decent equity score with at
// least moderate confidence.
func Qualified(equityScore, confidenceScore int) bool {
	if equityScore >= 7 && confidenceScore >= 4 {
		return true
	}
	return equityScore >= 6 && confidenceScore >= 3
}

func clampScore(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

package domain

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// EligibilityRules is the versioned allow/deny configuration for the seller
// filter. The embedded rules.yaml is the single authoritative copy.
type EligibilityRules struct {
	Version              int                 `yaml:"version"`
	ExecutiveKeywords    []string            `yaml:"executive_keywords"`
	Founders             map[string][]string `yaml:"founders"`
	AllowedHeadRoles     []string            `yaml:"allowed_head_roles"`
	AllowedDirectorRoles []string            `yaml:"allowed_director_roles"`
}

// LoadDefaultRules parses the embedded ruleset.
func LoadDefaultRules() (EligibilityRules, error) {
	var rules EligibilityRules
	if err := yaml.Unmarshal(defaultRulesYAML, &rules); err != nil {
		return EligibilityRules{}, fmt.Errorf("parse eligibility rules: %w", err)
	}
	if len(rules.ExecutiveKeywords) == 0 {
		return EligibilityRules{}, fmt.Errorf("eligibility rules: executive keyword list is empty")
	}
	return rules, nil
}

var namePattern = regexp.MustCompile(`^[A-Za-z\s'-]+$`)

// EligibilityFilter decides whether a discovered contact is worth evaluating:
// the record must look like a real person, and the person must be a
// plausible equity seller rather than a founder or C-suite executive.
type EligibilityFilter struct {
	rules EligibilityRules
}

// NewEligibilityFilter creates a filter with the given ruleset.
func NewEligibilityFilter(rules EligibilityRules) *EligibilityFilter {
	return &EligibilityFilter{rules: rules}
}

// RulesVersion returns the version of the active ruleset.
func (f *EligibilityFilter) RulesVersion() int {
	return f.rules.Version
}

// Eligible combines the well-formedness and realistic-seller checks.
func (f *EligibilityFilter) Eligible(c Contact) bool {
	return f.IsWellFormed(c) && f.IsRealisticSeller(c)
}

// IsWellFormed rejects placeholder or scraped-garbage records.
func (f *EligibilityFilter) IsWellFormed(c Contact) bool {
	name := strings.TrimSpace(c.FullName)
	title := strings.TrimSpace(c.JobTitle)

	hasRealName := len(name) > 3 &&
		strings.Contains(name, " ") &&
		namePattern.MatchString(name)

	lowerTitle := strings.ToLower(title)
	hasRealTitle := len(title) > 3 &&
		!strings.EqualFold(title, "Employed") &&
		!strings.Contains(lowerTitle, "user agreement") &&
		!strings.Contains(lowerTitle, "terms of service")

	return hasRealName && hasRealTitle
}

// IsRealisticSeller rejects founders and true executives, who hold too much
// equity (and signaling risk) to be secondary-sale prospects. Senior IC
// roles on the head-of and director-of allow lists are admitted even when a
// deny rule would otherwise catch them.
func (f *EligibilityFilter) IsRealisticSeller(c Contact) bool {
	name := strings.ToLower(c.FullName)
	title := strings.ToLower(c.JobTitle)

	isExecutive := containsAny(title, f.rules.ExecutiveKeywords)
	hasFounderName := strings.Contains(name, "founder") || strings.Contains(title, "founder")

	founders := f.rules.Founders[strings.ToLower(strings.TrimSpace(c.Company))]
	isCompanyFounder := containsAny(name, founders)

	isAllowedHead := containsAny(title, f.rules.AllowedHeadRoles)
	isAllowedDirector := containsAny(title, f.rules.AllowedDirectorRoles)

	return (!isExecutive && !hasFounderName && !isCompanyFounder) || isAllowedHead || isAllowedDirector
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

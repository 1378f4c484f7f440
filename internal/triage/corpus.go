package triage

import "github.com/alexanderramin/krisis/internal/domain"

// SeedExample is one labeled exemplar phrase.
type SeedExample struct {
	Label  domain.Priority
	Phrase string
}

// SeedCorpus is the fixed training set for the priority classifier:
// each of the four labels carries five exemplar phrases. It is authored
// once at build time and never extended from user data.
var SeedCorpus = []SeedExample{
	{domain.PriorityCritical, "production outage service down for all users"},
	{domain.PriorityCritical, "data loss after failed deployment urgent"},
	{domain.PriorityCritical, "security breach customer accounts exposed"},
	{domain.PriorityCritical, "payment processing failing checkout broken"},
	{domain.PriorityCritical, "cannot login entire team blocked"},

	{domain.PriorityHigh, "major feature broken for many customers"},
	{domain.PriorityHigh, "severe performance degradation on core pages"},
	{domain.PriorityHigh, "frequent crashes in main workflow"},
	{domain.PriorityHigh, "api errors breaking partner integration"},
	{domain.PriorityHigh, "blocking bug before release deadline"},

	{domain.PriorityMedium, "intermittent errors with known workaround"},
	{domain.PriorityMedium, "refactor module to reduce technical debt"},
	{domain.PriorityMedium, "improve validation messages on signup form"},
	{domain.PriorityMedium, "update documentation for new endpoint"},
	{domain.PriorityMedium, "slow report generation for large accounts"},

	{domain.PriorityLow, "typo in settings page label"},
	{domain.PriorityLow, "minor css alignment issue on footer"},
	{domain.PriorityLow, "cosmetic color tweak for button hover"},
	{domain.PriorityLow, "nice to have enhancement for tooltips"},
	{domain.PriorityLow, "small copy update in welcome email"},
}

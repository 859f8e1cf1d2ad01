package classifier

import "github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"

// Tables holds the keyword configuration the classifier runs on.
// Tables are built once at startup and never mutated afterwards, so a single
// instance is safe to share across concurrent requests. Alternate sets can be
// injected per deployment or per test.
type Tables struct {
	// CategoryKeywords maps each category to its trigger keywords.
	// Keywords match as word-boundary prefixes: "meet" also counts
	// "meeting" and "meetings". General has no keywords — it is the
	// fallback and only wins by default.
	CategoryKeywords map[model.Category][]string

	// PriorityKeywords holds the high and medium keyword lists.
	// There is no low list; low is the default tier.
	PriorityKeywords map[model.Priority][]string

	// SuggestedActions maps each category to its fixed 4-entry checklist.
	SuggestedActions map[model.Category][]string

	// ActionVerbs is the closed lexicon of verbs worth surfacing.
	ActionVerbs []string
}

// DefaultTables returns the production keyword configuration.
func DefaultTables() Tables {
	return Tables{
		CategoryKeywords: map[model.Category][]string{
			model.CategoryScheduling: {
				"meet", "schedule", "appointment", "calendar",
				"discuss", "agenda", "event", "remind",
			},
			model.CategoryFinance: {
				"budget", "invoice", "payment", "expense",
				"cost", "tax", "billing", "salary", "refund",
			},
			model.CategoryTechnical: {
				"bug", "fix", "deploy", "server", "database",
				"code", "api", "error", "install", "upgrade",
				"software", "network",
			},
			model.CategorySafety: {
				"safety", "hazard", "danger", "emergency",
				"incident", "accident", "inspection", "injury",
				"fire",
			},
			model.CategoryGeneral: {},
		},
		PriorityKeywords: map[model.Priority][]string{
			model.PriorityHigh: {
				"urgent", "asap", "immediately", "today",
				"critical", "emergency",
			},
			model.PriorityMedium: {
				"soon", "tomorrow", "this week", "next week",
				"important", "priority",
			},
		},
		SuggestedActions: map[model.Category][]string{
			model.CategoryScheduling: {
				"Block calendar",
				"Send invite",
				"Prepare agenda",
				"Set reminder",
			},
			model.CategoryFinance: {
				"Review budget",
				"Collect receipts",
				"Request approval",
				"Update records",
			},
			model.CategoryTechnical: {
				"Reproduce issue",
				"Check logs",
				"Assign engineer",
				"Schedule maintenance window",
			},
			model.CategorySafety: {
				"Notify safety officer",
				"File incident report",
				"Inspect site",
				"Review protocols",
			},
			model.CategoryGeneral: {
				"Review details",
				"Set due date",
				"Assign owner",
				"Add checklist",
			},
		},
		ActionVerbs: []string{
			"schedule", "prepare", "review", "complete", "submit",
			"send", "update", "fix", "repair", "install", "check",
			"verify", "approve", "confirm", "notify", "contact",
			"assign",
		},
	}
}

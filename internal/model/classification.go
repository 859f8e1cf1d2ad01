package model

// Category is the coarse classification bucket for a task's subject matter.
type Category string

const (
	CategoryScheduling Category = "scheduling"
	CategoryFinance    Category = "finance"
	CategoryTechnical  Category = "technical"
	CategorySafety     Category = "safety"
	CategoryGeneral    Category = "general"
)

// Categories lists every category in a fixed evaluation order.
// General comes first: it is the zero-score fallback and never wins a tie.
var Categories = []Category{
	CategoryGeneral,
	CategoryScheduling,
	CategoryFinance,
	CategoryTechnical,
	CategorySafety,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryScheduling, CategoryFinance, CategoryTechnical, CategorySafety, CategoryGeneral:
		return true
	}
	return false
}

// Priority is the urgency tier inferred from language cues.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ExtractedEntities holds structured mentions found in free text.
// A nil slice means the extractor found nothing; callers persisting this
// struct as JSON observe the field as absent, not as an empty array.
type ExtractedEntities struct {
	Dates       []string `json:"dates,omitempty"`
	Persons     []string `json:"persons,omitempty"`
	Locations   []string `json:"locations,omitempty"`
	ActionVerbs []string `json:"actionVerbs,omitempty"`
}

// Empty reports whether no entities were extracted at all.
func (e ExtractedEntities) Empty() bool {
	return len(e.Dates) == 0 && len(e.Persons) == 0 && len(e.Locations) == 0 && len(e.ActionVerbs) == 0
}

// Classification is the full result of analyzing a task's text content.
type Classification struct {
	Category          Category          `json:"category"`
	Priority          Priority          `json:"priority"`
	ExtractedEntities ExtractedEntities `json:"extracted_entities"`
	SuggestedActions  []string          `json:"suggested_actions"`
}

package classifier

import (
	"strings"
	"time"
	"unicode"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
)

// Classifier turns free-text task content into category, priority, extracted
// entities and a suggested-action checklist. It is pure and stateless: every
// input, including empty strings, produces a well-formed result and identical
// inputs produce identical outputs. Safe for concurrent use.
type Classifier struct {
	tables  Tables
	verbs   map[string]struct{}
	dateRef *when.Parser
	now     func() time.Time
}

// New creates a Classifier over the given keyword tables.
func New(tables Tables) *Classifier {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	verbs := make(map[string]struct{}, len(tables.ActionVerbs))
	for _, v := range tables.ActionVerbs {
		verbs[v] = struct{}{}
	}

	return &Classifier{
		tables:  tables,
		verbs:   verbs,
		dateRef: w,
		now:     time.Now,
	}
}

// Classify analyzes a title/description pair. It never fails.
func (c *Classifier) Classify(title, description string) model.Classification {
	content := strings.TrimSpace(title + " " + description)

	category := c.detectCategory(content)

	return model.Classification{
		Category: category,
		Priority: c.detectPriority(content),
		ExtractedEntities: model.ExtractedEntities{
			Dates:       c.extractDates(content),
			Persons:     extractPersons(content),
			Locations:   extractLocations(content),
			ActionVerbs: c.extractActionVerbs(content),
		},
		SuggestedActions: c.suggestedActions(category),
	}
}

// detectCategory scores every category by counting word-boundary prefix
// matches of its keywords across the whole content, case-insensitively.
// A category wins only with a score strictly above every other category;
// any tie for the maximum, zero or nonzero, resolves to general. That
// tie-break is load-bearing: changing it silently reclassifies
// mixed-keyword text.
func (c *Classifier) detectCategory(content string) model.Category {
	words := splitWords(strings.ToLower(content))

	best := model.CategoryGeneral
	bestScore := 0
	tied := false
	for _, cat := range model.Categories {
		score := 0
		for _, kw := range c.tables.CategoryKeywords[cat] {
			for _, w := range words {
				if strings.HasPrefix(w, kw) {
					score++
				}
			}
		}
		if score > bestScore {
			best = cat
			bestScore = score
			tied = false
		} else if score == bestScore && score > 0 {
			tied = true
		}
	}
	if tied {
		return model.CategoryGeneral
	}
	return best
}

// detectPriority is a two-tier short-circuit substring scan: the first high
// keyword found wins, then the first medium keyword, otherwise low.
func (c *Classifier) detectPriority(content string) model.Priority {
	lower := strings.ToLower(content)

	for _, kw := range c.tables.PriorityKeywords[model.PriorityHigh] {
		if strings.Contains(lower, kw) {
			return model.PriorityHigh
		}
	}
	for _, kw := range c.tables.PriorityKeywords[model.PriorityMedium] {
		if strings.Contains(lower, kw) {
			return model.PriorityMedium
		}
	}
	return model.PriorityLow
}

// suggestedActions returns a copy of the fixed checklist for the category.
// Unknown categories fall back to the general checklist so the result is
// always populated.
func (c *Classifier) suggestedActions(cat model.Category) []string {
	actions, ok := c.tables.SuggestedActions[cat]
	if !ok || len(actions) == 0 {
		actions = c.tables.SuggestedActions[model.CategoryGeneral]
	}
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// splitWords breaks content into alphanumeric word tokens.
func splitWords(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

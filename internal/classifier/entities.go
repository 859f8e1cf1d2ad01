package classifier

import (
	"regexp"
	"strings"
	"unicode"
)

// Entity extraction patterns. Each extractor is an independent pure function
// over the same combined title+description text.
//
// Person captures: a trigger phrase followed by one or more capitalized words.
// Location captures: either a capitalized phrase after a place preposition, or
// an alphanumeric token after room/office/building/floor.
var (
	personAssignPattern = regexp.MustCompile(
		`\b(?:[Ww]ith|[Bb]y|[Aa]ssign(?:ed)?(?:\s+to)?)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	personContactPattern = regexp.MustCompile(
		`\b(?:[Cc]ontact|[Rr]each\s+out\s+to|[Nn]otify|[Ii]nform)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

	locationPrepositionPattern = regexp.MustCompile(
		`\b(?:[Aa]t|[Ii]n|[Ll]ocation:|[Vv]enue:)\s+([A-Z][A-Za-z0-9]*(?:\s+[A-Z][A-Za-z0-9]*)*)`)
	locationPlacePattern = regexp.MustCompile(
		`(?i)\b(?:room|office|building|floor)\s+([A-Za-z0-9]+)`)
)

// extractDates finds natural-language date/time mentions. It keeps the
// literal matched substring, not a normalized date, in the order the parser
// reports matches. The parser returns one match per call, so the scan
// restarts after each hit.
func (c *Classifier) extractDates(content string) []string {
	var out []string

	base := c.now()
	rest := content
	for {
		res, err := c.dateRef.Parse(rest, base)
		if err != nil || res == nil {
			break
		}
		out = append(out, res.Text)

		next := res.Index + len(res.Text)
		if next <= 0 || next >= len(rest) {
			break
		}
		rest = rest[next:]
	}
	return out
}

// extractPersons collects capitalized names following assignment or contact
// trigger phrases, de-duplicated in order of first occurrence.
func extractPersons(content string) []string {
	var matches []string
	for _, pattern := range []*regexp.Regexp{personAssignPattern, personContactPattern} {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			matches = append(matches, m[1])
		}
	}
	return dedupe(matches)
}

// extractLocations collects place mentions from both location patterns,
// de-duplicated in order of first occurrence.
func extractLocations(content string) []string {
	var matches []string
	for _, m := range locationPrepositionPattern.FindAllStringSubmatch(content, -1) {
		matches = append(matches, m[1])
	}
	for _, m := range locationPlacePattern.FindAllStringSubmatch(content, -1) {
		matches = append(matches, m[1])
	}
	return dedupe(matches)
}

// extractActionVerbs tokenizes on whitespace, lower-cases, strips non-letter
// characters and keeps tokens that exactly match the verb lexicon. Order of
// first occurrence is preserved so results are deterministic.
func (c *Classifier) extractActionVerbs(content string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, tok := range strings.Fields(content) {
		word := stripNonLetters(strings.ToLower(tok))
		if word == "" {
			continue
		}
		if _, ok := c.verbs[word]; !ok {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

// dedupe removes exact duplicates while preserving first-occurrence order.
// Returns nil for empty input so absent entity fields stay absent.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func stripNonLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

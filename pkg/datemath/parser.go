package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves due-date strings from API requests into absolute
// time.Time values. It accepts absolute layouts (RFC3339, date-only) as well
// as relative forms ("today", "tomorrow", "in 3 days", "next friday").
type Parser struct {
	location *time.Location
}

// absoluteLayouts are tried in order before any relative parsing.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// NewParser creates a due-date parser for the given IANA timezone string,
// e.g. "UTC" or "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Resolve converts a due-date string to an absolute time.Time.
// The baseTime is the reference point for relative forms (usually time.Now()).
// Relative forms resolve to the start of the target day.
func (p *Parser) Resolve(raw string, baseTime time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty due date")
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, raw, p.location); err == nil {
			return t, nil
		}
	}

	relative := strings.ToLower(raw)

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.resolveInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.resolveNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized due date %q", raw)
}

// resolveInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) resolveInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// resolveNextWeekday handles "next monday" .. "next sunday".
func (p *Parser) resolveNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

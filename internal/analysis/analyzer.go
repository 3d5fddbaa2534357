package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Analyzer locates known test names in report text, extracts their values and
// nearby reference ranges, and classifies each value against its bounds.
// Patterns are compiled once per rule at construction; Analyze is
// deterministic and safe for repeated use on the same input.
type Analyzer struct {
	rules    *Ruleset
	patterns []rulePatterns
}

// rulePatterns holds the compiled searches for one rule.
type rulePatterns struct {
	// value matches the test name followed by the first decimal number,
	// allowing any run of non-digit characters in between.
	value *regexp.Regexp
	// refRange matches a "<num> - <num>" pair somewhere after the test
	// name and its value. This is a heuristic: for short test names the
	// pair can belong to an unrelated figure further along the line, and
	// such matches are accepted as-is.
	refRange *regexp.Regexp
}

// NewAnalyzer builds an analyzer over the given rule table.
func NewAnalyzer(rules *Ruleset) *Analyzer {
	patterns := make([]rulePatterns, 0, rules.Len())
	for _, rule := range rules.Entries() {
		name := regexp.QuoteMeta(rule.Name)
		patterns = append(patterns, rulePatterns{
			value:    regexp.MustCompile(name + `[^0-9]*(\d+\.?\d*)`),
			refRange: regexp.MustCompile(name + `.*?\d+\.?\d*.*?(\d+\.?\d*)\s*-\s*(\d+\.?\d*)`),
		})
	}

	return &Analyzer{rules: rules, patterns: patterns}
}

// Analyze scans the text for every rule-table entry and returns one record
// per recognized test, in rule-table order. Only the first occurrence of a
// test name/value pair is used; a name with no following number is skipped.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	lowered := strings.ToLower(text)

	var records AnalysisResult
	for i, rule := range a.rules.Entries() {
		m := a.patterns[i].value.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		low, high := rule.Low, rule.High
		if rm := a.patterns[i].refRange.FindStringSubmatch(lowered); rm != nil {
			l, lerr := strconv.ParseFloat(rm[1], 64)
			h, herr := strconv.ParseFloat(rm[2], 64)
			if lerr == nil && herr == nil {
				low, high = l, h
			}
		}

		status := classify(value, low, high)
		records = append(records, MatchedRecord{
			Test:           strings.ToUpper(rule.Name),
			Value:          value,
			ReferenceRange: formatRange(low, high, rule.Unit),
			Status:         status,
			StatusDetail:   fmt.Sprintf("%s (%s %s)", status, formatNumber(value), rule.Unit),
			Meaning:        rule.Meaning,
		})
	}

	return records
}

// classify compares a value against its bounds. Boundary values themselves
// are Normal.
func classify(value, low, high float64) Status {
	switch {
	case value < low:
		return StatusLow
	case value > high:
		return StatusHigh
	default:
		return StatusNormal
	}
}

func formatRange(low, high float64, unit string) string {
	return fmt.Sprintf("%s - %s %s", formatNumber(low), formatNumber(high), unit)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package domain

import "sort"

// Severity classifies a lint finding.
type Severity string

// Severities in increasing order of importance.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity parses a severity string.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityInfo, SeverityWarning, SeverityError:
		return Severity(s), nil
	}
	return "", ErrInvalidSeverity
}

// rank orders severities for sorting and comparison.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

// Finding is a single lint diagnostic.
// Fields are ordered to minimize memory padding.
type Finding struct {
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line,omitempty"` // 1-based, 0 when unknown
}

// SortFindings orders findings by path, line, then rule id, keeping the
// emission order of otherwise equal findings.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Rule < b.Rule
	})
}

// CountBySeverity returns the number of findings at each severity.
func CountBySeverity(findings []Finding) map[Severity]int {
	counts := make(map[Severity]int)
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

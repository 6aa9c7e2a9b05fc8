package domain

import "testing"

func TestParseSeverity(t *testing.T) {
	for _, s := range []string{"info", "warning", "error"} {
		sev, err := ParseSeverity(s)
		if err != nil {
			t.Fatalf("ParseSeverity(%q) error: %v", s, err)
		}
		if string(sev) != s {
			t.Errorf("ParseSeverity(%q) = %q", s, sev)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("ParseSeverity(fatal) should fail")
	}
}

func TestSeverityAtLeast(t *testing.T) {
	if !SeverityError.AtLeast(SeverityWarning) {
		t.Error("error should be at least warning")
	}
	if !SeverityWarning.AtLeast(SeverityWarning) {
		t.Error("warning should be at least warning")
	}
	if SeverityInfo.AtLeast(SeverityWarning) {
		t.Error("info should not be at least warning")
	}
}

func TestSortFindings(t *testing.T) {
	findings := []Finding{
		{Rule: "b", Path: "z.md", Line: 1},
		{Rule: "a", Path: "a.md", Line: 5},
		{Rule: "b", Path: "a.md", Line: 2},
		{Rule: "a", Path: "a.md", Line: 2},
	}
	SortFindings(findings)

	want := []Finding{
		{Rule: "a", Path: "a.md", Line: 2},
		{Rule: "b", Path: "a.md", Line: 2},
		{Rule: "a", Path: "a.md", Line: 5},
		{Rule: "b", Path: "z.md", Line: 1},
	}
	for i := range want {
		if findings[i] != want[i] {
			t.Errorf("findings[%d] = %+v, want %+v", i, findings[i], want[i])
		}
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors([]Finding{{Severity: SeverityWarning}}) {
		t.Error("warnings alone should not count as errors")
	}
	if !HasErrors([]Finding{{Severity: SeverityWarning}, {Severity: SeverityError}}) {
		t.Error("expected errors to be detected")
	}
}

func TestCountBySeverity(t *testing.T) {
	counts := CountBySeverity([]Finding{
		{Severity: SeverityError},
		{Severity: SeverityError},
		{Severity: SeverityInfo},
	})
	if counts[SeverityError] != 2 || counts[SeverityInfo] != 1 || counts[SeverityWarning] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

package domain

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Bug report", "bug_report"},
		{"already slug", "question", "question"},
		{"punctuation", "Feature request!", "feature_request"},
		{"emoji and spaces", "🐛 Bug report ", "bug_report"},
		{"multiple separators", "a -- b", "a_b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsTemplateFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".github/ISSUE_TEMPLATE/bug_report.md", true},
		{".github/ISSUE_TEMPLATE/bug_report.yml", true},
		{".github/ISSUE_TEMPLATE/bug_report.yaml", true},
		{".github/ISSUE_TEMPLATE/config.yml", false},
		{".github/ISSUE_TEMPLATE/config.yaml", false},
		{".github/ISSUE_TEMPLATE/README.txt", false},
		{".github/ISSUE_TEMPLATE/notes", false},
	}

	for _, tt := range tests {
		if got := IsTemplateFile(tt.path); got != tt.want {
			t.Errorf("IsTemplateFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	if got := FormatForPath("a/b.md"); got != FormatMarkdown {
		t.Errorf("FormatForPath(.md) = %q, want markdown", got)
	}
	if got := FormatForPath("a/b.yml"); got != FormatForm {
		t.Errorf("FormatForPath(.yml) = %q, want form", got)
	}
	if got := FormatForPath("a/b.YAML"); got != FormatForm {
		t.Errorf("FormatForPath(.YAML) = %q, want form", got)
	}
}

func TestTemplatePath(t *testing.T) {
	got := TemplatePath("Bug report")
	want := ".github/ISSUE_TEMPLATE/bug_report.md"
	if got != want {
		t.Errorf("TemplatePath() = %q, want %q", got, want)
	}
}

func TestChooserPath(t *testing.T) {
	if got := ChooserPath(); got != ".github/ISSUE_TEMPLATE/config.yml" {
		t.Errorf("ChooserPath() = %q", got)
	}
}

package domain

import "strings"

// Format identifies the template file format.
type Format string

// Template formats.
const (
	// FormatMarkdown is a classic Markdown template with YAML front matter.
	FormatMarkdown Format = "markdown"
	// FormatForm is a GitHub issue form (structured YAML).
	FormatForm Format = "form"
)

// Template represents a single issue template discovered in a repository.
// Fields are ordered to minimize memory padding.
type Template struct {
	// Front matter metadata (or top-level keys for issue forms).
	Name        string   // Display name; identity of the template
	About       string   // Short description (classic templates)
	Description string   // Short description (issue forms)
	Title       string   // Default issue title prefix
	Labels      []string // Labels applied on submission
	Assignees   []string // Users assigned on submission

	// Body content. Exactly one of the two is populated depending on Format.
	Body     string        // Markdown body (FormatMarkdown)
	Elements []FormElement // Form body elements (FormatForm)

	// File information.
	Path     string // Path relative to the repository root
	Raw      string // Original file content
	Format   Format
	BodyLine int // 1-based line where the body starts (markdown only)

	// Keys maps present front-matter keys (or form top-level keys) to
	// their 1-based line numbers, for lint diagnostics.
	Keys map[string]int

	// Problems encountered while parsing. Parsing is total: a malformed
	// file still yields a Template so lint can report on it.
	ParseErrors []string
}

// DisplayAbout returns the template description, preferring the issue-form
// `description` key over the classic `about` key.
func (t *Template) DisplayAbout() string {
	if t.Description != "" {
		return t.Description
	}
	return t.About
}

// HasFrontMatter reports whether the template carried any metadata at all.
func (t *Template) HasFrontMatter() bool {
	return t.Name != "" || t.About != "" || t.Description != "" ||
		t.Title != "" || len(t.Labels) > 0 || len(t.Assignees) > 0
}

// FormElement is a single entry of an issue form's body.
type FormElement struct {
	Type        string            // markdown, input, textarea, dropdown, checkboxes
	ID          string            // Optional element id, unique within the form
	Attributes  FormAttributes    // Element attributes
	Validations map[string]bool   // e.g. required: true
	Unknown     map[string]string // Unrecognized keys, kept for lint
	Line        int               // 1-based line of the element in the file
}

// FormAttributes holds the attribute block of a form element.
type FormAttributes struct {
	Label       string
	Description string
	Placeholder string
	Value       string
	Options     []string // dropdown / checkboxes entries
}

// knownFormTypes are the body element types GitHub issue forms accept.
var knownFormTypes = map[string]bool{
	"markdown":   true,
	"input":      true,
	"textarea":   true,
	"dropdown":   true,
	"checkboxes": true,
}

// KnownFormType reports whether typ is a valid issue-form element type.
func KnownFormType(typ string) bool {
	return knownFormTypes[strings.ToLower(typ)]
}

// Chooser represents the template chooser configuration (config.yml).
type Chooser struct {
	BlankIssuesEnabled bool
	ContactLinks       []ContactLink
	Path               string // Path relative to the repository root
	ParseErrors        []string
}

// ContactLink directs reporters to an external destination.
type ContactLink struct {
	Name  string
	URL   string
	About string
	Line  int // 1-based line of the link entry
}

// TemplateFilter specifies criteria for listing templates.
type TemplateFilter struct {
	Format Format   // Empty = all formats
	Labels []string // Filter by labels (AND condition)
}

// Matches reports whether the template satisfies the filter.
func (f TemplateFilter) Matches(t *Template) bool {
	if f.Format != "" && t.Format != f.Format {
		return false
	}
	for _, want := range f.Labels {
		found := false
		for _, l := range t.Labels {
			if strings.EqualFold(l, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

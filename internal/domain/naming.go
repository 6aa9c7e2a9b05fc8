package domain

import (
	"path"
	"regexp"
	"strings"
)

// PrimaryTemplateDir is where `init` writes templates and the first
// directory searched during discovery.
const PrimaryTemplateDir = ".github/ISSUE_TEMPLATE"

// TemplateDirs lists template directories in GitHub's lookup order.
var TemplateDirs = []string{
	".github/ISSUE_TEMPLATE",
	"docs/ISSUE_TEMPLATE",
	"ISSUE_TEMPLATE",
}

// LegacyTemplateFiles lists single-file fallback locations, matched
// case-insensitively on the file name.
var LegacyTemplateFiles = []string{
	".github/issue_template.md",
	"docs/issue_template.md",
	"issue_template.md",
}

// chooserNames are the chooser file names inside a template directory.
var chooserNames = map[string]bool{
	"config.yml":  true,
	"config.yaml": true,
}

// IsChooserFile reports whether the given path names a template chooser.
func IsChooserFile(p string) bool {
	return chooserNames[strings.ToLower(path.Base(p))]
}

// IsTemplateFile reports whether the file extension is one GitHub reads
// from a template directory.
func IsTemplateFile(p string) bool {
	if IsChooserFile(p) {
		return false
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".yml", ".yaml":
		return true
	}
	return false
}

// FormatForPath returns the template format implied by the file extension.
func FormatForPath(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".yml", ".yaml":
		return FormatForm
	}
	return FormatMarkdown
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a template name into a file-name-safe slug.
// "Bug report" -> "bug_report".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugPattern.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// TemplatePath returns the repo-relative path for a new markdown template
// with the given name.
func TemplatePath(name string) string {
	return path.Join(PrimaryTemplateDir, Slugify(name)+".md")
}

// ChooserPath returns the repo-relative path of the chooser config.
func ChooserPath() string {
	return path.Join(PrimaryTemplateDir, "config.yml")
}

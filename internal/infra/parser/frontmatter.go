// Package parser turns issue template files into domain objects.
// Parsing is total: malformed input produces a Template whose ParseErrors
// carry the problems, so lint can report instead of aborting.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/issuekit/internal/domain"
)

// knownFrontMatterKeys are the keys GitHub reads from classic templates.
var knownFrontMatterKeys = map[string]bool{
	"name":      true,
	"about":     true,
	"title":     true,
	"labels":    true,
	"assignees": true,
}

// SplitFrontMatter splits raw content into a front matter block and body.
// It tolerates a UTF-8 BOM and CRLF line endings. ok is false when the
// file has no front matter; bodyLine is the 1-based line of the first
// body line.
func SplitFrontMatter(raw string) (frontMatter, body string, bodyLine int, ok bool) {
	content := strings.TrimPrefix(raw, "\uFEFF")
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(normalized, "---\n") {
		return "", normalized, 1, false
	}

	rest := normalized[len("---\n"):]
	if strings.HasPrefix(rest, "---\n") || rest == "---" {
		// Closing delimiter right after the opener: empty front matter.
		body = strings.TrimPrefix(strings.TrimPrefix(rest, "---"), "\n")
		return "", body, 3, true
	}
	end := strings.Index(rest, "\n---")
	if end < 0 {
		// Unterminated front matter: treat everything as front matter.
		return rest, "", 1, true
	}
	frontMatter = rest[:end+1]

	body = rest[end+len("\n---"):]
	// Drop the delimiter's own line ending.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	} else {
		body = ""
	}

	// Front matter occupies its lines plus two delimiter lines.
	bodyLine = strings.Count(frontMatter, "\n") + 3
	return frontMatter, body, bodyLine, true
}

// ParseMarkdownTemplate parses a classic Markdown template with YAML
// front matter.
func ParseMarkdownTemplate(relPath, raw string) *domain.Template {
	t := &domain.Template{
		Path:   relPath,
		Raw:    raw,
		Format: domain.FormatMarkdown,
		Keys:   map[string]int{},
	}

	fm, body, bodyLine, ok := SplitFrontMatter(raw)
	t.Body = body
	t.BodyLine = bodyLine
	if !ok {
		t.ParseErrors = append(t.ParseErrors, domain.ErrNoFrontMatter.Error())
		return t
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(fm), &root); err != nil {
		t.ParseErrors = append(t.ParseErrors, fmt.Sprintf("front matter: %v", err))
		return t
	}
	if len(root.Content) == 0 {
		t.ParseErrors = append(t.ParseErrors, "front matter is empty")
		return t
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		t.ParseErrors = append(t.ParseErrors, "front matter is not a mapping")
		return t
	}

	applyMapping(t, mapping, 1)
	return t
}

// applyMapping reads template metadata from a YAML mapping node.
// lineOffset is added to node lines (front matter starts after the
// opening delimiter line).
func applyMapping(t *domain.Template, mapping *yaml.Node, lineOffset int) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]
		key := strings.ToLower(keyNode.Value)
		t.Keys[key] = keyNode.Line + lineOffset

		switch key {
		case "name":
			t.Name = scalarValue(valNode)
		case "about":
			t.About = scalarValue(valNode)
		case "description":
			t.Description = scalarValue(valNode)
		case "title":
			t.Title = scalarValue(valNode)
		case "labels":
			t.Labels = stringList(valNode)
		case "assignees":
			t.Assignees = stringList(valNode)
		}
	}
}

// KnownFrontMatterKey reports whether GitHub reads the given key from a
// classic template's front matter.
func KnownFrontMatterKey(key string) bool {
	return knownFrontMatterKeys[strings.ToLower(key)]
}

// scalarValue returns the node's scalar value, or "" for non-scalars.
func scalarValue(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode {
		return ""
	}
	return strings.TrimSpace(n.Value)
}

// stringList accepts both YAML sequences and comma-separated scalars,
// as GitHub does for labels and assignees.
func stringList(n *yaml.Node) []string {
	var out []string
	switch n.Kind {
	case yaml.SequenceNode:
		for _, item := range n.Content {
			out = append(out, strings.TrimSpace(item.Value))
		}
	case yaml.ScalarNode:
		if strings.TrimSpace(n.Value) == "" {
			return nil
		}
		for _, part := range strings.Split(n.Value, ",") {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out
}

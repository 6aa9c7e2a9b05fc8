package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/issuekit/internal/domain"
)

// ParseChooser parses a template chooser file (config.yml).
func ParseChooser(relPath, raw string) *domain.Chooser {
	c := &domain.Chooser{
		// GitHub defaults blank issues to enabled when the key is absent.
		BlankIssuesEnabled: true,
		Path:               relPath,
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &root); err != nil {
		c.ParseErrors = append(c.ParseErrors, fmt.Sprintf("yaml: %v", err))
		return c
	}
	if len(root.Content) == 0 {
		return c
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		c.ParseErrors = append(c.ParseErrors, "top level is not a mapping")
		return c
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]

		switch strings.ToLower(keyNode.Value) {
		case "blank_issues_enabled":
			var enabled bool
			if err := valNode.Decode(&enabled); err != nil {
				c.ParseErrors = append(c.ParseErrors,
					fmt.Sprintf("line %d: blank_issues_enabled: not a boolean", valNode.Line))
				continue
			}
			c.BlankIssuesEnabled = enabled
		case "contact_links":
			for _, item := range valNode.Content {
				if item.Kind != yaml.MappingNode {
					c.ParseErrors = append(c.ParseErrors,
						fmt.Sprintf("line %d: contact link is not a mapping", item.Line))
					continue
				}
				c.ContactLinks = append(c.ContactLinks, parseContactLink(item))
			}
		default:
			c.ParseErrors = append(c.ParseErrors,
				fmt.Sprintf("line %d: unknown key %q", keyNode.Line, keyNode.Value))
		}
	}

	return c
}

func parseContactLink(node *yaml.Node) domain.ContactLink {
	link := domain.ContactLink{Line: node.Line}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch strings.ToLower(keyNode.Value) {
		case "name":
			link.Name = scalarValue(valNode)
		case "url":
			link.URL = scalarValue(valNode)
		case "about":
			link.About = scalarValue(valNode)
		}
	}
	return link
}

package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/issuekit/internal/domain"
)

// ParseFormTemplate parses a GitHub issue form (.yml / .yaml).
func ParseFormTemplate(relPath, raw string) *domain.Template {
	t := &domain.Template{
		Path:   relPath,
		Raw:    raw,
		Format: domain.FormatForm,
		Keys:   map[string]int{},
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &root); err != nil {
		t.ParseErrors = append(t.ParseErrors, fmt.Sprintf("yaml: %v", err))
		return t
	}
	if len(root.Content) == 0 {
		t.ParseErrors = append(t.ParseErrors, "file is empty")
		return t
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		t.ParseErrors = append(t.ParseErrors, "top level is not a mapping")
		return t
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]
		key := strings.ToLower(keyNode.Value)
		t.Keys[key] = keyNode.Line

		switch key {
		case "name":
			t.Name = scalarValue(valNode)
		case "description":
			t.Description = scalarValue(valNode)
		case "title":
			t.Title = scalarValue(valNode)
		case "labels":
			t.Labels = stringList(valNode)
		case "assignees":
			t.Assignees = stringList(valNode)
		case "body":
			t.Elements = parseFormBody(t, valNode)
		}
	}

	return t
}

// parseFormBody reads the body element list of an issue form.
func parseFormBody(t *domain.Template, body *yaml.Node) []domain.FormElement {
	if body.Kind != yaml.SequenceNode {
		t.ParseErrors = append(t.ParseErrors, "body is not a list")
		return nil
	}

	elements := make([]domain.FormElement, 0, len(body.Content))
	for _, item := range body.Content {
		if item.Kind != yaml.MappingNode {
			t.ParseErrors = append(t.ParseErrors,
				fmt.Sprintf("line %d: body element is not a mapping", item.Line))
			continue
		}
		elements = append(elements, parseFormElement(item))
	}
	return elements
}

func parseFormElement(node *yaml.Node) domain.FormElement {
	el := domain.FormElement{
		Line:        node.Line,
		Validations: map[string]bool{},
		Unknown:     map[string]string{},
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		switch strings.ToLower(keyNode.Value) {
		case "type":
			el.Type = scalarValue(valNode)
		case "id":
			el.ID = scalarValue(valNode)
		case "attributes":
			el.Attributes = parseFormAttributes(valNode)
		case "validations":
			for j := 0; j+1 < len(valNode.Content); j += 2 {
				el.Validations[strings.ToLower(valNode.Content[j].Value)] =
					valNode.Content[j+1].Value == "true"
			}
		default:
			el.Unknown[keyNode.Value] = valNode.Value
		}
	}
	return el
}

func parseFormAttributes(node *yaml.Node) domain.FormAttributes {
	var attrs domain.FormAttributes
	if node.Kind != yaml.MappingNode {
		return attrs
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		switch strings.ToLower(keyNode.Value) {
		case "label":
			attrs.Label = scalarValue(valNode)
		case "description":
			attrs.Description = scalarValue(valNode)
		case "placeholder":
			attrs.Placeholder = scalarValue(valNode)
		case "value":
			attrs.Value = valNode.Value
		case "options":
			for _, opt := range node.Content[i+1].Content {
				// Dropdown options are scalars; checkbox options are
				// mappings with a label key.
				if opt.Kind == yaml.ScalarNode {
					attrs.Options = append(attrs.Options, strings.TrimSpace(opt.Value))
					continue
				}
				for j := 0; j+1 < len(opt.Content); j += 2 {
					if strings.EqualFold(opt.Content[j].Value, "label") {
						attrs.Options = append(attrs.Options, strings.TrimSpace(opt.Content[j+1].Value))
					}
				}
			}
		}
	}
	return attrs
}

// Parse parses a template file by extension.
func Parse(relPath, raw string) *domain.Template {
	if domain.FormatForPath(relPath) == domain.FormatForm {
		return ParseFormTemplate(relPath, raw)
	}
	return ParseMarkdownTemplate(relPath, raw)
}

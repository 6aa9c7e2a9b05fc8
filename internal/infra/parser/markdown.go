package parser

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// BodyInfo summarizes the Markdown body of a template.
type BodyInfo struct {
	Headings  []Heading
	Comments  []Comment // HTML comment placeholder blocks
	TaskItems int       // number of checklist items
	HasText   bool      // any non-comment, non-blank content
}

// Heading is a Markdown heading with its position.
type Heading struct {
	Text  string
	Level int
	Line  int // 1-based, relative to the whole file
}

// Comment is an HTML comment block with its position.
type Comment struct {
	Text string
	Line int
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// AnalyzeBody parses body as Markdown and collects structure information.
// baseLine is the 1-based line of the body's first line within the file.
func AnalyzeBody(body string, baseLine int) BodyInfo {
	var info BodyInfo
	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			line := 0
			if node.Lines().Len() > 0 {
				line = lineAt(src, node.Lines().At(0).Start, baseLine)
			}
			info.Headings = append(info.Headings, Heading{
				Text:  string(node.Text(src)),
				Level: node.Level,
				Line:  line,
			})
		case *ast.Paragraph, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.Blockquote:
			info.HasText = true
		case *extast.TaskCheckBox:
			info.TaskItems++
		}
		return ast.WalkContinue, nil
	})

	info.Comments = findComments(body, baseLine)

	// A body consisting only of comments and blank lines has no text.
	if info.HasText {
		stripped := strings.TrimSpace(StripComments(body))
		info.HasText = stripped != ""
	}

	return info
}

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// findComments locates HTML comment blocks and their starting lines.
func findComments(body string, baseLine int) []Comment {
	var comments []Comment
	for _, loc := range commentPattern.FindAllStringIndex(body, -1) {
		comments = append(comments, Comment{
			Text: body[loc[0]:loc[1]],
			Line: lineAt([]byte(body), loc[0], baseLine),
		})
	}
	return comments
}

// StripComments removes HTML comment blocks, collapsing runs of blank
// lines they leave behind.
func StripComments(body string) string {
	out := commentPattern.ReplaceAllString(body, "")
	blankRuns := regexp.MustCompile(`\n{3,}`)
	return blankRuns.ReplaceAllString(out, "\n\n")
}

// lineAt converts a byte offset into a 1-based line number, offset by base.
func lineAt(src []byte, offset, base int) int {
	line := base
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
		}
	}
	return line
}

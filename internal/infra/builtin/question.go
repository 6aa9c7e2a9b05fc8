package builtin

var questionPreset = Preset{
	FileName:    "question.md",
	Description: "Question with checklist and context",
	Content: `---
name: Question
about: Ask a question about usage or behavior
title: "[QUESTION] "
labels: question
assignees: ''
---

## Checklist

- [ ] I searched existing issues and discussions
- [ ] I read the documentation

## Question

<!-- What would you like to know? -->

## Context

<!-- What are you trying to achieve? Include version and configuration if relevant. -->

- Version: {{version}}
`,
}

package builtin

// bugReportPreset follows the conventional GitHub bug report layout:
// checklist first, then environment details, then reproduction steps.
var bugReportPreset = Preset{
	FileName:    "bug_report.md",
	Description: "Bug report with checklist, environment and reproduction steps",
	Content: `---
name: Bug report
about: Create a report to help us improve
title: "[BUG] "
labels: bug
assignees: ''
---

## Checklist

- [ ] I searched existing issues and this has not been reported yet
- [ ] I am running the latest released version

## Environment

- Version: {{version}}
- OS: <!-- e.g. macOS 15.1, Ubuntu 24.04 -->

## Describe the bug

<!-- A clear and concise description of what the bug is. -->

## To reproduce

<!--
Steps to reproduce the behavior:
1. Run '...'
2. See error
-->

## Expected behavior

<!-- A clear and concise description of what you expected to happen. -->

## Configuration

<!-- If relevant, paste the configuration you are using. -->

` + "```toml\n```\n",
}

package builtin

var featureRequestPreset = Preset{
	FileName:    "feature_request.md",
	Description: "Feature request with problem statement and alternatives",
	Content: `---
name: Feature request
about: Suggest an idea for this project
title: "[FEATURE] "
labels: enhancement
assignees: ''
---

## Is your feature request related to a problem?

<!-- A clear and concise description of what the problem is. -->

## Describe the solution you'd like

<!-- A clear and concise description of what you want to happen. -->

## Describe alternatives you've considered

<!-- Any alternative solutions or features you've considered. -->

## Additional context

<!-- Add any other context or screenshots about the feature request here. -->
`,
}

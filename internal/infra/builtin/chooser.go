package builtin

var chooserPreset = Preset{
	FileName:    "config.yml",
	Description: "Template chooser configuration",
	Content: `blank_issues_enabled: false
contact_links:
  - name: Discussions
    url: https://github.com/OWNER/REPO/discussions
    about: Ask and answer questions here
`,
}

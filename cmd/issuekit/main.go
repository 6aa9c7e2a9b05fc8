// Package main is the entry point for the issuekit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/issuekit/internal/app"
	"github.com/runoshun/issuekit/internal/cli"
	"github.com/runoshun/issuekit/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Allow running help/version/config template outside a git repository
		if errors.Is(err, domain.ErrNotGitRepository) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where no git repository is found.
func runWithoutContainer(gitErr error) error {
	if canRunWithoutGit(os.Args[1:]) {
		rootCmd := cli.NewRootCommand(nil, version)
		return rootCmd.Execute()
	}
	return fmt.Errorf("%w (run issuekit inside a repository)", gitErr)
}

func canRunWithoutGit(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help":
		return true
	case "config":
		// `config template` reads nothing from the repository
		return len(args) > 1 && args[1] == "template"
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

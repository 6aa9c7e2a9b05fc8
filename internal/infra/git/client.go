// Package git reads repository metadata via go-git.
package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/runoshun/issuekit/internal/domain"
)

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)

// Client provides read-only access to a repository's metadata.
type Client struct {
	repo     *gogit.Repository
	repoRoot string
}

// NewClient opens the repository containing dir, walking up parent
// directories the way git itself does.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, domain.ErrNotGitRepository
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}

	return &Client{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// CurrentBranch returns the name of the checked-out branch, or the
// abbreviated hash when HEAD is detached.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return shortHash(head.Hash()), nil
}

// HeadShort returns the abbreviated HEAD commit hash.
func (c *Client) HeadShort() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return shortHash(head.Hash()), nil
}

// LatestTag returns the name of the most recently committed tag, or ""
// when the repository has no tags.
func (c *Client) LatestTag() (string, error) {
	iter, err := c.repo.Tags()
	if err != nil {
		return "", fmt.Errorf("list tags: %w", err)
	}

	var (
		latest     string
		latestWhen int64
	)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		commit, err := c.tagCommit(ref)
		if err != nil {
			// Skip tags that don't resolve to commits.
			return nil
		}
		when := commit.Committer.When.Unix()
		if latest == "" || when > latestWhen {
			latest = ref.Name().Short()
			latestWhen = when
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterate tags: %w", err)
	}
	return latest, nil
}

// tagCommit resolves a tag ref to its commit, following annotated tags.
func (c *Client) tagCommit(ref *plumbing.Reference) (*object.Commit, error) {
	if tag, err := c.repo.TagObject(ref.Hash()); err == nil {
		return tag.Commit()
	}
	return c.repo.CommitObject(ref.Hash())
}

// RemoteSlug returns the "owner/repo" slug of the origin remote, or ""
// when no origin remote is configured.
func (c *Client) RemoteSlug() (string, error) {
	remote, err := c.repo.Remote("origin")
	if err != nil {
		if err == gogit.ErrRemoteNotFound {
			return "", nil
		}
		return "", fmt.Errorf("resolve origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return parseRemoteSlug(urls[0]), nil
}

// parseRemoteSlug extracts "owner/repo" from https and ssh remote URLs.
func parseRemoteSlug(url string) string {
	s := strings.TrimSuffix(url, ".git")

	// ssh scp-like form: git@host:owner/repo
	if idx := strings.Index(s, ":"); idx >= 0 && strings.Contains(s[:idx], "@") && !strings.Contains(s[:idx], "/") {
		s = s[idx+1:]
	} else if idx := strings.Index(s, "://"); idx >= 0 {
		// https://host/owner/repo
		s = s[idx+3:]
		if slash := strings.Index(s, "/"); slash >= 0 {
			s = s[slash+1:]
		}
	}

	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

func shortHash(h plumbing.Hash) string {
	return h.String()[:7]
}

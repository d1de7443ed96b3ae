package git

import (
	"context"
	"fmt"
	"log/slog"
	oe "os/exec"
	"strings"
	"time"

	"github.com/byte4ever/commit_cadence/cadence/exec"
)

// gitDateLayout is the ISO-8601 form git accepts for
// GIT_AUTHOR_DATE / GIT_COMMITTER_DATE overrides.
const gitDateLayout = "2006-01-02T15:04:05"

// Repo is an existing local git checkout. Create with Open.
type Repo struct {
	// Dir is the filesystem location of the checkout.
	Dir string
	// RemoteName is the name of the upstream remote.
	RemoteName string
}

// Open verifies that dir is inside a git working tree and
// returns a Repo bound to the given remote.
func Open(dir string, remoteName string) (*Repo, error) {
	const errCtx = "opening repository"

	out, err := exec.Ex(
		dir, "git",
		"rev-parse", "--is-inside-work-tree",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if strings.TrimSpace(out) != "true" {
		return nil, fmt.Errorf(
			"%s: %s is not a git working tree",
			errCtx, dir,
		)
	}

	if remoteName == "" {
		remoteName = "origin"
	}

	return &Repo{
		Dir:        dir,
		RemoteName: remoteName,
	}, nil
}

// Add stages the file at path (absolute or relative to the
// checkout root).
func (r *Repo) Add(path string) error {
	const errCtx = "staging file"

	if _, err := exec.Ex(
		r.Dir, "git", "add", "--", path,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Commit records the staged changes with message, setting
// both the author and committer dates to when. Committing a
// clean index is an error; callers mutate a file first.
func (r *Repo) Commit(
	message string,
	when time.Time,
) error {
	const errCtx = "committing"

	date := when.Format(gitDateLayout)

	env := []string{
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}

	if _, err := exec.ExEnv(
		r.Dir, env, "git", "commit", "-m", message,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Push publishes local commits on the current branch to the
// given branch on the remote.
func (r *Repo) Push(branch string) error {
	const errCtx = "pushing"

	if _, err := exec.Ex(
		r.Dir, "git",
		"push", r.RemoteName,
		"HEAD:refs/heads/"+branch,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// IsClean reports whether the working tree has no
// uncommitted changes.
func (r *Repo) IsClean() bool {
	//nolint:gosec // args are constants
	cmd := oe.CommandContext(
		context.Background(),
		"git", "status", "--porcelain",
	)
	cmd.Dir = r.Dir

	by, err := cmd.CombinedOutput()
	if err != nil {
		slog.Error(
			"failed to check repo status",
			"error", err,
		)

		return false
	}

	return len(by) == 0
}

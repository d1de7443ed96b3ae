package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/byte4ever/commit_cadence/cadence/activity"
	"github.com/byte4ever/commit_cadence/cadence/commitmsg"
	"github.com/byte4ever/commit_cadence/cadence/config"
	"github.com/byte4ever/commit_cadence/cadence/draw"
	"github.com/byte4ever/commit_cadence/cadence/git"
	"github.com/byte4ever/commit_cadence/cadence/mutator"
	"github.com/byte4ever/commit_cadence/cadence/selector"
)

// Committer records commits on a repository. *git.Repo is
// the production implementation; tests substitute fakes so
// a run needs no live checkout.
type Committer interface {
	Add(path string) error
	Commit(message string, when time.Time) error
	Push(branch string) error
}

// Config holds all settings and collaborators for a
// cadence run. Zero-valued collaborator fields are filled
// with production defaults by New.
type Config struct {
	// RepoDir is the checkout the run mutates.
	RepoDir string

	// Settings are the tunable run parameters.
	Settings config.Config

	// Override carries the manual trigger parameters.
	Override activity.Override

	// Seed seeds the randomness source when Source is
	// nil; zero means time-seeded.
	Seed uint64

	// DryRun skips pushes when true.
	DryRun bool

	// Platform optionally resolves the push branch on
	// the hosting platform before the first push. Nil
	// falls back to Settings.Branch.
	Platform git.Platform

	// Committer performs the git operations. Nil opens
	// RepoDir as a real repository.
	Committer Committer

	// Source supplies every random draw.
	Source draw.Source

	// Select picks the file to mutate.
	Select func(
		src draw.Source,
		now time.Time,
	) (string, bool, error)

	// Mutate appends filler content to a file.
	Mutate func(path string, now time.Time) error

	// Message produces one commit message.
	Message func(src draw.Source) string

	// Stamp produces the commit timestamp.
	Stamp func(
		now time.Time,
		src draw.Source,
	) time.Time

	// Now reports the current time.
	Now func() time.Time

	// Sleep blocks for the given duration.
	Sleep func(d time.Duration)
}

// Runner executes a single cadence run.
type Runner struct {
	cfg Config
}

// New validates cfg, fills collaborator defaults, and
// returns a Runner.
func New(cfg Config) (*Runner, error) {
	const errCtx = "creating runner"

	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.Source == nil {
		cfg.Source = draw.New(cfg.Seed)
	}

	if cfg.Committer == nil {
		repo, err := git.Open(
			cfg.RepoDir, cfg.Settings.Remote,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		// Leftover changes from an aborted run must not
		// be swept into the first fabricated commit.
		if !repo.IsClean() {
			return nil, fmt.Errorf(
				"%s: working tree %s has uncommitted "+
					"changes",
				errCtx, cfg.RepoDir,
			)
		}

		cfg.Committer = repo
	}

	if cfg.Select == nil {
		sel := selector.New(
			cfg.RepoDir,
			cfg.Settings.Directories,
			cfg.Settings.Extensions,
		)
		cfg.Select = sel.Pick
	}

	if cfg.Mutate == nil {
		cfg.Mutate = mutator.Append
	}

	if cfg.Message == nil {
		cfg.Message = commitmsg.Generate
	}

	if cfg.Stamp == nil {
		cfg.Stamp = cfg.Settings.Window().Generate
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	return &Runner{cfg: cfg}, nil
}

// Run executes the full cadence workflow: decide activity,
// resolve the push branch, then select, mutate, commit,
// and push with randomized delays. Any failure aborts the
// run immediately; commits already made stay in place.
func (rn *Runner) Run(ctx context.Context) error {
	const errCtx = "running cadence"

	cfg := rn.cfg
	src := cfg.Source

	count := activity.Decide(
		cfg.Now().Weekday(), cfg.Override, src,
	)
	if count == 0 {
		slog.Info("inactive day, nothing to do")

		return nil
	}

	branch, err := rn.resolveBranch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	batchSize := planBatches(
		count, cfg.Settings.BatchThreshold, src,
	)

	slog.Info(
		"starting run",
		"commits", count,
		"branch", branch,
		"batch_size", batchSize,
	)

	for i := 1; i <= count; i++ {
		if err := rn.makeCommit(i, src); err != nil {
			return fmt.Errorf(
				"%s: commit %d/%d: %w",
				errCtx, i, count, err,
			)
		}

		pushNow := i == count ||
			(batchSize > 0 && i%batchSize == 0)

		if pushNow {
			if err := rn.push(branch); err != nil {
				return fmt.Errorf(
					"%s: commit %d/%d: %w",
					errCtx, i, count, err,
				)
			}
		}

		if i == count {
			break
		}

		if pushNow {
			rn.pause(cfg.Settings.BatchDelay, src)
		} else {
			rn.pause(cfg.Settings.CommitDelay, src)
		}
	}

	slog.Info("run complete", "commits", count)

	return nil
}

// makeCommit performs one select-mutate-commit step.
func (rn *Runner) makeCommit(
	index int,
	src draw.Source,
) error {
	cfg := rn.cfg
	now := cfg.Now()

	path, created, err := cfg.Select(src, now)
	if err != nil {
		return err
	}

	if err := cfg.Mutate(path, now); err != nil {
		return err
	}

	msg := cfg.Message(src)
	when := cfg.Stamp(now, src)

	if err := cfg.Committer.Add(path); err != nil {
		return err
	}

	if err := cfg.Committer.Commit(msg, when); err != nil {
		return err
	}

	slog.Info(
		"created commit",
		"index", index,
		"file", path,
		"new_file", created,
		"date", when.Format(time.RFC3339),
	)

	return nil
}

// push publishes pending commits unless the run is dry.
func (rn *Runner) push(branch string) error {
	if rn.cfg.DryRun {
		slog.Info("dry run: skipping push")

		return nil
	}

	if err := rn.cfg.Committer.Push(branch); err != nil {
		return err
	}

	slog.Info("pushed", "branch", branch)

	return nil
}

// pause sleeps for a random duration inside the delay
// range. Once started the sleep has no cancellation path.
func (rn *Runner) pause(d config.Delay, src draw.Source) {
	secs := draw.Between(
		src, d.MinSeconds, d.MaxSeconds,
	)

	rn.cfg.Sleep(time.Duration(secs) * time.Second)
}

// resolveBranch asks the platform for the push target,
// falling back to the configured branch when no platform
// is wired.
func (rn *Runner) resolveBranch(
	ctx context.Context,
) (string, error) {
	if rn.cfg.Platform == nil {
		return rn.cfg.Settings.Branch, nil
	}

	return rn.cfg.Platform.DefaultBranch(ctx)
}

// planBatches decides the push batch size for n commits.
// Zero means a single push after the final commit. Batched
// pushing is considered only past the threshold, chosen
// with 70% probability, with the batch count drawn from
// [2,4]. A batch size that truncates below one abandons
// batching instead of inheriting undefined behavior.
func planBatches(
	n int,
	threshold int,
	src draw.Source,
) int {
	if n <= threshold {
		return 0
	}

	if src.Float64() >= 0.7 {
		return 0
	}

	batches := draw.Between(src, 2, 4)

	size := n / batches
	if size < 1 {
		return 0
	}

	slog.Info(
		"batching pushes",
		"batches", batches,
		"batch_size", size,
	)

	return size
}

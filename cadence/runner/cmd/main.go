// Command run_cadence executes one scheduled or manual
// cadence run: it decides whether today is active, fabricates
// the decided number of commits in the target checkout, and
// pushes them to the hosting platform in randomized batches.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/commit_cadence/cadence/activity"
	"github.com/byte4ever/commit_cadence/cadence/config"
	"github.com/byte4ever/commit_cadence/cadence/git"
	"github.com/byte4ever/commit_cadence/cadence/git/bitbucket"
	"github.com/byte4ever/commit_cadence/cadence/git/github"
	"github.com/byte4ever/commit_cadence/cadence/git/gitlab"
	"github.com/byte4ever/commit_cadence/cadence/runner"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // CLI flag setup is inherently long
func run() error {
	const errCtx = "running cadence"

	// Trigger flags.
	count := flag.Int(
		"count", -1,
		"Explicit commit count (-1 lets the day decide)",
	)
	force := flag.Bool(
		"force", false,
		"Force an active day regardless of random draws",
	)

	// Repository flags.
	repoDir := flag.String(
		"repo_dir", ".",
		"Path of the checkout to mutate",
	)
	remote := flag.String(
		"remote", "",
		"Git remote name (overrides configuration)",
	)
	branch := flag.String(
		"branch", "",
		"Push target branch (overrides configuration)",
	)
	configPath := flag.String(
		"config", "",
		"Optional YAML settings file",
	)
	seed := flag.Uint64(
		"seed", 0,
		"Randomness seed (0 seeds from the clock)",
	)
	dryRun := flag.Bool(
		"dry_run", false,
		"Create commits but skip pushes",
	)

	// Platform selection.
	gitServer := flag.String(
		"git_server", "none",
		"Hosting platform for branch resolution: "+
			"github, gitlab, bitbucket, or none",
	)

	// GitHub-specific flags.
	ghRepoOwner := flag.String(
		"github_repo_owner", "",
		"GitHub repository owner",
	)
	ghRepo := flag.String(
		"github_repo", "",
		"GitHub repository name",
	)
	ghToken := flag.String(
		"github_access_token", "",
		"GitHub personal access token",
	)
	ghEnterprise := flag.String(
		"github_enterprise_host", "",
		"GitHub Enterprise hostname",
	)

	// GitLab-specific flags.
	glHost := flag.String(
		"gitlab_host", "",
		"GitLab instance URL",
	)
	glRepo := flag.String(
		"gitlab_repo", "",
		"GitLab project path (org/project)",
	)
	glToken := flag.String(
		"gitlab_access_token", "",
		"GitLab personal access token",
	)

	// Bitbucket-specific flags.
	bbEndpoint := flag.String(
		"bitbucket_api_endpoint", "",
		"Bitbucket Server repository REST API URL",
	)
	bbUser := flag.String(
		"bitbucket_user", "",
		"Bitbucket API username",
	)
	bbPassword := flag.String(
		"bitbucket_password", "",
		"Bitbucket API password or token",
	)

	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	settings = applyOverrides(settings, *remote, *branch)

	platform, err := newPlatform(
		*gitServer,
		platformFlags{
			ghRepoOwner:  *ghRepoOwner,
			ghRepo:       *ghRepo,
			ghToken:      *ghToken,
			ghEnterprise: *ghEnterprise,
			glHost:       *glHost,
			glRepo:       *glRepo,
			glToken:      *glToken,
			bbEndpoint:   *bbEndpoint,
			bbUser:       *bbUser,
			bbPassword:   *bbPassword,
		},
	)
	if err != nil {
		return fmt.Errorf(
			"%s: create platform: %w", errCtx, err,
		)
	}

	rn, err := runner.New(runner.Config{
		RepoDir:  *repoDir,
		Settings: settings,
		Override: activity.Override{
			Count: *count,
			Force: *force,
		},
		Seed:     *seed,
		DryRun:   *dryRun,
		Platform: platform,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := rn.Run(context.Background()); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// applyOverrides replaces the configured remote and branch
// with non-empty flag values.
func applyOverrides(
	cfg config.Config,
	remote string,
	branch string,
) config.Config {
	if remote != "" {
		cfg.Remote = remote
	}

	if branch != "" {
		cfg.Branch = branch
	}

	return cfg
}

// platformFlags bundles platform-specific flag values to
// keep newPlatform under the 4-argument limit.
type platformFlags struct {
	ghRepoOwner  string
	ghRepo       string
	ghToken      string
	ghEnterprise string
	glHost       string
	glRepo       string
	glToken      string
	bbEndpoint   string
	bbUser       string
	bbPassword   string
}

// newPlatform creates a git.Platform based on the server
// name. Pattern: Factory -- selects platform implementation
// at runtime. "none" resolves to no platform so the
// configured branch is used as-is.
func newPlatform(
	server string,
	pf platformFlags,
) (git.Platform, error) {
	const errCtx = "creating platform"

	switch server {
	case "none", "":
		return nil, nil //nolint:nilnil // absent platform is valid

	case "github":
		p, err := github.NewProvider(github.Config{
			RepoOwner:      pf.ghRepoOwner,
			Repo:           pf.ghRepo,
			AccessToken:    pf.ghToken,
			EnterpriseHost: pf.ghEnterprise,
		})
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return p, nil

	case "gitlab":
		p, err := gitlab.NewProvider(gitlab.Config{
			Host:        pf.glHost,
			Repo:        pf.glRepo,
			AccessToken: pf.glToken,
		})
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return p, nil

	case "bitbucket":
		p, err := bitbucket.NewProvider(
			bitbucket.Config{
				APIEndpoint: pf.bbEndpoint,
				User:        pf.bbUser,
				Password:    pf.bbPassword,
			},
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return p, nil

	default:
		return nil, fmt.Errorf(
			"%s: unknown server %q", errCtx, server,
		)
	}
}

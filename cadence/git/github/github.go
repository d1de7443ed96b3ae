package github

import (
	"context"
	"fmt"
	"log/slog"

	gh "github.com/google/go-github/v68/github"
)

// Config holds the settings needed to create a GitHub
// platform provider.
type Config struct {
	// RepoOwner is the GitHub user or organisation
	// that owns the repository.
	RepoOwner string
	// Repo is the repository name (without owner).
	Repo string
	// AccessToken is a personal access token or
	// GitHub App token used for authentication.
	AccessToken string
	// EnterpriseHost is an optional GitHub Enterprise
	// hostname (e.g. "git.corp.example.com"). Leave
	// empty for github.com.
	EnterpriseHost string
}

// Provider resolves repository information on GitHub.
//
// Pattern: Strategy -- implements git.Platform.
type Provider struct {
	client    *gh.Client
	repoOwner string
	repo      string
}

// NewProvider validates cfg and returns a Provider ready
// to query the repository.
func NewProvider(cfg Config) (*Provider, error) {
	const errCtx = "creating github provider"

	if cfg.RepoOwner == "" {
		return nil, fmt.Errorf(
			"%s: repo owner must be set", errCtx,
		)
	}

	if cfg.Repo == "" {
		return nil, fmt.Errorf(
			"%s: repo must be set", errCtx,
		)
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf(
			"%s: access token must be set", errCtx,
		)
	}

	client := gh.NewClient(nil).
		WithAuthToken(cfg.AccessToken)

	if cfg.EnterpriseHost != "" {
		baseURL := "https://" +
			cfg.EnterpriseHost + "/api/v3/"
		uploadURL := "https://" +
			cfg.EnterpriseHost + "/api/uploads/"

		var err error

		client, err = client.WithEnterpriseURLs(
			baseURL, uploadURL,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: enterprise urls: %w",
				errCtx, err,
			)
		}
	}

	return &Provider{
		client:    client,
		repoOwner: cfg.RepoOwner,
		repo:      cfg.Repo,
	}, nil
}

// DefaultBranch fetches the repository and returns its
// default branch name.
func (p *Provider) DefaultBranch(
	ctx context.Context,
) (string, error) {
	const errCtx = "resolving github default branch"

	repo, _, err := p.client.Repositories.Get(
		ctx, p.repoOwner, p.repo,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	branch := repo.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf(
			"%s: repository reports no default branch",
			errCtx,
		)
	}

	slog.Info(
		"resolved default branch",
		"platform", "github",
		"branch", branch,
	)

	return branch, nil
}

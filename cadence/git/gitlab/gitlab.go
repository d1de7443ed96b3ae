// Package gitlab resolves repository information on GitLab
// instances using the official API client.
package gitlab

import (
	"context"
	"fmt"
	"log/slog"

	gl "gitlab.com/gitlab-org/api/client-go"
)

// Config holds the settings needed to create a GitLab
// platform provider.
type Config struct {
	// Host is the base URL of the GitLab instance
	// (e.g. "https://gitlab.com").
	Host string
	// Repo is the full project path
	// (e.g. "org/project").
	Repo string
	// AccessToken is a personal or project access
	// token used for authentication.
	AccessToken string
}

// Provider resolves project information on GitLab.
//
// Pattern: Strategy -- implements git.Platform.
type Provider struct {
	client *gl.Client
	repo   string
}

// NewProvider validates cfg and returns a Provider ready
// to query the project.
func NewProvider(cfg Config) (*Provider, error) {
	const errCtx = "creating gitlab provider"

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf(
			"%s: access token must be set", errCtx,
		)
	}

	if cfg.Repo == "" {
		return nil, fmt.Errorf(
			"%s: repo must be set", errCtx,
		)
	}

	host := cfg.Host
	if host == "" {
		host = "https://gitlab.com"
	}

	client, err := gl.NewClient(
		cfg.AccessToken,
		gl.WithBaseURL(host),
	)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: new client: %w", errCtx, err,
		)
	}

	return &Provider{
		client: client,
		repo:   cfg.Repo,
	}, nil
}

// DefaultBranch fetches the project and returns its
// default branch name.
func (p *Provider) DefaultBranch(
	_ context.Context,
) (string, error) {
	const errCtx = "resolving gitlab default branch"

	project, _, err := p.client.Projects.GetProject(
		p.repo, nil,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if project.DefaultBranch == "" {
		return "", fmt.Errorf(
			"%s: project reports no default branch",
			errCtx,
		)
	}

	slog.Info(
		"resolved default branch",
		"platform", "gitlab",
		"branch", project.DefaultBranch,
	)

	return project.DefaultBranch, nil
}

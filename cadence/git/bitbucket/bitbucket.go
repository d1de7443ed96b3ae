// Package bitbucket resolves repository information on
// Bitbucket Server through its REST API.
package bitbucket

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

// Config holds the settings needed to create a Bitbucket
// platform provider.
type Config struct {
	// APIEndpoint is the Bitbucket Server REST API URL
	// of the repository, including project and repo
	// path (e.g. "https://bb.example.com/rest/api/1.0/
	// projects/PROJ/repos/repo").
	APIEndpoint string
	// User is the Bitbucket API username.
	User string
	// Password is the Bitbucket API password (or
	// personal access token).
	Password string
}

// Provider resolves repository information on Bitbucket
// Server.
//
// Pattern: Strategy -- implements git.Platform.
type Provider struct {
	endpoint string
	user     string
	password string
}

// defaultBranch mirrors the JSON body of the
// /default-branch resource.
type defaultBranch struct {
	ID        string `json:"id,omitempty"`
	DisplayID string `json:"displayId,omitempty"`
}

// NewProvider validates cfg and returns a Provider ready
// to query the repository.
func NewProvider(cfg Config) (*Provider, error) {
	const errCtx = "creating bitbucket provider"

	if cfg.APIEndpoint == "" {
		return nil, fmt.Errorf(
			"%s: api endpoint must be set", errCtx,
		)
	}

	if cfg.User == "" {
		return nil, fmt.Errorf(
			"%s: user must be set", errCtx,
		)
	}

	if cfg.Password == "" {
		return nil, fmt.Errorf(
			"%s: password must be set", errCtx,
		)
	}

	return &Provider{
		endpoint: cfg.APIEndpoint,
		user:     cfg.User,
		password: cfg.Password,
	}, nil
}

// DefaultBranch queries the repository's default-branch
// resource and returns the branch display name.
func (p *Provider) DefaultBranch(
	ctx context.Context,
) (string, error) {
	const errCtx = "resolving bitbucket default branch"

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		p.endpoint+"/default-branch",
		nil,
	)
	if err != nil {
		return "", fmt.Errorf(
			"%s: build request: %w", errCtx, err,
		)
	}

	req.SetBasicAuth(p.user, p.password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf(
			"%s: read response: %w", errCtx, err,
		)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn(
			"bitbucket response",
			"status", resp.StatusCode,
			"body", string(body),
		)

		return "", fmt.Errorf(
			"%s: unexpected status %d",
			errCtx, resp.StatusCode,
		)
	}

	var db defaultBranch
	if err := json.Unmarshal(body, &db); err != nil {
		return "", fmt.Errorf(
			"%s: parse json: %w", errCtx, err,
		)
	}

	if db.DisplayID == "" {
		return "", fmt.Errorf(
			"%s: repository reports no default branch",
			errCtx,
		)
	}

	return db.DisplayID, nil
}

// Package git provides local git repository operations and a strategy
// interface for resolving the push target on different git hosting
// platforms.
//
// Repo wraps an existing checkout with methods for staging, committing
// with author/committer date overrides, and pushing. The Platform
// interface abstracts default-branch resolution; implementations exist
// for GitHub, GitLab, and Bitbucket Server in sub-packages, and
// StaticPlatform covers runs without platform credentials.
package git

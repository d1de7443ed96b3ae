package git

import "context"

// Pattern: Strategy -- swap git hosting platform without
// changing push logic.

// Platform answers questions about the remote repository on
// a git hosting platform. DefaultBranch resolves the branch
// that pushes should target; a failing resolution also
// serves as the reachability check before the first push.
type Platform interface {
	DefaultBranch(ctx context.Context) (string, error)
}

// PlatformFunc adapts a plain function to the Platform
// interface.
type PlatformFunc func(
	ctx context.Context,
) (string, error)

// DefaultBranch delegates to the wrapped function.
func (f PlatformFunc) DefaultBranch(
	ctx context.Context,
) (string, error) {
	return f(ctx)
}

// StaticPlatform returns a Platform that always resolves to
// branch without contacting any hosting platform. Used for
// token-less runs.
func StaticPlatform(branch string) Platform {
	return PlatformFunc(func(
		_ context.Context,
	) (string, error) {
		return branch, nil
	})
}

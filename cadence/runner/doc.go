// Package runner orchestrates a full cadence run: it asks the activity
// decider for a commit count, resolves the push branch through an
// optional platform provider, then loops selecting a file, mutating
// it, generating a message and working-hours timestamp, committing,
// and pushing in randomized batches with randomized delays.
//
// The main entry point is Run on a Runner built by New, which accepts
// a Config struct with all parameters and injectable collaborators.
// Execution is strictly sequential and fail-fast: the first failed
// write, commit, or push aborts the run with no retries and no
// rollback of commits already recorded.
package runner

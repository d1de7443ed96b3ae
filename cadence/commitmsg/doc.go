// Package commitmsg generates human-readable commit messages for
// fabricated activity. Messages are drawn from weighted themes
// (features, bugfixes, refactors, docs, style, chores), filled from a
// small vocabulary, and occasionally prefixed with a scope or extended
// with a body line, so that a log of them resembles a real project
// history.
package commitmsg

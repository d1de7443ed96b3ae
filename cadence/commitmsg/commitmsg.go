package commitmsg

import (
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/commit_cadence/cadence/draw"
)

// theme groups message templates under a weighted
// category. Templates carry {component}, {feature}, or
// {issue} placeholders expanded against the vocabulary
// lists below.
type theme struct {
	name      string
	weight    int
	templates []string
}

// themes is ordered so that weighted selection is
// deterministic under a scripted source. Weights sum
// to 100.
var themes = []theme{
	{
		name:   "feature",
		weight: 20,
		templates: []string{
			"Add {feature}",
			"Implement {feature}",
			"Create {feature}",
			"Introduce {feature}",
			"Build {feature}",
		},
	},
	{
		name:   "bugfix",
		weight: 30,
		templates: []string{
			"Fix {issue}",
			"Resolve {issue}",
			"Fix bug in {component}",
			"Patch {issue}",
			"Correct {issue}",
		},
	},
	{
		name:   "refactor",
		weight: 20,
		templates: []string{
			"Refactor {component}",
			"Clean up {component}",
			"Simplify {component}",
			"Restructure {component}",
			"Optimize {component}",
		},
	},
	{
		name:   "docs",
		weight: 15,
		templates: []string{
			"Update documentation for {component}",
			"Improve {component} docs",
			"Add docs for {component}",
			"Document {feature}",
			"Fix typo in {component} documentation",
		},
	},
	{
		name:   "style",
		weight: 10,
		templates: []string{
			"Format {component}",
			"Fix whitespace in {component}",
			"Style improvements in {component}",
			"Lint {component}",
			"Standardize code style in {component}",
		},
	},
	{
		name:   "chore",
		weight: 5,
		templates: []string{
			"Update dependencies",
			"Bump version",
			"Update config files",
			"Maintenance tasks",
			"Housekeeping",
		},
	},
}

// components that might appear in commit messages.
var components = []string{
	"utils module",
	"config parser",
	"data processor",
	"authentication system",
	"API client",
	"database connector",
	"logger",
	"UI components",
	"test suite",
	"build system",
	"documentation",
	"error handling",
	"validation logic",
	"helper functions",
	"core functionality",
}

// features that might be implemented.
var features = []string{
	"user authentication",
	"data export functionality",
	"caching mechanism",
	"new API endpoint",
	"dark mode",
	"search functionality",
	"notification system",
	"analytics dashboard",
	"user preferences",
	"backup system",
	"rate limiting",
	"error reporting",
	"performance monitoring",
	"keyboard shortcuts",
	"mobile responsiveness",
}

// issues that might be fixed.
var issues = []string{
	"memory leak",
	"race condition",
	"edge case in validation",
	"incorrect error message",
	"performance bottleneck",
	"security vulnerability",
	"broken link",
	"incorrect calculation",
	"timeout issue",
	"compatibility problem",
	"crash on startup",
	"data corruption issue",
	"UI glitch",
	"incorrect sorting",
	"connection handling",
}

// scopes used for the optional conventional-commit
// style prefix.
var scopes = []string{
	"core", "ui", "api", "docs", "tests", "build", "ci",
}

// descriptions occasionally appended as a message body.
var descriptions = []string{
	"This resolves the issues we've been seeing in production.",
	"Closes #123.",
	"Part of the Q3 improvements initiative.",
	"This should improve performance significantly.",
	"Based on user feedback from the beta test.",
}

// totalWeight is the sum of all theme weights.
var totalWeight = func() int {
	total := 0
	for _, th := range themes {
		total += th.weight
	}

	return total
}()

// Generate produces a human-readable commit message. The
// first line is always a short summary; with a 10% chance
// a blank line and a longer description follow.
func Generate(src draw.Source) string {
	th := pickTheme(src)
	tpl := th.templates[src.IntN(len(th.templates))]

	msg := fillPlaceholder(tpl, src)

	// 20% chance of a scope prefix.
	if src.Float64() < 0.2 {
		scope := scopes[src.IntN(len(scopes))]
		msg = scope + ": " + msg
	}

	// 10% chance of a longer description.
	if src.Float64() < 0.1 {
		desc := descriptions[src.IntN(len(descriptions))]
		msg += "\n\n" + desc
	}

	return msg
}

// pickTheme selects a theme by weighted draw.
func pickTheme(src draw.Source) theme {
	roll := src.IntN(totalWeight)

	for _, th := range themes {
		if roll < th.weight {
			return th
		}

		roll -= th.weight
	}

	// Unreachable with consistent weights.
	return themes[len(themes)-1]
}

// fillPlaceholder expands at most one placeholder per
// template using the matching vocabulary list.
func fillPlaceholder(tpl string, src draw.Source) string {
	var (
		key  string
		pool []string
	)

	switch {
	case strings.Contains(tpl, "{component}"):
		key, pool = "component", components
	case strings.Contains(tpl, "{feature}"):
		key, pool = "feature", features
	case strings.Contains(tpl, "{issue}"):
		key, pool = "issue", issues
	default:
		return tpl
	}

	return fasttemplate.ExecuteStringStd(
		tpl, "{", "}",
		map[string]any{
			key: pool[src.IntN(len(pool))],
		},
	)
}

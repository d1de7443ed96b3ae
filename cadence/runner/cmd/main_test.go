package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/commit_cadence/cadence/config"
)

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remote     string
		branch     string
		wantRemote string
		wantBranch string
	}{
		{
			name:       "empty flags keep configuration",
			wantRemote: "origin",
			wantBranch: "main",
		},
		{
			name:       "remote flag wins",
			remote:     "upstream",
			wantRemote: "upstream",
			wantBranch: "main",
		},
		{
			name:       "branch flag wins",
			branch:     "trunk",
			wantRemote: "origin",
			wantBranch: "trunk",
		},
		{
			name:       "both flags win",
			remote:     "mirror",
			branch:     "develop",
			wantRemote: "mirror",
			wantBranch: "develop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := applyOverrides(
				config.Default(),
				tt.remote,
				tt.branch,
			)

			assert.Equal(t, tt.wantRemote, got.Remote)
			assert.Equal(t, tt.wantBranch, got.Branch)
		})
	}
}

func TestNewPlatform_none(t *testing.T) {
	t.Parallel()

	pf, err := newPlatform("none", platformFlags{})

	assert.NoError(t, err)
	assert.Nil(t, pf)
}

func TestNewPlatform_unknown_server(t *testing.T) {
	t.Parallel()

	pf, err := newPlatform("gitea", platformFlags{})

	assert.Nil(t, pf)
	assert.ErrorContains(t, err, "unknown server")
}

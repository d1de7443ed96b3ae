package selector_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/commit_cadence/cadence/draw"
	"github.com/byte4ever/commit_cadence/cadence/selector"
)

var pickTime = time.Date(
	2025, 6, 18, 10, 30, 0, 0, time.UTC,
)

func TestPick_creates_missing_directory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sel := selector.New(root, nil, nil)

	src := &draw.Sequence{Ints: []int{0, 0}}

	path, created, err := sel.Pick(src, pickTime)

	require.NoError(t, err)
	assert.True(t, created)

	dir := filepath.Dir(path)
	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
	assert.Equal(
		t, "docs", filepath.Base(dir),
	)
}

func TestPick_new_file_in_empty_dir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sel := selector.New(root, nil, nil)

	src := &draw.Sequence{Ints: []int{1, 2}}

	path, created, err := sel.Pick(src, pickTime)

	require.NoError(t, err)
	assert.True(t, created)

	// The returned file must not exist prior to the
	// mutation that follows.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Extension is drawn from the supported set.
	ext := filepath.Ext(path)
	assert.True(
		t,
		slices.Contains(
			selector.DefaultExtensions, ext,
		),
		"unexpected extension %q", ext,
	)

	assert.Contains(
		t, filepath.Base(path), "entry_20250618",
	)
}

func TestPick_existing_file(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	docs := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o750))

	for _, name := range []string{"a.md", "b.md", "c.md"} {
		require.NoError(t, os.WriteFile(
			filepath.Join(docs, name),
			[]byte("x\n"),
			0o600,
		))
	}

	sel := selector.New(root, nil, nil)

	src := &draw.Sequence{Ints: []int{0, 1}}

	path, created, err := sel.Pick(src, pickTime)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "b.md", filepath.Base(path))
}

func TestPick_skips_dotfiles_and_subdirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	docs := filepath.Join(root, "docs")
	require.NoError(
		t, os.MkdirAll(filepath.Join(docs, "sub"), 0o750),
	)
	require.NoError(t, os.WriteFile(
		filepath.Join(docs, ".hidden"),
		[]byte("x\n"),
		0o600,
	))

	sel := selector.New(root, nil, nil)

	src := &draw.Sequence{Ints: []int{0, 0}}

	path, created, err := sel.Pick(src, pickTime)

	require.NoError(t, err)

	// Only a dotfile and a subdirectory exist, so the
	// directory counts as empty.
	assert.True(t, created)
	assert.NotEqual(t, ".hidden", filepath.Base(path))
}

func TestPick_stays_inside_directory_set(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sel := selector.New(root, nil, nil)
	src := draw.New(99)

	for range 200 {
		path, _, err := sel.Pick(src, pickTime)
		require.NoError(t, err)

		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)

		top := strings.Split(
			rel, string(filepath.Separator),
		)[0]

		assert.True(
			t,
			slices.Contains(
				selector.DefaultDirectories, top,
			),
			"file %q outside directory set", rel,
		)
	}
}

func TestPick_custom_sets(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sel := selector.New(
		root,
		[]string{"notes"},
		[]string{".txt"},
	)

	src := &draw.Sequence{Ints: []int{0, 0}}

	path, created, err := sel.Pick(src, pickTime)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ".txt", filepath.Ext(path))
	assert.Equal(
		t,
		"notes",
		filepath.Base(filepath.Dir(path)),
	)
}

package exec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/commit_cadence/cadence/exec"
)

func TestEx_success(t *testing.T) {
	t.Parallel()

	out, err := exec.Ex("", "echo", "hello")

	require.NoError(t, err)
	assert.Contains(t, out, "hello")
}

func TestEx_with_dir(t *testing.T) {
	t.Parallel()

	out, err := exec.Ex("/tmp", "pwd")

	require.NoError(t, err)
	assert.Contains(t, out, "/tmp")
}

func TestEx_failure(t *testing.T) {
	t.Parallel()

	_, err := exec.Ex("", "false")

	assert.Error(t, err)
}

func TestExEnv_passes_environment(t *testing.T) {
	t.Parallel()

	out, err := exec.ExEnv(
		"",
		[]string{"CADENCE_PROBE=probe-value"},
		"sh", "-c", "echo $CADENCE_PROBE",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "probe-value")
}

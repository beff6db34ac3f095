package pid

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
)

func TestAcquireRelease(t *testing.T) {
	host := "pid-test-" + strconv.Itoa(os.Getpid())

	guard, err := Acquire(host)
	require.NoError(t, err)

	raw, err := os.ReadFile(pathFor(host))
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))

	// A second session against the same host is refused while the
	// first is alive.
	_, err = Acquire(host)
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyRunning, errors.CodeOf(err))

	guard.Release()
	_, err = os.Stat(pathFor(host))
	assert.True(t, os.IsNotExist(err))

	guard, err = Acquire(host)
	require.NoError(t, err)
	guard.Release()
}

func TestStaleFileTakeover(t *testing.T) {
	host := "pid-stale-" + strconv.Itoa(os.Getpid())
	path := pathFor(host)

	// 4194304 is above the kernel pid_max, so no such process exists.
	require.NoError(t, os.WriteFile(path, []byte("4194304"), 0o644))

	guard, err := Acquire(host)
	require.NoError(t, err)
	defer guard.Release()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))
}

package loadgen_test

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/benmeehan/batterymon/internal/loadgen"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "BATTERYMON_WANT_BURN"

// TestHelperBurn is not a real test; it is the worker body when the test binary is
// re-executed by helperCommand.
func TestHelperBurn(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	loadgen.Burn(os.Stdin)
	os.Exit(0)
}

func helperCommand() (*exec.Cmd, error) {
	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperBurn$")
	cmd.Env = append(os.Environ(), helperEnv+"=1")
	return cmd, nil
}

func TestLoadGenerator_StartStop(t *testing.T) {
	g := loadgen.New(helperCommand, zerolog.Nop())
	assert.Equal(t, loadgen.Idle, g.State())

	require.NoError(t, g.Start(4))
	assert.Equal(t, loadgen.Loading, g.State())
	assert.Equal(t, 4, g.Workers())

	pids := g.PIDs()
	require.Len(t, pids, 4)

	require.NoError(t, g.Stop())
	assert.Equal(t, loadgen.Idle, g.State())
	assert.Equal(t, 0, g.Workers())
	assert.Empty(t, g.PIDs())

	for _, pid := range pids {
		exists, err := process.PidExists(int32(pid))
		require.NoError(t, err)
		assert.False(t, exists, "worker %d outlived Stop", pid)
	}
}

func TestLoadGenerator_RepeatedCallsAreNoOps(t *testing.T) {
	g := loadgen.New(helperCommand, zerolog.Nop())

	assert.NoError(t, g.Stop())
	assert.Equal(t, loadgen.Idle, g.State())

	require.NoError(t, g.Start(1))
	assert.NoError(t, g.Start(3))
	assert.Equal(t, 1, g.Workers())

	require.NoError(t, g.Stop())
	assert.NoError(t, g.Stop())
	assert.Equal(t, loadgen.Idle, g.State())
}

func TestLoadGenerator_InvalidCount(t *testing.T) {
	g := loadgen.New(helperCommand, zerolog.Nop())
	assert.ErrorIs(t, g.Start(0), loadgen.ErrInvalidWorkerCount)
	assert.Equal(t, loadgen.Idle, g.State())
}

func TestLoadGenerator_SpawnFailureRollsBack(t *testing.T) {
	calls := 0
	factory := func() (*exec.Cmd, error) {
		calls++
		if calls == 3 {
			return exec.Command(filepath.Join(t.TempDir(), "does-not-exist")), nil
		}
		return helperCommand()
	}

	g := loadgen.New(factory, zerolog.Nop())
	err := g.Start(4)
	assert.Error(t, err)
	assert.Equal(t, loadgen.Idle, g.State())
	assert.Equal(t, 0, g.Workers())
}

func TestLoadGenerator_FactoryError(t *testing.T) {
	g := loadgen.New(func() (*exec.Cmd, error) { return nil, errors.New("boom") }, zerolog.Nop())
	assert.ErrorContains(t, g.Start(2), "boom")
	assert.Equal(t, loadgen.Idle, g.State())
}

func TestBurn_ExitsWhenStopCloses(t *testing.T) {
	r, w := io.Pipe()

	done := make(chan struct{})
	go func() {
		loadgen.Burn(r)
		close(done)
	}()

	require.NoError(t, w.Close())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Burn did not return after stop was closed")
	}
}

func TestMaxWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, loadgen.MaxWorkers(context.Background()), 1)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", loadgen.Idle.String())
	assert.Equal(t, "loading", loadgen.Loading.String())
}

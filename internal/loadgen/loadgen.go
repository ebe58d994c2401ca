// Package loadgen spins up busy-looping worker processes to drain the battery faster.
package loadgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/cpu"
)

// BurnCommand is the hidden subcommand a worker process runs.
const BurnCommand = "burn"

// State is the load generator state.
type State int

const (
	Idle State = iota
	Loading
)

func (s State) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

// ErrInvalidWorkerCount is returned by Start for n < 1.
var ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

// CommandFactory builds the command for one worker process.
type CommandFactory func() (*exec.Cmd, error)

// SelfCommand re-executes the running binary with the burn subcommand.
func SelfCommand() (*exec.Cmd, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	return exec.Command(self, BurnCommand), nil
}

type worker struct {
	cmd  *exec.Cmd
	stop io.WriteCloser
}

// LoadGenerator starts and stops N independent worker processes.
type LoadGenerator struct {
	factory CommandFactory
	logger  zerolog.Logger

	mu      sync.Mutex
	state   State
	workers []*worker
}

// New creates an idle load generator.
func New(factory CommandFactory, logger zerolog.Logger) *LoadGenerator {
	if factory == nil {
		factory = SelfCommand
	}
	return &LoadGenerator{factory: factory, logger: logger}
}

// Start spawns n workers. It is a no-op while already loading. If any spawn fails the
// workers started so far are killed and the generator stays idle.
func (g *LoadGenerator) Start(n int) error {
	if n < 1 {
		return ErrInvalidWorkerCount
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == Loading {
		g.logger.Warn().Int("workers", len(g.workers)).Msg("Load generator is already running")
		return nil
	}

	for i := 0; i < n; i++ {
		w, err := g.spawn()
		if err != nil {
			g.terminateAll()
			return fmt.Errorf("failed to start worker %d: %w", i, err)
		}
		g.workers = append(g.workers, w)
	}

	g.state = Loading
	g.logger.Info().Int("workers", n).Ints("pids", g.pidsLocked()).Msg("Load generator started")
	return nil
}

func (g *LoadGenerator) spawn() (*worker, error) {
	cmd, err := g.factory()
	if err != nil {
		return nil, err
	}

	stop, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		stop.Close()
		return nil, err
	}
	return &worker{cmd: cmd, stop: stop}, nil
}

// Stop clears the workers' run flag, kills every worker and waits for it to be reaped.
// It is a no-op while idle.
func (g *LoadGenerator) Stop() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == Idle {
		g.logger.Debug().Msg("Load generator is not running")
		return nil
	}

	n := len(g.workers)
	g.terminateAll()
	g.state = Idle
	g.logger.Info().Int("workers", n).Msg("Load generator stopped")
	return nil
}

// terminateAll must be called with g.mu held.
func (g *LoadGenerator) terminateAll() {
	for _, w := range g.workers {
		_ = w.stop.Close()
	}
	for _, w := range g.workers {
		if err := w.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			g.logger.Warn().Err(err).Int("pid", w.cmd.Process.Pid).Msg("Failed to kill worker")
		}
		// Wait reports the kill signal as an error; only reaping matters here.
		_ = w.cmd.Wait()
	}
	g.workers = nil
}

// State returns the current state.
func (g *LoadGenerator) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Workers returns the number of tracked worker processes.
func (g *LoadGenerator) Workers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.workers)
}

// PIDs returns the process ids of the tracked workers.
func (g *LoadGenerator) PIDs() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pidsLocked()
}

func (g *LoadGenerator) pidsLocked() []int {
	pids := make([]int, 0, len(g.workers))
	for _, w := range g.workers {
		pids = append(pids, w.cmd.Process.Pid)
	}
	return pids
}

// MaxWorkers is the number of logical cores, the upper bound for Start.
func MaxWorkers(ctx context.Context) int {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

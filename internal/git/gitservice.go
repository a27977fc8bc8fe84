package git

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"repodepot/internal/domain"
	"repodepot/internal/eventbus"
)

// DefaultParallel is the number of concurrent clones when none is configured
const DefaultParallel = 4

// Runner performs a single clone
type Runner interface {
	Clone(ctx context.Context, url, dest string) ([]byte, error)
}

// ExecRunner shells out to the git binary
type ExecRunner struct{}

func (ExecRunner) Clone(ctx context.Context, url, dest string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", "clone", "--quiet", url, dest)
	// Never block on a credential prompt
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	return cmd.CombinedOutput()
}

// CloneService clones selected repositories into a working directory
type CloneService interface {
	CloneAll(ctx context.Context, ids []string) Report
	Dir() string
}

// cloneService is the concrete implementation
type cloneService struct {
	dir        string
	runner     Runner
	bus        eventbus.EventBus
	workerPool chan struct{} // Semaphore for limiting concurrent git operations
}

// NewCloneService creates a clone service rooted at dir. Progress events
// are published on bus when it is not nil.
func NewCloneService(dir string, runner Runner, parallel int, bus eventbus.EventBus) CloneService {
	if runner == nil {
		runner = ExecRunner{}
	}
	if parallel <= 0 {
		parallel = DefaultParallel
	}
	return &cloneService{
		dir:        dir,
		runner:     runner,
		bus:        bus,
		workerPool: make(chan struct{}, parallel),
	}
}

func (cs *cloneService) Dir() string {
	return cs.dir
}

// Destination returns <dir>/<owner>/<name> for a repository identifier
func Destination(dir, id string) (string, error) {
	owner, name, ok := domain.OwnerAndName(id)
	if !ok {
		return "", fmt.Errorf("cannot derive a directory name from %q", id)
	}
	if owner == "" {
		return filepath.Join(dir, name), nil
	}
	return filepath.Join(dir, owner, name), nil
}

// CloneAll clones every identifier. One failure does not stop the batch;
// results are returned in the order of ids.
func (cs *cloneService) CloneAll(ctx context.Context, ids []string) Report {
	report := Report{Dir: cs.dir, Results: make([]Result, len(ids))}
	if len(ids) == 0 {
		return report
	}

	if err := os.MkdirAll(cs.dir, 0755); err != nil {
		err = fmt.Errorf("failed to create clone directory %s: %w", cs.dir, err)
		log.Print(err)
		for i, id := range ids {
			report.Results[i] = Result{ID: id, Status: StatusFailed, Err: err}
		}
		return report
	}

	var wg sync.WaitGroup
	seen := make(map[string]bool, len(ids))

	for i, id := range ids {
		dest, err := Destination(cs.dir, id)
		switch {
		case err != nil:
			report.Results[i] = Result{ID: id, Status: StatusFailed, Err: err}
			cs.publish(eventbus.CloneFinishedEvent{ID: id, Err: err})
			continue
		case seen[dest]:
			report.Results[i] = cs.skip(id, dest, "duplicate destination in this batch")
			continue
		case exists(dest):
			report.Results[i] = cs.skip(id, dest, "destination already exists")
			continue
		}
		seen[dest] = true

		wg.Add(1)
		go func(i int, id, dest string) {
			defer wg.Done()
			report.Results[i] = cs.cloneOne(ctx, id, dest)
		}(i, id, dest)
	}

	wg.Wait()
	return report
}

// cloneOne runs a single clone once a worker slot is free
func (cs *cloneService) cloneOne(ctx context.Context, id, dest string) Result {
	select {
	case cs.workerPool <- struct{}{}:
		defer func() { <-cs.workerPool }()
	case <-ctx.Done():
		cs.publish(eventbus.CloneFinishedEvent{ID: id, Dest: dest, Err: ctx.Err()})
		return Result{ID: id, Dest: dest, Status: StatusFailed, Err: ctx.Err()}
	}

	cs.publish(eventbus.CloneStartedEvent{ID: id, Dest: dest})
	res := cs.run(ctx, id, dest)
	cs.publish(eventbus.CloneFinishedEvent{ID: id, Dest: dest, Err: res.Err, Duration: res.Duration})
	return res
}

func (cs *cloneService) run(ctx context.Context, id, dest string) Result {
	startTime := time.Now()
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return Result{ID: id, Dest: dest, Status: StatusFailed, Err: fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)}
	}

	output, err := cs.runner.Clone(ctx, id, dest)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("git clone %s failed after %v: %v", id, duration, err)
		return Result{ID: id, Dest: dest, Status: StatusFailed, Output: string(output), Duration: duration,
			Err: fmt.Errorf("git clone failed: %w", err)}
	}

	log.Printf("Cloned %s into %s in %v", id, dest, duration)
	return Result{ID: id, Dest: dest, Status: StatusCloned, Output: string(output), Duration: duration}
}

func (cs *cloneService) skip(id, dest, reason string) Result {
	cs.publish(eventbus.CloneSkippedEvent{ID: id, Dest: dest, Reason: reason})
	return Result{ID: id, Dest: dest, Status: StatusSkipped, Err: errors.New(reason)}
}

func (cs *cloneService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

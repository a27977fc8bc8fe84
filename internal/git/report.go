package git

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/noborus/ov/oviewer"
)

// Status is the outcome of one clone
type Status int

const (
	StatusCloned Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCloned:
		return "cloned"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes one clone attempt
type Result struct {
	ID       string
	Dest     string
	Status   Status
	Err      error
	Output   string
	Duration time.Duration
}

// Report collects the results of a clone batch in selection order
type Report struct {
	Dir     string
	Results []Result
}

// Failed returns the number of failed clones
func (r Report) Failed() int {
	return r.count(StatusFailed)
}

// Cloned returns the number of successful clones
func (r Report) Cloned() int {
	return r.count(StatusCloned)
}

// Skipped returns the number of clones skipped because the destination exists
func (r Report) Skipped() int {
	return r.count(StatusSkipped)
}

func (r Report) count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Print writes successes and skips to stdout and failures to stderr
func (r Report) Print(stdout, stderr io.Writer) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusCloned:
			fmt.Fprintf(stdout, "Cloned %s into %s\n", res.ID, res.Dest)
		case StatusSkipped:
			fmt.Fprintf(stdout, "Skipped %s: %v\n", res.ID, res.Err)
		case StatusFailed:
			fmt.Fprintf(stderr, "Failed to clone %s: %v\n", res.ID, res.Err)
			if out := strings.TrimSpace(res.Output); out != "" {
				for _, line := range strings.Split(out, "\n") {
					fmt.Fprintf(stderr, "    %s\n", line)
				}
			}
		}
	}
	if len(r.Results) > 0 {
		fmt.Fprintln(stdout, r.Summary())
	}
}

// Summary returns a one-line description of the batch
func (r Report) Summary() string {
	return fmt.Sprintf("%d cloned, %d skipped, %d failed (into %s)", r.Cloned(), r.Skipped(), r.Failed(), r.Dir)
}

// ShowInPager displays the report in the ov pager
func (r Report) ShowInPager() error {
	var b strings.Builder
	r.Print(&b, &b)

	root, err := oviewer.NewRoot(strings.NewReader(b.String()))
	if err != nil {
		return err
	}

	// Keep the report on screen after quitting
	config := oviewer.NewConfig()
	config.IsWriteOnExit = true
	config.IsWriteOriginal = true
	root.SetConfig(config)

	return root.Run()
}

package main

import (
	"fmt"
	"io"
	"time"

	"repodepot/internal/eventbus"
)

// progressPrinter writes one line per finished or skipped clone
type progressPrinter struct {
	out   io.Writer
	total int
	done  int
}

func newProgressPrinter(out io.Writer, total int) *progressPrinter {
	return &progressPrinter{out: out, total: total}
}

// Attach subscribes the printer to bus. The bus dispatches on a single
// goroutine so the counter needs no locking.
func (p *progressPrinter) Attach(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventCloneFinished, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.CloneFinishedEvent)
		if ev.Err != nil {
			p.line("✗", ev.ID, "failed")
			return
		}
		p.line("✓", ev.ID, ev.Duration.Round(10*time.Millisecond).String())
	})
	bus.Subscribe(eventbus.EventCloneSkipped, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.CloneSkippedEvent)
		p.line("-", ev.ID, ev.Reason)
	})
}

func (p *progressPrinter) line(mark, id, detail string) {
	p.done++
	fmt.Fprintf(p.out, "[%d/%d] %s %s (%s)\n", p.done, p.total, mark, id, detail)
}

package term

import (
	"context"
	"errors"
	"time"

	"contrib-life/pkg/core"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Tick draws the current generation of sim and then advances it.
func Tick(sim core.Sim, p *Painter) error {
	cells := sim.Cells()
	p.Draw(cells, sim.Size(), statusLine(sim, cells))
	sim.Step()
	return nil
}

// Run animates sim on screen until ctx ends or a quit key (Esc, q, Ctrl-C)
// is pressed. Only the tick goroutine touches sim; the event goroutine only
// cancels. A clean stop returns nil.
func Run(ctx context.Context, screen tcell.Screen, sim core.Sim, p *Painter, sched *core.Scheduler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	polling := make(chan struct{})

	g.Go(func() error {
		err := sched.Run(gctx, func() error { return Tick(sim, p) })
		interruptPoll(screen, polling)
		return err
	})

	g.Go(func() error {
		defer close(polling)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil, *tcell.EventInterrupt:
				return nil
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					return nil
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// interruptPoll wakes a blocked PollEvent. A full event queue rejects the
// interrupt, so it is posted again until it lands or the poller has exited.
func interruptPoll(screen tcell.Screen, polling <-chan struct{}) {
	for screen.PostEvent(tcell.NewEventInterrupt(nil)) != nil {
		select {
		case <-polling:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

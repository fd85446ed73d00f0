package appstate

import "time"

// overlay is the transient notice drawn over the canvas. repaint is called
// once the notice expires so the window clears it without further input.
type overlay struct {
	message string
	until   time.Time
	timer   *time.Timer
	repaint func()
}

func (o *overlay) show(msg string, d time.Duration) {
	o.message = msg
	o.until = time.Now().Add(d)
	o.stop()
	if o.repaint != nil {
		o.timer = time.AfterFunc(d, o.repaint)
	}
}

func (o *overlay) hide() {
	o.until = time.Time{}
	o.stop()
}

// current returns the message while it is still due on screen.
func (o *overlay) current() string {
	if time.Now().Before(o.until) {
		return o.message
	}
	return ""
}

func (o *overlay) stop() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

// queueFrame replaces any frame still waiting in ch with st. The paint
// goroutine is the only receiver, so the drain never blocks and the send
// always has room.
func queueFrame(ch chan paintState, st paintState) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- st
}

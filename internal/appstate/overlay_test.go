package appstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFrameReplacesPending(t *testing.T) {
	ch := make(chan paintState, 1)
	queueFrame(ch, paintState{width: 1})
	queueFrame(ch, paintState{width: 2})
	require.Len(t, ch, 1)
	assert.Equal(t, 2, (<-ch).width)
}

func TestQueueFrameWithBusyReceiver(t *testing.T) {
	ch := make(chan paintState, 1)
	got := make(chan int, 1)
	go func() {
		last := 0
		for st := range ch {
			last = st.width
		}
		got <- last
	}()

	done := make(chan struct{})
	go func() {
		for i := 1; i <= 10000; i++ {
			queueFrame(ch, paintState{width: i})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("queueFrame blocked while the receiver was draining")
	}
	close(ch)
	assert.Equal(t, 10000, <-got)
}

func TestOverlayRepaintsOnExpiry(t *testing.T) {
	repainted := make(chan struct{}, 1)
	o := &overlay{repaint: func() { repainted <- struct{}{} }}
	o.show("Saved", 20*time.Millisecond)
	assert.Equal(t, "Saved", o.current())

	select {
	case <-repainted:
	case <-time.After(2 * time.Second):
		t.Fatal("no repaint after the notice expired")
	}
	assert.Empty(t, o.current())
}

func TestOverlayHide(t *testing.T) {
	repainted := make(chan struct{}, 1)
	o := &overlay{repaint: func() { repainted <- struct{}{} }}
	o.show("Loaded", time.Hour)
	o.hide()
	assert.Empty(t, o.current())
	assert.Nil(t, o.timer)
}

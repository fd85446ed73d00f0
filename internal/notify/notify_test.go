package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pixelcanvas/internal/appstate"
	"github.com/example/pixelcanvas/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func newRecorder(prefs Preferences) (*Notifier, *[]sent) {
	var out []sent
	n := New(prefs)
	n.send = func(title, body string, opts platform.Options) error {
		out = append(out, sent{title, body, opts})
		return nil
	}
	return n, &out
}

func TestDisabledEventsAreSilent(t *testing.T) {
	n, out := newRecorder(DefaultPreferences())
	n.Save("clipboard")
	n.Error(errors.New("boom"))
	assert.Empty(t, *out)
}

func TestReportRoutesNotices(t *testing.T) {
	n, out := newRecorder(DefaultPreferences())
	for _, e := range []Event{EventSave, EventLoad, EventError} {
		n.Enable(e, true)
	}

	n.Report(appstate.Notice{Action: appstate.ToolSave, Detail: "clipboard"})
	n.Report(appstate.Notice{Action: appstate.ToolLoad, Detail: "clipboard"})
	n.Report(appstate.Notice{Action: appstate.ToolLoad, Err: errors.New("bad header")})
	n.Report(appstate.Notice{Action: appstate.ToolSave, Err: appstate.ErrCanceled})

	require.Len(t, *out, 3)
	assert.Equal(t, "Saved clipboard", (*out)[0].body)
	assert.Equal(t, "Loaded clipboard", (*out)[1].body)
	assert.Equal(t, "load failed: bad header", (*out)[2].body)
	assert.Equal(t, platform.UrgencyCritical, (*out)[2].opts.Urgency)
	assert.Equal(t, platform.AppName, (*out)[0].title)
}

func TestLoadPreferencesFromEnvironment(t *testing.T) {
	t.Setenv("PIXELCANVAS_NOTIFY_TITLE", "Pixels")
	t.Setenv("PIXELCANVAS_NOTIFY_SAVE_TEXT", "Wrote %s")

	n, out := newRecorder(LoadPreferences())
	n.Enable(EventSave, true)
	n.Save("clipboard")

	require.Len(t, *out, 1)
	assert.Equal(t, "Pixels", (*out)[0].title)
	assert.Equal(t, "Wrote clipboard", (*out)[0].body)
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.Enable(EventSave, true)
		n.Save("x")
		n.Report(appstate.Notice{Action: appstate.ToolSave})
	})
}

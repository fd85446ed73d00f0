package notify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/pixelcanvas/internal/appstate"
	"github.com/example/pixelcanvas/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a document is persisted.
	EventSave Event = "save"
	// EventLoad emits a notification when a document replaces the grid.
	EventLoad Event = "load"
	// EventError emits a notification when a save or load fails.
	EventError Event = "error"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Events: map[Event]EventPreference{
			EventSave:  {Template: "Saved %s"},
			EventLoad:  {Template: "Loaded %s"},
			EventError: {Template: "%s"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("PIXELCANVAS_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("PIXELCANVAS_NOTIFY_SAVE_TEXT", EventSave)
	apply("PIXELCANVAS_NOTIFY_LOAD_TEXT", EventLoad)
	apply("PIXELCANVAS_NOTIFY_ERROR_TEXT", EventError)
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save sends a save notification including the written filename when available.
func (n *Notifier) Save(path string) {
	n.dispatch(EventSave, absolute(path), platform.Options{})
}

// Load sends a load notification for the document that was read.
func (n *Notifier) Load(path string) {
	n.dispatch(EventLoad, absolute(path), platform.Options{})
}

// Error sends a failure notification.
func (n *Notifier) Error(err error) {
	if err == nil {
		return
	}
	n.dispatch(EventError, err.Error(), platform.Options{Urgency: platform.UrgencyCritical})
}

// Report implements appstate.Reporter so the editor window can surface
// save and load outcomes without knowing about the desktop.
func (n *Notifier) Report(notice appstate.Notice) {
	switch {
	case notice.Err != nil:
		if errors.Is(notice.Err, appstate.ErrCanceled) {
			return
		}
		n.Error(fmt.Errorf("%s failed: %w", notice.Action, notice.Err))
	case notice.Action == appstate.ToolSave:
		n.Save(notice.Detail)
	case notice.Action == appstate.ToolLoad:
		n.Load(notice.Detail)
	}
}

func absolute(path string) string {
	detail := strings.TrimSpace(path)
	if detail == "" || detail == "clipboard" {
		return detail
	}
	if abs, err := filepath.Abs(detail); err == nil {
		return abs
	}
	return detail
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil {
		return false
	}
	if n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	send := n.send
	if send == nil {
		send = platform.Notify
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		logrus.WithError(err).WithField("event", event).Warn("notification failed")
	}
}

func (n *Notifier) template(event Event) string {
	if n == nil {
		return ""
	}
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

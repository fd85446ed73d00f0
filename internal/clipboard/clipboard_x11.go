//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// convertTimeout bounds how long a paste waits for the selection owner.
const convertTimeout = 2 * time.Second

var (
	errSelectionTimeout = errors.New("selection request timed out")
	errConnClosed       = errors.New("x11 connection closed")
)

// Without cgo the X11 selection is served directly over the wire protocol.
var backend *x11Selection

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		sel := &x11Selection{}
		if err := sel.open(); err != nil {
			initErr = err
			return
		}
		backend = sel
	})
	return initErr
}

// WriteText takes ownership of CLIPBOARD and serves text to requestors.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return backend.own([]byte(text))
}

// ReadText converts the CLIPBOARD selection to UTF-8 text.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	data, err := backend.convert(backend.atoms.utf8)
	if err != nil {
		data, err = backend.convert(xproto.AtomString)
		if err != nil {
			return "", err
		}
	}
	if len(data) > 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return "", ErrNoText
	}
	return string(data), nil
}

type x11Selection struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  selectionAtoms
	mu     sync.RWMutex
	text   []byte
}

type selectionAtoms struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	property  xproto.Atom
}

func (s *x11Selection) open() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internSelectionAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	s.conn = conn
	s.window = window
	s.atoms = atoms
	go s.serve()
	return nil
}

func internSelectionAtoms(conn *xgb.Conn) (selectionAtoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "PIXELCANVAS_SELECTION"}
	got := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return selectionAtoms{}, fmt.Errorf("intern %s: %w", name, err)
		}
		got[i] = reply.Atom
	}
	return selectionAtoms{clipboard: got[0], targets: got[1], utf8: got[2], textPlain: got[3], property: got[4]}, nil
}

func (s *x11Selection) own(text []byte) error {
	s.mu.Lock()
	s.text = append([]byte(nil), text...)
	s.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(s.conn, s.window, s.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (s *x11Selection) serve() {
	for {
		ev, err := s.conn.WaitForEvent()
		if err != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			s.answer(e)
		case xproto.SelectionClearEvent:
			s.mu.Lock()
			s.text = nil
			s.mu.Unlock()
		}
	}
}

func (s *x11Selection) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	s.mu.RLock()
	text := s.text
	s.mu.RUnlock()

	switch {
	case e.Target == s.atoms.targets:
		targets := []xproto.Atom{s.atoms.targets}
		if len(text) > 0 {
			targets = append(targets, s.atoms.utf8, xproto.AtomString, s.atoms.textPlain)
		}
		buf := make([]byte, len(targets)*4)
		for i, atom := range targets {
			xgb.Put32(buf[i*4:], uint32(atom))
		}
		xproto.ChangeProperty(s.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(targets)), buf)
	case len(text) > 0 && (e.Target == s.atoms.utf8 || e.Target == xproto.AtomString || e.Target == s.atoms.textPlain):
		xproto.ChangeProperty(s.conn, xproto.PropModeReplace, e.Requestor, property, s.atoms.utf8, 8, uint32(len(text)), text)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(s.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

// convert asks the current owner for the selection and waits for the reply on
// a throwaway connection so the serving loop never sees it.
func (s *x11Selection) convert(target xproto.Atom) ([]byte, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, 0, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOnly, 0, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, window)

	if err := xproto.ConvertSelectionChecked(conn, window, s.atoms.clipboard, target, s.atoms.property, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}
	e, err := awaitNotify(conn.WaitForEvent, convertTimeout)
	if err != nil {
		return nil, err
	}
	if e.Property == xproto.AtomNone {
		return nil, fmt.Errorf("clipboard target unavailable")
	}
	reply, err := xproto.GetProperty(conn, true, window, e.Property, xproto.GetPropertyTypeAny, 0, (1<<31)-1).Reply()
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), reply.Value...), nil
}

// awaitNotify reads events from next until a SelectionNotify arrives or
// timeout passes. On timeout the reader goroutine exits once the caller
// closes the connection.
func awaitNotify(next func() (xgb.Event, xgb.Error), timeout time.Duration) (xproto.SelectionNotifyEvent, error) {
	type result struct {
		ev  xproto.SelectionNotifyEvent
		err error
	}
	ch := make(chan result, 1)
	go func() {
		for {
			ev, xerr := next()
			switch {
			case xerr != nil:
				ch <- result{err: xerr}
				return
			case ev == nil:
				ch <- result{err: errConnClosed}
				return
			}
			if e, ok := ev.(xproto.SelectionNotifyEvent); ok {
				ch <- result{ev: e}
				return
			}
		}
	}()
	select {
	case r := <-ch:
		return r.ev, r.err
	case <-time.After(timeout):
		return xproto.SelectionNotifyEvent{}, fmt.Errorf("clipboard owner did not answer within %v: %w", timeout, errSelectionTimeout)
	}
}

// Package observe wraps an afero.Fs to record which files are looked at.
package observe

import (
	"os"
	"slices"
	"sync"
	"time"

	"github.com/spf13/afero"
)

var _ afero.Fs = (*Fs)(nil)

type Event struct {
	Timestamp time.Time
	Op        string
	Name      string
	Err       error
}

// Fs records Open, OpenFile and Stat calls made to the wrapped afero.Fs.
// Every other method passes through unrecorded.
type Fs struct {
	afero.Fs
	mu      sync.Mutex
	history []Event
	hook    func(Event)
}

// New wraps inner. hook, if non nil, is called after each recorded call.
func New(inner afero.Fs, hook func(Event)) *Fs {
	return &Fs{Fs: inner, hook: hook}
}

func (fsys *Fs) record(op, name string, err error) {
	ev := Event{
		Timestamp: time.Now(),
		Op:        op,
		Name:      name,
		Err:       err,
	}
	fsys.mu.Lock()
	fsys.history = append(fsys.history, ev)
	fsys.mu.Unlock()
	if fsys.hook != nil {
		fsys.hook(ev)
	}
}

func (fsys *Fs) Name() string {
	return "ObservableFs(" + fsys.Fs.Name() + ")"
}

func (fsys *Fs) Open(name string) (afero.File, error) {
	f, err := fsys.Fs.Open(name)
	fsys.record("Open", name, err)
	return f, err
}

func (fsys *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := fsys.Fs.OpenFile(name, flag, perm)
	fsys.record("OpenFile", name, err)
	return f, err
}

func (fsys *Fs) Stat(name string) (os.FileInfo, error) {
	info, err := fsys.Fs.Stat(name)
	fsys.record("Stat", name, err)
	return info, err
}

// History returns a copy of every recorded event in call order.
func (fsys *Fs) History() []Event {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	return slices.Clone(fsys.history)
}

// Names returns the names passed to op, in call order.
func (fsys *Fs) Names(op string) []string {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	var names []string
	for _, ev := range fsys.history {
		if ev.Op == op {
			names = append(names, ev.Name)
		}
	}
	return names
}

func (fsys *Fs) Reset() {
	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	fsys.history = nil
}

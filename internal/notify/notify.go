// Package notify provides named, timed flags that drive short visual pulses.
//
// Times are milliseconds on a monotonic counter; nothing here schedules anything, each flag is
// recomputed from the counter when Update is called.
package notify

import "sort"

const (
	Pulse    = "pulse"
	Rotation = "rotation"
)

type Notifier struct {
	Name string
	// Duration in milliseconds.
	Duration int64

	activatedAt int64
	armed       bool
	enabled     bool
}

func New(name string, durationMs int64) *Notifier {
	return &Notifier{Name: name, Duration: durationMs}
}

// Activate (re)arms the notifier starting at now.
func (n *Notifier) Activate(now int64) {
	n.activatedAt = now
	n.armed = true
	n.enabled = n.EnabledAt(now)
}

// EnabledAt reports whether the notifier is active at now: true for now in
// [activatedAt, activatedAt+Duration).
func (n *Notifier) EnabledAt(now int64) bool {
	if !n.armed {
		return false
	}
	elapsed := now - n.activatedAt
	return elapsed >= 0 && elapsed < n.Duration
}

func (n *Notifier) Update(now int64) {
	n.enabled = n.EnabledAt(now)
}

// Enabled is the value computed by the last Activate or Update.
func (n *Notifier) Enabled() bool { return n.enabled }

type Set struct {
	byName map[string]*Notifier
}

func NewSet(ns ...*Notifier) *Set {
	s := &Set{byName: make(map[string]*Notifier, len(ns))}
	for _, n := range ns {
		s.byName[n.Name] = n
	}
	return s
}

// Get returns the named notifier or nil.
func (s *Set) Get(name string) *Notifier {
	return s.byName[name]
}

// Activate arms the named notifier; unknown names are ignored.
func (s *Set) Activate(name string, now int64) {
	if n := s.byName[name]; n != nil {
		n.Activate(now)
	}
}

func (s *Set) Enabled(name string) bool {
	n := s.byName[name]
	return n != nil && n.Enabled()
}

func (s *Set) Update(now int64) {
	for _, n := range s.byName {
		n.Update(now)
	}
}

// Names returns the registered names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

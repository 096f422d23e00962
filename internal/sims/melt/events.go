package melt

import "fmt"

// Event categories and keys recorded by the sim.
const (
	CategorySim       = "sim"
	CategoryState     = "state"
	CategoryParticles = "particles"

	KeyReset       = "reset"
	KeyStart       = "start"
	KeyPause       = "pause"
	KeyTransition  = "transition"
	KeyParticleCap = "particle_cap"
)

// Event is one recorded occurrence during a run.
type Event struct {
	Tick     int
	Elapsed  float64
	Category string
	Key      string
	Value    string
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=0631 10.52s] state     transition     Melted
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d %6.2fs] %-9s %-14s %s",
		e.Tick, e.Elapsed, e.Category, e.Key, e.Value)
}

// eventLog collects events for the lifetime of a Sim. It survives Reset so
// shells can keep draining it with an offset.
type eventLog struct {
	entries []Event
}

func (l *eventLog) add(tick int, elapsed float64, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Event{
		Tick:     tick,
		Elapsed:  elapsed,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// since returns a copy of the entries from offset n onward.
func (l *eventLog) since(n int) []Event {
	if n < 0 {
		n = 0
	}
	if n >= len(l.entries) {
		return nil
	}
	return append([]Event(nil), l.entries[n:]...)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func Filter(events []Event, category, key string) []Event {
	var out []Event
	for _, e := range events {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

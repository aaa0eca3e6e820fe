// Package state defines the per-cycle data snapshot consumed by widgets.
//
// The rendering engine performs no I/O: polling, history resolution, forecast
// fetching, and image downloads all happen in collaborators before a render
// cycle starts. Their results arrive here as a read-only [Snapshot]. Binary
// entity states (on/off, open/closed, home/away) are mapped to 0.0/1.0 by the
// collaborator before they reach this package.
//
// A Snapshot is immutable for the duration of one render. Per-widget caches
// ([Cache]) persist across cycles and are overwritten wholesale, never merged.
package state

import (
	"encoding/json"
	"strconv"
	"time"
)

// Entity is a point-in-time snapshot of one upstream entity.
//
// Available distinguishes "the entity reported unavailable" from "the entity
// is absent from the snapshot": an unavailable entity still renders (with a
// placeholder value), a missing one falls back to widget defaults.
type Entity struct {
	ID         string
	Value      any // numeric, string, or json.Number state
	Attributes map[string]any
	Unit       string
	Available  bool
}

// Float interprets the entity's value as a number. It returns ok=false when
// the entity is unavailable or the value is not numeric; callers render a
// placeholder in that case rather than failing the frame.
func (e Entity) Float() (float64, bool) {
	if !e.Available {
		return 0, false
	}
	switch v := e.Value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Attr returns a named attribute, or nil if absent.
func (e Entity) Attr(name string) any {
	if e.Attributes == nil {
		return nil
	}
	return e.Attributes[name]
}

// History is an ordered numeric series, oldest first.
type History []float64

// ForecastEntry is one pre-fetched forecast row.
type ForecastEntry struct {
	Label     string  // display label, e.g. "Mon" or "14:00"
	Condition string  // condition tag, e.g. "rainy", mapped to an icon name
	Value     float64 // numeric value, e.g. temperature
}

// Snapshot is the complete read-only input for one render cycle.
type Snapshot struct {
	Entities  map[string]Entity
	Histories map[string]History
	Forecasts map[string][]ForecastEntry
	Images    map[string][]byte
	Now       time.Time
}

// Entity returns the named entity. ok=false means the entity is absent from
// the snapshot entirely.
func (s *Snapshot) Entity(id string) (Entity, bool) {
	if s == nil || s.Entities == nil {
		return Entity{}, false
	}
	e, ok := s.Entities[id]
	return e, ok
}

// History returns the pre-resolved series for a key, or nil.
func (s *Snapshot) History(key string) History {
	if s == nil || s.Histories == nil {
		return nil
	}
	return s.Histories[key]
}

// Forecast returns the pre-fetched forecast entries for a key, or nil.
func (s *Snapshot) Forecast(key string) []ForecastEntry {
	if s == nil || s.Forecasts == nil {
		return nil
	}
	return s.Forecasts[key]
}

// Image returns the pre-fetched bitmap payload for a key, or nil.
func (s *Snapshot) Image(key string) []byte {
	if s == nil || s.Images == nil {
		return nil
	}
	return s.Images[key]
}

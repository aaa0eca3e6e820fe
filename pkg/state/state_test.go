package state

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEntityFloat(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		want   float64
		wantOK bool
	}{
		{
			name:   "float value",
			entity: Entity{ID: "sensor.temp", Value: 21.5, Available: true},
			want:   21.5,
			wantOK: true,
		},
		{
			name:   "int value",
			entity: Entity{ID: "sensor.count", Value: 7, Available: true},
			want:   7,
			wantOK: true,
		},
		{
			name:   "numeric string",
			entity: Entity{ID: "sensor.temp", Value: "21.5", Available: true},
			want:   21.5,
			wantOK: true,
		},
		{
			name:   "json number",
			entity: Entity{ID: "sensor.temp", Value: json.Number("-3.2"), Available: true},
			want:   -3.2,
			wantOK: true,
		},
		{
			name:   "non-numeric value",
			entity: Entity{ID: "sensor.mode", Value: "heat", Available: true},
			wantOK: false,
		},
		{
			name:   "unavailable",
			entity: Entity{ID: "sensor.temp", Value: "21.5", Available: false},
			wantOK: false,
		},
		{
			name:   "empty value",
			entity: Entity{ID: "sensor.temp", Value: "", Available: true},
			wantOK: false,
		},
		{
			name:   "nil value",
			entity: Entity{ID: "sensor.temp", Available: true},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entity.Float()
			if ok != tt.wantOK {
				t.Fatalf("Float() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotLookups(t *testing.T) {
	snap := &Snapshot{
		Entities:  map[string]Entity{"a": {ID: "a", Value: "1", Available: true}},
		Histories: map[string]History{"h": {1, 2, 3}},
		Now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	if _, ok := snap.Entity("a"); !ok {
		t.Error("Entity(a) should exist")
	}
	if _, ok := snap.Entity("missing"); ok {
		t.Error("Entity(missing) should not exist")
	}
	if got := len(snap.History("h")); got != 3 {
		t.Errorf("History(h) len = %d, want 3", got)
	}
	if snap.History("missing") != nil {
		t.Error("History(missing) should be nil")
	}
	if snap.Forecast("missing") != nil {
		t.Error("Forecast(missing) should be nil")
	}

	var empty *Snapshot
	if _, ok := empty.Entity("a"); ok {
		t.Error("nil snapshot lookups should miss, not panic")
	}
}

func TestCacheOverwritesWholesale(t *testing.T) {
	c := NewCache[History]()
	c.Put("w1", History{1, 2, 3})
	c.Put("w1", History{9})

	got, ok := c.Get("w1")
	if !ok || len(got) != 1 || got[0] != 9 {
		t.Errorf("Get(w1) = %v, %v, want replaced series [9]", got, ok)
	}

	c.Delete("w1")
	if _, ok := c.Get("w1"); ok {
		t.Error("deleted key should miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/panelkit/panelkit/pkg/state"
)

// snapshotFile is the JSON document format accepted by --snapshot.
type snapshotFile struct {
	Entities  map[string]snapshotEntity          `json:"entities"`
	Histories map[string][]float64               `json:"histories"`
	Forecasts map[string][]snapshotForecastEntry `json:"forecasts"`
}

type snapshotEntity struct {
	Value       any            `json:"value"`
	Unit        string         `json:"unit"`
	Attributes  map[string]any `json:"attributes"`
	Unavailable bool           `json:"unavailable"`
}

type snapshotForecastEntry struct {
	Label     string  `json:"label"`
	Condition string  `json:"condition"`
	Value     float64 `json:"value"`
}

// loadSnapshot reads a JSON snapshot file into render state.
func loadSnapshot(path string) (*state.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	snap := &state.Snapshot{
		Entities:  make(map[string]state.Entity, len(file.Entities)),
		Histories: make(map[string]state.History, len(file.Histories)),
		Forecasts: make(map[string][]state.ForecastEntry, len(file.Forecasts)),
		Now:       time.Now(),
	}
	for id, e := range file.Entities {
		snap.Entities[id] = state.Entity{
			ID:         id,
			Value:      e.Value,
			Unit:       e.Unit,
			Attributes: e.Attributes,
			Available:  !e.Unavailable,
		}
	}
	for key, h := range file.Histories {
		snap.Histories[key] = state.History(h)
	}
	for key, entries := range file.Forecasts {
		converted := make([]state.ForecastEntry, len(entries))
		for i, en := range entries {
			converted[i] = state.ForecastEntry{Label: en.Label, Condition: en.Condition, Value: en.Value}
		}
		snap.Forecasts[key] = converted
	}
	return snap, nil
}

// demoSnapshot fabricates plausible sensor state so render and preview work
// without an upstream data source.
func demoSnapshot() *state.Snapshot {
	return &state.Snapshot{
		Entities: map[string]state.Entity{
			"sensor.living_temp": {ID: "sensor.living_temp", Value: 21.4, Unit: "°C", Available: true},
			"sensor.humidity":    {ID: "sensor.humidity", Value: 46.0, Unit: "%", Available: true},
			"sensor.cpu":         {ID: "sensor.cpu", Value: 37.0, Unit: "%", Available: true},
			"sensor.power":       {ID: "sensor.power", Value: 243.0, Unit: "W", Available: true},
			"sensor.battery":     {ID: "sensor.battery", Value: 81.0, Unit: "%", Available: true},
		},
		Histories: map[string]state.History{
			"sensor.power":       {180, 205, 230, 260, 240, 255, 235, 228, 247, 239},
			"binary_sensor.door": {0, 0, 1, 1, 0, 0, 0, 1, 0, 0},
		},
		Forecasts: map[string][]state.ForecastEntry{
			"weather.home": {
				{Label: "Mon", Condition: "sunny", Value: 24},
				{Label: "Tue", Condition: "partly-cloudy", Value: 21},
				{Label: "Wed", Condition: "rain", Value: 17},
				{Label: "Thu", Condition: "cloudy", Value: 19},
			},
		},
		Now: time.Now(),
	}
}

package errors

import "testing"

func TestValidateEntityID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid sensor", id: "sensor.living_room_temp", wantErr: false},
		{name: "valid binary sensor", id: "binary_sensor.front_door", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "no dot", id: "sensor", wantErr: true},
		{name: "two dots", id: "a.b.c", wantErr: true},
		{name: "empty domain", id: ".object", wantErr: true},
		{name: "empty object", id: "sensor.", wantErr: true},
		{name: "whitespace", id: "sensor.living room", wantErr: true},
		{name: "control character", id: "sensor.temp\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntityID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWidget) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidWidget)
			}
		})
	}
}

func TestValidateSlotCount(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		n       int
		wantErr bool
	}{
		{name: "first slot", index: 0, n: 4, wantErr: false},
		{name: "last slot", index: 3, n: 4, wantErr: false},
		{name: "past end", index: 4, n: 4, wantErr: true},
		{name: "negative", index: -1, n: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlotCount(tt.index, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlotCount(%d, %d) error = %v, wantErr %v", tt.index, tt.n, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRatio(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		wantErr bool
	}{
		{name: "middle", ratio: 0.5, wantErr: false},
		{name: "hero default", ratio: 0.65, wantErr: false},
		{name: "zero", ratio: 0, wantErr: true},
		{name: "one", ratio: 1, wantErr: true},
		{name: "negative", ratio: -0.2, wantErr: true},
		{name: "above one", ratio: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatio(tt.ratio)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatio(%g) error = %v, wantErr %v", tt.ratio, err, tt.wantErr)
			}
		})
	}
}

package dashboard

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/panelkit/pkg/state"
)

func testSnapshot() *state.Snapshot {
	return &state.Snapshot{
		Entities: map[string]state.Entity{
			"sensor.living_temp": {ID: "sensor.living_temp", Value: 21.4, Unit: "°C", Available: true},
			"sensor.cpu":         {ID: "sensor.cpu", Value: 37.0, Unit: "%", Available: true},
			"sensor.power":       {ID: "sensor.power", Value: 240.0, Unit: "W", Available: true},
		},
		Histories: map[string]state.History{
			"sensor.power": {180, 220, 260, 240, 250, 230},
		},
	}
}

func TestNewAssemblesLayout(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	d, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, d.Layout().SlotCount())
	for i, slot := range d.Layout().Slots() {
		assert.NotNil(t, slot.Widget, "slot %d has no widget", i)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Size: 240, Layout: LayoutConfig{Kind: "hexagons"}})
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	d, err := New(cfg)
	require.NoError(t, err)

	res, err := d.Frame(context.Background(), testSnapshot())
	require.NoError(t, err)

	_, err = uuid.Parse(res.FrameID)
	assert.NoError(t, err, "frame ID must be a UUID")
	assert.Positive(t, res.Elapsed)

	jpg, format, err := image.Decode(bytes.NewReader(res.JPEG))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 240, jpg.Bounds().Dx())
	assert.Equal(t, 240, jpg.Bounds().Dy())
	assert.LessOrEqual(t, len(res.JPEG), cfg.Encode.MaxBytes)

	png, format, err := image.Decode(bytes.NewReader(res.PNG))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 240, png.Bounds().Dx())
}

func TestFrameWithEmptySnapshotStillRenders(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	d, err := New(cfg)
	require.NoError(t, err)

	res, err := d.Frame(context.Background(), &state.Snapshot{})
	require.NoError(t, err)
	assert.NotEmpty(t, res.JPEG)
	assert.NotEmpty(t, res.PNG)
}

func TestFrameIDsAreUnique(t *testing.T) {
	cfg, err := Parse([]byte(`[layout]
kind = "fullscreen"`))
	require.NoError(t, err)
	d, err := New(cfg)
	require.NoError(t, err)

	a, err := d.Frame(context.Background(), &state.Snapshot{})
	require.NoError(t, err)
	b, err := d.Frame(context.Background(), &state.Snapshot{})
	require.NoError(t, err)
	assert.NotEqual(t, a.FrameID, b.FrameID)
}

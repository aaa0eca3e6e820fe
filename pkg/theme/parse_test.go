package theme

import "testing"

func TestParseColor(t *testing.T) {
	def := RGB{R: 1, G: 2, B: 3}

	tests := []struct {
		name string
		in   any
		want RGB
	}{
		{
			name: "int slice",
			in:   []int{255, 140, 0},
			want: RGB{R: 255, G: 140, B: 0},
		},
		{
			name: "int64 slice",
			in:   []int64{10, 20, 30},
			want: RGB{R: 10, G: 20, B: 30},
		},
		{
			name: "float slice",
			in:   []float64{10.7, 20.2, 30.9},
			want: RGB{R: 10, G: 20, B: 30},
		},
		{
			name: "any slice mixed numerics",
			in:   []any{int64(5), 6, 7.0},
			want: RGB{R: 5, G: 6, B: 7},
		},
		{
			name: "array",
			in:   [3]int{9, 8, 7},
			want: RGB{R: 9, G: 8, B: 7},
		},
		{
			name: "channels clamped",
			in:   []int{-5, 300, 128},
			want: RGB{R: 0, G: 255, B: 128},
		},
		{
			name: "wrong length",
			in:   []int{1, 2},
			want: def,
		},
		{
			name: "wrong element type",
			in:   []any{1, "two", 3},
			want: def,
		},
		{
			name: "string",
			in:   "#ff8800",
			want: def,
		},
		{
			name: "nil",
			in:   nil,
			want: def,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.in, def); got != tt.want {
				t.Errorf("ParseColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorResolve(t *testing.T) {
	th := Default()

	lit := Literal(1, 2, 3)
	if got := lit.Resolve(th); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("literal Resolve = %v, want {1 2 3}", got)
	}

	role := ForRole(RoleSecondary)
	if got := role.Resolve(th); got != th.TextSecondary {
		t.Errorf("role Resolve = %v, want %v", got, th.TextSecondary)
	}

	unknown := ForRole(Role("nope"))
	if got := unknown.Resolve(th); got != th.TextPrimary {
		t.Errorf("unknown role Resolve = %v, want primary %v", got, th.TextPrimary)
	}
}

func TestAccentWraps(t *testing.T) {
	th := Default()
	if th.Accent(0) != th.Accent(6) {
		t.Error("Accent(6) should wrap to Accent(0)")
	}
	if th.Accent(-1) != th.Accent(0) {
		t.Error("negative accent index should clamp to 0")
	}
}

func TestDim(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	d := Dim(c, 0.5)
	if d.R >= c.R || d.G >= c.G || d.B >= c.B {
		t.Errorf("Dim(%v, 0.5) = %v, expected strictly darker channels", c, d)
	}
	if got := Dim(c, 0); got != (RGB{}) {
		t.Errorf("Dim to zero = %v, want black", got)
	}
}

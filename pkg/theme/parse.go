package theme

// ParseColor converts a loosely-typed color value into an RGB triple.
//
// Dashboard configuration and upstream attribute payloads deliver colors as
// 3-element lists of int-convertible numbers ([]int, []int64, []float64, or
// []any mixing those). Any other shape or element type returns def unchanged;
// malformed upstream data must never fail a frame.
func ParseColor(v any, def RGB) RGB {
	switch vv := v.(type) {
	case RGB:
		return vv
	case [3]int:
		return rgbFromInts(vv[0], vv[1], vv[2])
	case []int:
		if len(vv) != 3 {
			return def
		}
		return rgbFromInts(vv[0], vv[1], vv[2])
	case []int64:
		if len(vv) != 3 {
			return def
		}
		return rgbFromInts(int(vv[0]), int(vv[1]), int(vv[2]))
	case []float64:
		if len(vv) != 3 {
			return def
		}
		return rgbFromInts(int(vv[0]), int(vv[1]), int(vv[2]))
	case []any:
		if len(vv) != 3 {
			return def
		}
		var ch [3]int
		for i, e := range vv {
			n, ok := asInt(e)
			if !ok {
				return def
			}
			ch[i] = n
		}
		return rgbFromInts(ch[0], ch[1], ch[2])
	default:
		return def
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func rgbFromInts(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func clampChannel(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

package layout

import (
	"fmt"

	"github.com/panelkit/panelkit/pkg/errors"
)

// Kind enumerates the closed set of slot arrangements. There is no
// user-extensible registry; adding an arrangement means adding a case here
// and its geometry in build.
type Kind int

// Slot arrangements.
const (
	Grid2x2 Kind = iota
	Grid2x3
	Grid3x2
	Grid3x3
	HeroFooter
	SplitH
	SplitV
	Columns
	Rows
	SidebarLeft
	SidebarRight
	Fullscreen
)

var kindNames = map[Kind]string{
	Grid2x2:      "grid_2x2",
	Grid2x3:      "grid_2x3",
	Grid3x2:      "grid_3x2",
	Grid3x3:      "grid_3x3",
	HeroFooter:   "hero_footer",
	SplitH:       "split_h",
	SplitV:       "split_v",
	Columns:      "columns",
	Rows:         "rows",
	SidebarLeft:  "sidebar_left",
	SidebarRight: "sidebar_right",
	Fullscreen:   "fullscreen",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a config name to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidLayout, "unknown layout kind %q", s)
}

// Kinds returns every layout kind, ordered.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := Grid2x2; k <= Fullscreen; k++ {
		out = append(out, k)
	}
	return out
}

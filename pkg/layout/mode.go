package layout

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/geom"
)

// Mode selects one alignment operation and the axis it runs along.
type Mode int

// Supported modes.
const (
	ModeLeft Mode = iota + 1
	ModeRight
	ModeBottom
	ModeTop
	ModeCenterX
	ModeCenterY
	ModeDistributeH
	ModeDistributeV
	ModeUntangleH
	ModeUntangleV
)

// Kind is the algorithm family a mode belongs to.
type Kind int

const (
	KindEdgeMin Kind = iota + 1
	KindEdgeMax
	KindCenter
	KindDistribute
	KindUntangle
)

type modeInfo struct {
	name  string
	desc  string
	kind  Kind
	axis  geom.Axis
	alias []string
}

var modes = map[Mode]modeInfo{
	ModeLeft:        {"left", "Align left edges", KindEdgeMin, geom.AxisRight, nil},
	ModeRight:       {"right", "Align right edges", KindEdgeMax, geom.AxisRight, nil},
	ModeBottom:      {"bottom", "Align bottom edges", KindEdgeMin, geom.AxisUp, nil},
	ModeTop:         {"top", "Align top edges", KindEdgeMax, geom.AxisUp, nil},
	ModeCenterX:     {"center-x", "Align centers horizontally", KindCenter, geom.AxisRight, []string{"centerx", "center-h"}},
	ModeCenterY:     {"center-y", "Align centers vertically", KindCenter, geom.AxisUp, []string{"centery", "center-v"}},
	ModeDistributeH: {"distribute-h", "Distribute horizontally", KindDistribute, geom.AxisRight, []string{"distribute-horizontally"}},
	ModeDistributeV: {"distribute-v", "Distribute vertically", KindDistribute, geom.AxisUp, []string{"distribute-vertically"}},
	ModeUntangleH:   {"untangle-h", "Untangle horizontally", KindUntangle, geom.AxisRight, []string{"untangle-horizontally"}},
	ModeUntangleV:   {"untangle-v", "Untangle vertically", KindUntangle, geom.AxisUp, []string{"untangle-vertically"}},
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, len(modes))
	for m := ModeLeft; m <= ModeUntangleV; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMode resolves a mode name such as "left" or "distribute-h".
// Matching is case-insensitive and accepts underscores in place of dashes.
func ParseMode(s string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for m, info := range modes {
		if info.name == key {
			return m, nil
		}
		for _, a := range info.alias {
			if a == key {
				return m, nil
			}
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q", s)
}

// String returns the canonical mode name.
func (m Mode) String() string {
	if info, ok := modes[m]; ok {
		return info.name
	}
	return "unknown"
}

// Description returns a short human-readable label.
func (m Mode) Description() string { return modes[m].desc }

// Kind returns the algorithm family.
func (m Mode) Kind() Kind { return modes[m].kind }

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	_, ok := modes[m]
	return ok
}

// AxisOf returns which basis axis the mode works along.
func (m Mode) AxisOf() geom.Axis { return modes[m].axis }

// Axis returns the direction the mode works along in basis b.
func (m Mode) Axis(b geom.Basis) mgl64.Vec3 { return b.Axis(m.AxisOf()) }

// MinObjects returns the smallest selection the mode accepts.
func (m Mode) MinObjects() int {
	if m.Kind() == KindDistribute {
		return 3
	}
	return 2
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidMode, "invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

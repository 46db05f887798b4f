package scene

import (
	"fmt"

	"github.com/benoitkugler/dalmatian/dlmt"
	"github.com/benoitkugler/dalmatian/geom"
)

// View selection policies, besides explicit view ids.
const (
	PolicyDefault = "default"
	PolicyCropped = "cropped"
)

// DefaultView is the unit page, showing every brushstroke.
func DefaultView() dlmt.View {
	return dlmt.View{
		ID:          "i:1",
		Lang:        "en",
		XY:          geom.Zero(),
		Width:       geom.Int(1),
		Height:      geom.Int(1),
		Flags:       "o",
		Everything:  true,
		Description: "everything",
	}
}

// CroppedView returns the smallest view holding the position of
// every brushstroke.
func CroppedView(m dlmt.Media) (dlmt.View, error) {
	rect, ok := m.BrushstrokePoints().ContainingRect()
	if !ok {
		return dlmt.View{}, fmt.Errorf("%w: media has no brushstrokes", ErrEmptyView)
	}
	if rect.Width.Sign() == 0 {
		return dlmt.View{}, fmt.Errorf("%w: brushstrokes are vertically aligned", ErrEmptyView)
	}
	return dlmt.View{
		ID:          "i:2",
		Lang:        "en",
		XY:          rect.Origin,
		Width:       rect.Width,
		Height:      rect.Height,
		Flags:       "o",
		Everything:  true,
		Description: "cropped",
	}, nil
}

// SelectView resolves a policy: PolicyDefault, PolicyCropped or the
// id of a view declared by m.
func SelectView(m dlmt.Media, policy string) (dlmt.View, error) {
	switch policy {
	case PolicyDefault, "":
		return DefaultView(), nil
	case PolicyCropped:
		return CroppedView(m)
	}
	v, ok := m.View(policy)
	if !ok {
		return dlmt.View{}, fmt.Errorf("%w: %s", ErrUnknownView, policy)
	}
	return v, nil
}

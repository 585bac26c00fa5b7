// Package tools implements the drawing tools and the gesture state machine
// that applies them to a raster surface.
package tools

import (
	"fmt"

	"github.com/user/rasterpaint/pkg/raster"
)

// Kind identifies a drawing tool.
type Kind int

const (
	Brush Kind = iota
	Eraser
	Spray
	Line
	Rectangle
	Circle
	Gradient
	Selection
	Fill
	Text
	Polygon
)

var kindNames = [...]string{
	Brush:     "brush",
	Eraser:    "eraser",
	Spray:     "spray",
	Line:      "line",
	Rectangle: "rectangle",
	Circle:    "circle",
	Gradient:  "gradient",
	Selection: "selection",
	Fill:      "fill",
	Text:      "text",
	Polygon:   "polygon",
}

// String returns the tool name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind parses a tool name.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q: %w", s, raster.ErrInvalidParameter)
}

// Kinds returns every tool in toolbar order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// continuous tools paint incrementally from the last pointer position.
func (k Kind) continuous() bool {
	return k == Brush || k == Eraser || k == Spray
}

// shape tools redraw from the anchor over a preview copy on every move.
func (k Kind) shape() bool {
	switch k {
	case Line, Rectangle, Circle, Gradient, Selection:
		return true
	}
	return false
}

// ButtonRole is the pointer button that started a gesture.
type ButtonRole int

const (
	Primary ButtonRole = iota
	Secondary
)

// String returns the role name.
func (r ButtonRole) String() string {
	if r == Secondary {
		return "secondary"
	}
	return "primary"
}

// ParseButtonRole parses "primary"/"left" or "secondary"/"right".
func ParseButtonRole(s string) (ButtonRole, error) {
	switch s {
	case "", "primary", "left":
		return Primary, nil
	case "secondary", "right":
		return Secondary, nil
	default:
		return 0, fmt.Errorf("unknown button %q: %w", s, raster.ErrInvalidParameter)
	}
}

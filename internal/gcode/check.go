package gcode

import "fmt"

// BoundsViolation records a toolpath position outside the cutting domain.
type BoundsViolation struct {
	MoveIndex   int
	X, Y        float64
	IsDuringCut bool
}

// CheckBounds parses generated G-code and reports every move whose end
// position leaves the width x length domain. Cutting moves below the
// surface outside the domain would hit the turntable; rapids outside it
// would hit the enclosure.
func CheckBounds(code string, width, length float64) []BoundsViolation {
	const slack = 1e-6

	var violations []BoundsViolation
	for i, m := range Parse(code) {
		if m.ToX < -slack || m.ToX > width+slack || m.ToY < -slack || m.ToY > length+slack {
			violations = append(violations, BoundsViolation{
				MoveIndex:   i,
				X:           m.ToX,
				Y:           m.ToY,
				IsDuringCut: m.Type == ToolFeed && m.ToZ < 0,
			})
		}
	}
	return violations
}

// FormatBoundsWarnings produces human-readable warning messages.
func FormatBoundsWarnings(violations []BoundsViolation) []string {
	var warnings []string
	for _, v := range violations {
		moveType := "travel"
		if v.IsDuringCut {
			moveType = "cutting"
		}
		warnings = append(warnings, fmt.Sprintf(
			"move %d: %s position (%.2f, %.2f) is outside the domain",
			v.MoveIndex+1, moveType, v.X, v.Y,
		))
	}
	return warnings
}

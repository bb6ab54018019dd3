package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// ToolMoveType classifies a parsed toolpath movement.
type ToolMoveType int

const (
	ToolRapid   ToolMoveType = iota // G0: travel above the cake
	ToolFeed                        // G1: dragging the blade in XY
	ToolPlunge                      // G1 with Z decreasing: lowering the blade
	ToolRetract                     // G0/G1 with Z increasing: raising the blade
)

// ToolMove is a single parsed movement with absolute start and end state.
type ToolMove struct {
	Type     ToolMoveType
	FromX    float64
	FromY    float64
	FromZ    float64
	ToX      float64
	ToY      float64
	ToZ      float64
	FeedRate float64
}

var coordRe = regexp.MustCompile(`([XYZF])([-]?\d+\.?\d*)`)

// Parse parses a G-code string into structured moves. It tracks absolute
// position state and classifies each G0/G1 command by its movement
// characteristics.
func Parse(code string) []ToolMove {
	var moves []ToolMove

	curX, curY, curZ := 0.0, 0.0, 0.0
	curFeed := 0.0

	for _, line := range strings.Split(code, "\n") {
		line = stripComments(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		isRapid := hasCommand(upper, "G0", "G00")
		isFeed := hasCommand(upper, "G1", "G01")
		if !isRapid && !isFeed {
			continue
		}

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		for _, m := range coordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
			case "Y":
				newY = val
			case "Z":
				newZ = val
			case "F":
				newFeed = val
			}
		}

		moves = append(moves, ToolMove{
			Type:     classifyMove(isRapid, curZ, newZ, curX, curY, newX, newY),
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
		})

		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}

	return moves
}

// stripComments removes semicolon and parenthetical comments.
func stripComments(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "("); idx >= 0 {
		if end := strings.Index(line, ")"); end > idx {
			line = line[:idx] + line[end+1:]
		} else {
			line = line[:idx]
		}
	}
	return strings.TrimSpace(line)
}

func hasCommand(upper string, cmds ...string) bool {
	for _, c := range cmds {
		if upper == c || strings.HasPrefix(upper, c+" ") {
			return true
		}
	}
	return false
}

// classifyMove determines the ToolMoveType from the movement deltas.
func classifyMove(isRapid bool, fromZ, toZ, fromX, fromY, toX, toY float64) ToolMoveType {
	zDelta := toZ - fromZ
	hasXY := fromX != toX || fromY != toY

	switch {
	case isRapid:
		if zDelta > 0 {
			return ToolRetract
		}
		return ToolRapid
	case zDelta < -0.001 && !hasXY:
		return ToolPlunge
	case zDelta > 0.001 && !hasXY:
		return ToolRetract
	default:
		return ToolFeed
	}
}

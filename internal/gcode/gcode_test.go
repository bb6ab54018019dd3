package gcode

import (
	"strings"
	"testing"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

func testMoves() []model.Move {
	return []model.Move{
		{Kind: model.MoveInit, To: geometry.Point{X: 0, Y: 50}},
		{Kind: model.MoveCut, To: geometry.Point{X: 100, Y: 50}},
		{Kind: model.MoveCut, To: geometry.Point{X: 40, Y: 99.99}},
		{Kind: model.MoveCut, To: geometry.Point{X: 40, Y: 0}},
	}
}

func TestGenerateStructure(t *testing.T) {
	g := New(DefaultSettings())
	code := g.Generate(testMoves(), 100, 100)

	if !strings.Contains(code, "G90") {
		t.Error("expected absolute mode in startup codes")
	}
	if !strings.Contains(code, "M2") {
		t.Error("expected program end code")
	}
	if !strings.Contains(code, "Z-60.000") {
		t.Error("expected plunge to the configured cut depth")
	}
	if !strings.Contains(code, "Z10.000") {
		t.Error("expected safe Z retracts")
	}
}

func TestGenerateProfileCommentStyle(t *testing.T) {
	s := DefaultSettings()
	s.Profile = "LinuxCNC"
	code := New(s).Generate(testMoves(), 100, 100)
	if !strings.Contains(code, "( Profile: LinuxCNC)") {
		t.Error("expected parenthetical comments for the LinuxCNC profile")
	}
}

func TestGetProfileFallsBackToGeneric(t *testing.T) {
	if p := GetProfile("no-such-controller"); p.Name != "Generic" {
		t.Errorf("unknown profile should fall back to Generic, got %s", p.Name)
	}
	names := GetProfileNames()
	if len(names) != len(Profiles) {
		t.Errorf("expected %d profile names, got %d", len(Profiles), len(names))
	}
}

func TestParseRoundTrip(t *testing.T) {
	g := New(DefaultSettings())
	code := g.Generate(testMoves(), 100, 100)
	parsed := Parse(code)

	var plunges, feeds int
	for _, m := range parsed {
		switch m.Type {
		case ToolPlunge:
			plunges++
		case ToolFeed:
			feeds++
		}
	}
	if plunges != 1 {
		t.Errorf("expected 1 plunge for a single placement, got %d", plunges)
	}
	// Three cut moves in the plan.
	if feeds != 3 {
		t.Errorf("expected 3 feed moves, got %d", feeds)
	}
	last := parsed[len(parsed)-1]
	if last.ToX != 0 || last.ToY != 0 {
		t.Errorf("end codes should park at the origin, got (%f, %f)", last.ToX, last.ToY)
	}
}

func TestParseClassification(t *testing.T) {
	code := "G0 Z5\nG0 X10 Y10\nG1 Z-2 F300\nG1 X20 Y10 F800\nG1 Z5\n"
	moves := Parse(code)
	want := []ToolMoveType{ToolRetract, ToolRapid, ToolPlunge, ToolFeed, ToolRetract}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(moves))
	}
	for i, m := range moves {
		if m.Type != want[i] {
			t.Errorf("move %d: type %d, want %d", i, m.Type, want[i])
		}
	}
}

func TestParseIgnoresComments(t *testing.T) {
	code := "; full line comment\nG1 X5 Y5 F100 ; trailing\n(block) G1 X6 Y6\n"
	moves := Parse(code)
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves))
	}
	if moves[1].ToX != 6 || moves[1].ToY != 6 {
		t.Errorf("parenthetical comment not stripped correctly: %+v", moves[1])
	}
}

func TestCheckBounds(t *testing.T) {
	g := New(DefaultSettings())
	code := g.Generate(testMoves(), 100, 100)
	if v := CheckBounds(code, 100, 100); len(v) != 0 {
		t.Errorf("in-domain plan must have no violations, got %v", v)
	}

	small := CheckBounds(code, 50, 100)
	if len(small) == 0 {
		t.Fatal("expected violations when the domain shrinks below the plan")
	}
	warnings := FormatBoundsWarnings(small)
	if len(warnings) != len(small) {
		t.Errorf("expected %d warnings, got %d", len(small), len(warnings))
	}
}

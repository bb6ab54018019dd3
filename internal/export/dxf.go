package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/sliceforge/cakecut/internal/model"
)

// ExportDXF writes the cut plan as a DXF drawing: the domain outline on an
// OUTLINE layer and each cut as a LINE entity on a CUTS layer, so the plan
// can be loaded into CAD or CAM tooling.
func ExportDXF(path string, plan *model.Solution, width, length float64) error {
	if plan == nil {
		return fmt.Errorf("no plan to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("OUTLINE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add outline layer: %w", err)
	}
	outline := [][4]float64{
		{0, 0, width, 0},
		{width, 0, width, length},
		{width, length, 0, length},
		{0, length, 0, 0},
	}
	for _, l := range outline {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("outline line: %w", err)
		}
	}

	if _, err := d.AddLayer("CUTS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add cuts layer: %w", err)
	}
	for i, cut := range plan.Cuts {
		if _, err := d.Line(cut.From.X, cut.From.Y, 0, cut.To.X, cut.To.Y, 0); err != nil {
			return fmt.Errorf("cut %d: %w", i, err)
		}
	}

	return d.SaveAs(path)
}

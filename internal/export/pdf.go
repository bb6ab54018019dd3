// Package export provides functionality for exporting cut plans to various
// file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// pieceColor represents an RGB color for an assigned piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the cut plan as a two-page PDF: a scaled diagram of the
// pieces with their assigned requests, then a summary page with the
// per-request breakdown.
func ExportPDF(path string, plan *model.Solution, requests []model.Request, width, length float64) error {
	if plan == nil || len(plan.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan, requests, width, length)

	pdf.AddPage()
	renderSummaryPage(pdf, plan, requests)

	return pdf.OutputFileAndClose(path)
}

// renderPlanPage draws the cake, its pieces and the cut lines to scale.
func renderPlanPage(pdf *fpdf.Fpdf, plan *model.Solution, requests []model.Request, width, length float64) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cut Plan: %.0f x %.0f mm, %d cuts, %d pieces", width, length, plan.CutCount, len(plan.Pieces))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Requests: %d | Penalty: %.2f", len(requests), plan.Penalty)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 10

	scale := math.Min(drawWidth/width, drawHeight/length)
	canvasW := width * scale
	canvasH := length * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Cake background
	pdf.SetFillColor(255, 243, 224)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// pieceRequest maps piece index back to the request it serves.
	pieceRequest := make(map[int]int)
	for ri, pi := range plan.Assignment {
		if pi >= 0 {
			pieceRequest[pi] = ri
		}
	}

	for i, piece := range plan.Pieces {
		col := pieceColor{R: 224, G: 224, B: 224} // unassigned scraps stay grey
		if ri, ok := pieceRequest[i]; ok {
			col = pieceColors[ri%len(pieceColors)]
		}

		pts := make([]fpdf.PointType, len(piece))
		for j, p := range piece {
			pts[j] = fpdf.PointType{X: offsetX + p.X*scale, Y: offsetY + p.Y*scale}
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Polygon(pts, "FD")

		drawPieceLabel(pdf, piece, pieceRequest, i, scale, offsetX, offsetY)
	}

	// Cut lines on top of the fills
	pdf.SetDrawColor(183, 28, 28)
	pdf.SetLineWidth(0.5)
	for _, cut := range plan.Cuts {
		pdf.Line(offsetX+cut.From.X*scale, offsetY+cut.From.Y*scale,
			offsetX+cut.To.X*scale, offsetY+cut.To.Y*scale)
	}

	drawDimensionAnnotations(pdf, width, length, scale, offsetX, offsetY, canvasW, canvasH)
}

// drawPieceLabel writes the request id and area near the piece centroid
// when the piece is big enough to hold text.
func drawPieceLabel(pdf *fpdf.Fpdf, piece geometry.Polygon, pieceRequest map[int]int, idx int, scale, offsetX, offsetY float64) {
	area := piece.Area()
	if area*scale*scale < 80 {
		return
	}
	c := piece.Centroid()

	label := "scrap"
	if ri, ok := pieceRequest[idx]; ok {
		label = fmt.Sprintf("#%d", ri+1)
	}
	dims := fmt.Sprintf("%.0f mm²", area)

	pdf.SetFont("Helvetica", "", labelFontSize(area*scale*scale))
	pdf.SetTextColor(0, 0, 0)

	labelW := pdf.GetStringWidth(label)
	pdf.SetXY(offsetX+c.X*scale-labelW/2, offsetY+c.Y*scale-4)
	pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")

	dimsW := pdf.GetStringWidth(dims)
	pdf.SetXY(offsetX+c.X*scale-dimsW/2, offsetY+c.Y*scale)
	pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
}

// drawDimensionAnnotations adds width and length labels outside the cake rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, width, length, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lengthLabel := fmt.Sprintf("%.0f mm", length)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the per-request breakdown table.
func renderSummaryPage(pdf *fpdf.Fpdf, plan *model.Solution, requests []model.Request) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Cuts", fmt.Sprintf("%d", plan.CutCount)},
		{"Pieces", fmt.Sprintf("%d", len(plan.Pieces))},
		{"Requests", fmt.Sprintf("%d", len(requests))},
		{"Unassigned Requests", fmt.Sprintf("%d", countUnassigned(plan.Assignment))},
		{"Penalty", fmt.Sprintf("%.2f", plan.Penalty)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Request Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 40, 50, 50, 40}
	headers := []string{"#", "ID", "Requested", "Served", "Error"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, req := range requests {
		served := "-"
		errPct := "-"
		if i < len(plan.Assignment) && plan.Assignment[i] >= 0 {
			area := plan.Pieces[plan.Assignment[i]].Area()
			served = fmt.Sprintf("%.1f mm²", area)
			errPct = fmt.Sprintf("%.2f%%", 100*math.Abs(area-req.Area)/req.Area)
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			req.ID,
			fmt.Sprintf("%.1f mm²", req.Area),
			served,
			errPct,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if n := countUnassigned(plan.Assignment); n > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, fmt.Sprintf("WARNING: %d request(s) could not be served", n), "", 0, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CakeCut", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size for a piece of the given
// on-page area.
func labelFontSize(pageArea float64) float64 {
	switch {
	case pageArea > 1500:
		return 8
	case pageArea > 400:
		return 7
	default:
		return 6
	}
}

func countUnassigned(a model.Assignment) int {
	n := 0
	for _, pi := range a {
		if pi < 0 {
			n++
		}
	}
	return n
}

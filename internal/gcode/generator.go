// Package gcode renders a planned knife move sequence as G-code so a plan
// can drive a gantry-mounted blade. It also parses G-code back into a
// structured toolpath for verification.
package gcode

import (
	"fmt"
	"strings"

	"github.com/sliceforge/cakecut/internal/model"
)

// Settings holds the machine parameters for a cutting job.
type Settings struct {
	Profile    string  `json:"profile" yaml:"profile"`
	FeedRate   float64 `json:"feed_rate" yaml:"feed_rate"`     // mm/min while cutting
	PlungeRate float64 `json:"plunge_rate" yaml:"plunge_rate"` // mm/min while lowering the blade
	CutDepth   float64 `json:"cut_depth" yaml:"cut_depth"`     // blade depth below the surface, mm
	SafeZ      float64 `json:"safe_z" yaml:"safe_z"`           // travel height above the surface, mm
}

func DefaultSettings() Settings {
	return Settings{
		Profile:    "Generic",
		FeedRate:   800.0,
		PlungeRate: 300.0,
		CutDepth:   60.0,
		SafeZ:      10.0,
	}
}

// Generator produces G-code from a knife move plan.
type Generator struct {
	Settings Settings
	profile  Profile
}

func New(settings Settings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  GetProfile(settings.Profile),
	}
}

// Generate renders the move plan for a width x length domain. The first
// move raises the blade, rapids to the placement point and plunges; every
// later move drags the lowered blade to its target.
func (g *Generator) Generate(moves []model.Move, width, length float64) string {
	var b strings.Builder

	g.writeHeader(&b, moves, width, length)

	for _, m := range moves {
		switch m.Kind {
		case model.MoveInit:
			b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(g.Settings.SafeZ)))
			b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove, g.format(m.To.X), g.format(m.To.Y)))
			b.WriteString(fmt.Sprintf("%s Z%s F%s\n", g.profile.FeedMove,
				g.format(-g.Settings.CutDepth), g.format(g.Settings.PlungeRate)))
		case model.MoveCut:
			b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
				g.format(m.To.X), g.format(m.To.Y), g.format(g.Settings.FeedRate)))
		}
	}

	g.writeFooter(&b)
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, moves []model.Move, width, length float64) {
	p := g.profile

	b.WriteString(g.comment("CakeCut GCode"))
	b.WriteString(g.comment(fmt.Sprintf("Domain: %.1f x %.1f mm", width, length)))
	b.WriteString(g.comment(fmt.Sprintf("Moves: %d", len(moves))))
	b.WriteString(g.comment(fmt.Sprintf("Feed: %.0f mm/min, Plunge: %.0f mm/min", g.Settings.FeedRate, g.Settings.PlungeRate)))
	b.WriteString(g.comment(fmt.Sprintf("Depth: %.1fmm, SafeZ: %.1fmm", g.Settings.CutDepth, g.Settings.SafeZ)))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(g.comment("=== Job complete ==="))

	for _, code := range p.EndCode {
		code = strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ))
		b.WriteString(code + "\n")
	}
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}

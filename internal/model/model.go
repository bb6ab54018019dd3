// Package model defines the shared data types of the cut planner: cuts,
// cut sets, requests, knife moves, solutions and the planner settings.
package model

import (
	"github.com/google/uuid"

	"github.com/sliceforge/cakecut/internal/geometry"
)

// Request is a target area a piece should match.
type Request struct {
	ID   string  `json:"id"`
	Area float64 `json:"area"`
}

func NewRequest(area float64) Request {
	return Request{
		ID:   uuid.New().String()[:8],
		Area: area,
	}
}

// Areas extracts the raw area values from a request list.
func Areas(requests []Request) []float64 {
	out := make([]float64, len(requests))
	for i, r := range requests {
		out[i] = r.Area
	}
	return out
}

// Cut is a straight boundary-to-boundary segment. Endpoints are stored at
// two-decimal precision and always lie on the cake boundary; the two
// endpoints never share an edge.
type Cut struct {
	From geometry.Point `json:"from"`
	To   geometry.Point `json:"to"`
}

// Equal compares cuts independent of endpoint order.
func (c Cut) Equal(o Cut) bool {
	return (c.From == o.From && c.To == o.To) || (c.From == o.To && c.To == o.From)
}

// Canonical returns the cut with its endpoints in a fixed order, so cuts
// can be used as map keys regardless of endpoint order.
func (c Cut) Canonical() Cut {
	a, b := c.From, c.To
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return Cut{From: a, To: b}
}

// CutSet is an ordered sequence of cuts. Order matters: each cut is applied
// to the pieces produced by the previous ones, so the same cuts in a
// different order can yield a different partition.
type CutSet []Cut

// Contains reports whether the set already holds an equal cut.
func (cs CutSet) Contains(c Cut) bool {
	for _, e := range cs {
		if e.Equal(c) {
			return true
		}
	}
	return false
}

// Clone returns a copy of the cut set.
func (cs CutSet) Clone() CutSet {
	out := make(CutSet, len(cs))
	copy(out, cs)
	return out
}

// Assignment maps request index to piece index; -1 marks an unassigned
// request. Each piece index appears at most once.
type Assignment []int

// MoveKind distinguishes the initial knife placement from cutting moves.
type MoveKind string

const (
	MoveInit MoveKind = "init"
	MoveCut  MoveKind = "cut"
)

// Move is a single knife instruction: place the knife (init) or drag it to
// a point (cut). Between two real cuts the planner emits cut moves whose
// targets all lie on the cake boundary.
type Move struct {
	Kind MoveKind       `json:"kind"`
	To   geometry.Point `json:"to"`
}

// Solution holds the full planner output.
type Solution struct {
	Cuts       CutSet             `json:"cuts"`
	CutCount   int                `json:"cut_count"`
	Pieces     []geometry.Polygon `json:"pieces"`
	Assignment Assignment         `json:"assignment"`
	Moves      []Move             `json:"moves"`
	Penalty    float64            `json:"penalty"`
}

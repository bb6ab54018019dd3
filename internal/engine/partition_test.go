package engine

import (
	"math"
	"testing"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

func TestPartitionNoCuts(t *testing.T) {
	pieces, err := Partition(model.CutSet{}, 100, 80)
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) != 1 {
		t.Fatalf("expected the whole cake, got %d pieces", len(pieces))
	}
	if a := pieces[0].Area(); math.Abs(a-8000) > 1e-9 {
		t.Errorf("cake area = %f, want 8000", a)
	}
}

func TestPartitionBisect(t *testing.T) {
	cuts := model.CutSet{
		{From: geometry.Point{X: 50, Y: 0}, To: geometry.Point{X: 50, Y: 100}},
	}
	pieces, err := Partition(cuts, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	for _, p := range pieces {
		if a := p.Area(); math.Abs(a-5000) > 1e-9 {
			t.Errorf("piece area = %f, want 5000", a)
		}
	}
}

func TestPartitionConservesArea(t *testing.T) {
	cuts := model.CutSet{
		{From: geometry.Point{X: 30, Y: 0}, To: geometry.Point{X: 70, Y: 100}},
		{From: geometry.Point{X: 0, Y: 40}, To: geometry.Point{X: 100, Y: 60}},
		{From: geometry.Point{X: 0, Y: 80}, To: geometry.Point{X: 20, Y: 0}},
	}
	pieces, err := Partition(cuts, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for _, p := range pieces {
		total += p.Area()
	}
	if math.Abs(total-10000) > 1e-6 {
		t.Errorf("piece areas sum to %f, want 10000", total)
	}
	if len(pieces) < 4 {
		t.Errorf("three crossing cuts must yield at least 4 pieces, got %d", len(pieces))
	}
}

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

func buildTestPlan() Plan {
	requests := []model.Request{
		{ID: "r1", Area: 5000},
		{ID: "r2", Area: 5000},
	}
	plan := NewPlan("birthday", 100, 100, 5, requests, model.DefaultSettings())
	plan.Solution = &model.Solution{
		Cuts: model.CutSet{
			{From: geometry.Point{X: 50, Y: 0}, To: geometry.Point{X: 50, Y: 100}},
		},
		CutCount: 1,
		Pieces: []geometry.Polygon{
			{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 50, Y: 100}, {X: 50, Y: 0}},
			{{X: 50, Y: 0}, {X: 50, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}},
		},
		Assignment: model.Assignment{0, 1},
		Penalty:    0,
	}
	return plan
}

func TestSaveLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "birthday.json")
	plan := buildTestPlan()

	require.NoError(t, SavePlan(path, plan))

	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, loaded.ID)
	assert.Equal(t, plan.Name, loaded.Name)
	assert.Equal(t, plan.CakeWidth, loaded.CakeWidth)
	require.Len(t, loaded.Requests, 2)
	require.NotNil(t, loaded.Solution)
	assert.Equal(t, 1, loaded.Solution.CutCount)
	assert.Equal(t, plan.Solution.Cuts[0], loaded.Solution.Cuts[0])
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPlanNilRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"x","name":"bare"}`), 0o644))

	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Requests)
	assert.Empty(t, loaded.Requests)
}

func TestNewPlanIDs(t *testing.T) {
	a := NewPlan("a", 10, 10, 0, nil, model.DefaultSettings())
	b := NewPlan("b", 10, 10, 0, nil, model.DefaultSettings())
	assert.Len(t, a.ID, 8)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEmpty(t, a.CreatedAt)
}

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.cakecut.gz")
	plan := buildTestPlan()

	require.NoError(t, ExportArchive(path, plan))

	// Archive should actually be gzip data, not raw JSON.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 2)
	assert.Equal(t, byte(0x1f), raw[0])
	assert.Equal(t, byte(0x8b), raw[1])

	archive, err := ImportArchive(path)
	require.NoError(t, err)
	assert.Equal(t, archiveVersion, archive.Version)
	assert.Equal(t, plan.ID, archive.Plan.ID)
	require.NotNil(t, archive.Plan.Solution)
	assert.Equal(t, plan.Solution.Assignment, archive.Plan.Solution.Assignment)
}

func TestImportArchiveRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0o644))

	_, err := ImportArchive(path)
	assert.Error(t, err)
}

func TestDefaultPlansDir(t *testing.T) {
	dir := DefaultPlansDir()
	assert.Equal(t, ".cakecut", filepath.Base(dir))
	assert.True(t, filepath.IsAbs(dir) || dir == ".cakecut")
}

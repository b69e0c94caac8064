package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBuildGridDefault(t *testing.T) {
	outer := Vec(800, 800)
	region := Vec(600, 600)
	tile := Vec(60, 60)

	points := BuildGrid(outer, region, tile)
	if got, want := len(points), 100; got != want {
		t.Fatalf("len(BuildGrid()) = %d, want %d", got, want)
	}

	if got, want := points[0], Vec(130, 130); got != want {
		t.Fatalf("first point = %v, want %v", got, want)
	}
	if got, want := points[1], Vec(130, 190); got != want {
		t.Fatalf("second point = %v, want %v (column-major order)", got, want)
	}
	if got, want := points[10], Vec(190, 130); got != want {
		t.Fatalf("points[10] = %v, want %v", got, want)
	}

	bounds, ok := Bounds(points)
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if diff := cmp.Diff(Vec(400, 400), bounds.Center(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("lattice not centred (-want +got):\n%s", diff)
	}
}

func TestBuildGridSpacing(t *testing.T) {
	points := BuildGrid(Vec(800, 800), Vec(600, 600), TileSize(Vec(600, 600), 7))
	if got, want := len(points), 49; got != want {
		t.Fatalf("len(BuildGrid()) = %d, want %d", got, want)
	}
	tile := 600.0 / 7
	for i := 1; i < 7; i++ {
		dy := points[i].Y - points[i-1].Y
		if diff := cmp.Diff(tile, dy, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("spacing at %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestBuildGridCounts(t *testing.T) {
	region := Vec(600, 600)
	for rows := 1; rows <= 100; rows++ {
		points := BuildGrid(Vec(800, 800), region, TileSize(region, rows))
		if got, want := len(points), rows*rows; got != want {
			t.Fatalf("rows=%d: len(BuildGrid()) = %d, want %d", rows, got, want)
		}
	}
}

func TestBuildGridDegenerate(t *testing.T) {
	if got := BuildGrid(Vec(800, 800), Vec(600, 600), Vec(0, 0)); got != nil {
		t.Fatalf("BuildGrid(zero tile) = %v, want nil", got)
	}
	if got := BuildGrid(Vec(800, 800), Vec(0, 600), Vec(60, 60)); got != nil {
		t.Fatalf("BuildGrid(zero region) = %v, want nil", got)
	}
}

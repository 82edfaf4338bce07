package domain

import (
	"math"
	"testing"
)

func TestHaversineNM(t *testing.T) {
	a := Coordinates{Lat: 0, Lon: 0}
	b := Coordinates{Lat: 0, Lon: 1}

	// One degree of longitude on the equator is 60 nautical miles by
	// definition (within the spherical-earth approximation).
	got := a.HaversineNM(b)
	if math.Abs(got-60) > 0.5 {
		t.Fatalf("equator degree = %.2f nm, want ~60", got)
	}

	if d := a.HaversineNM(a); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}

	if ab, ba := a.HaversineNM(b), b.HaversineNM(a); math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance is not symmetric: %v vs %v", ab, ba)
	}
}

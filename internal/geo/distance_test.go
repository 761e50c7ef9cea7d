package geo_test

import (
	"math"
	"testing"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/geo"
)

func TestDistanceMeters_Identity(t *testing.T) {
	t.Parallel()

	points := []domain.Location{
		{Lat: 0, Lng: 0},
		{Lat: 40.7128, Lng: -74.0060},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 89.9, Lng: 179.9},
	}

	for _, p := range points {
		if d := geo.DistanceMeters(p, p); d != 0 {
			t.Errorf("distance of %+v to itself = %f, want 0", p, d)
		}
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	t.Parallel()

	a := domain.Location{Lat: 40.7128, Lng: -74.0060}
	b := domain.Location{Lat: 34.0522, Lng: -118.2437}

	ab := geo.DistanceMeters(a, b)
	ba := geo.DistanceMeters(b, a)

	if ab != ba {
		t.Fatalf("distance not symmetric: a->b=%f b->a=%f", ab, ba)
	}
}

func TestDistanceMeters_KnownValue_NYCtoLA(t *testing.T) {
	t.Parallel()

	nyc := domain.Location{Lat: 40.7128, Lng: -74.0060}
	la := domain.Location{Lat: 34.0522, Lng: -118.2437}

	got := geo.DistanceMeters(nyc, la)
	want := 3935746.0

	if math.Abs(got-want)/want > 0.005 {
		t.Fatalf("NYC-LA distance = %f, want %f +- 0.5%%", got, want)
	}
}

func TestDistanceMeters_MonotonicWithSeparation(t *testing.T) {
	t.Parallel()

	origin := domain.Location{Lat: 52.52, Lng: 13.405}

	prev := 0.0
	for _, dLng := range []float64{0.01, 0.05, 0.1, 0.5, 1, 5} {
		d := geo.DistanceMeters(origin, domain.Location{Lat: origin.Lat, Lng: origin.Lng + dLng})
		if d <= prev {
			t.Fatalf("distance not increasing at dLng=%f: got %f after %f", dLng, d, prev)
		}
		prev = d
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		meters float64
		want   string
	}{
		{0, "0m"},
		{1, "1m"},
		{849.6, "850m"},
		{999, "999m"},
		{1000, "1.00km"},
		{1500, "1.50km"},
		{3935746, "3935.75km"},
	}

	for _, c := range cases {
		if got := geo.FormatDistance(c.meters); got != c.want {
			t.Errorf("FormatDistance(%f) = %q, want %q", c.meters, got, c.want)
		}
	}
}

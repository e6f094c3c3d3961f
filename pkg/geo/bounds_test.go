package geo

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/1F47E/geo-bounds/pkg/models"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sfLat = 37.7749295
	sfLon = -122.4194155
)

func TestComputeBoundingBoxReference(t *testing.T) {
	tests := []struct {
		radius float64
		want   models.BoundingBox
	}{
		{0.01, models.BoundingBox{South: 37.7748659, West: -122.419496, North: 37.7749931, East: -122.419335}},
		{0.1, models.BoundingBox{South: 37.7742936, West: -122.42022, North: 37.7755654, East: -122.418611}},
		{1, models.BoundingBox{South: 37.7685701, West: -122.4274601, North: 37.7812884, East: -122.4113695}},
		{10, models.BoundingBox{South: 37.7113105, West: -122.499799, North: 37.8384938, East: -122.3388936}},
		{100, models.BoundingBox{South: 37.1363145, West: -123.2170945, North: 38.4080741, East: -121.6078959}},
		{1000, models.BoundingBox{South: 31.1756182, West: -129.8422171, North: 43.8203061, East: -113.6072316}},
	}

	for _, tt := range tests {
		box, err := ComputeBoundingBox(sfLat, sfLon, tt.radius)
		require.NoError(t, err)
		assertBox(t, tt.want, box, 1e-9)
	}
}

func TestComputeBoundingBoxSixDecimals(t *testing.T) {
	// Reference table printed with %.6f. Values already rounded to seven
	// decimals can differ in the sixth from the unrounded ones, as for the
	// west edge at 100 km (-123.2170945).
	tests := []struct {
		radius float64
		want   string
	}{
		{0.01, "(37.774866, -122.419496) (37.774993, -122.419335)"},
		{0.1, "(37.774294, -122.420220) (37.775565, -122.418611)"},
		{1, "(37.768570, -122.427460) (37.781288, -122.411370)"},
		{10, "(37.711311, -122.499799) (37.838494, -122.338894)"},
		{100, "(37.136314, -123.217095) (38.408074, -121.607896)"},
		{1000, "(31.175618, -129.842217) (43.820306, -113.607232)"},
	}

	for _, tt := range tests {
		box, err := ComputeBoundingBox(sfLat, sfLon, tt.radius)
		require.NoError(t, err)
		got := fmt.Sprintf("(%.6f, %.6f) (%.6f, %.6f)", box.South, box.West, box.North, box.East)
		assert.Equal(t, tt.want, got, "radius %v", tt.radius)
	}
}

func TestComputeBoundingBoxPole(t *testing.T) {
	box, err := ComputeBoundingBox(90, 0, 10)
	require.NoError(t, err)

	assert.InDelta(t, 89.9100678, box.South, 1e-7)
	assert.InDelta(t, 89.9100678, box.North, 1e-7)
	assert.InDelta(t, -90.0, box.West, 1e-6)
	assert.InDelta(t, 90.0, box.East, 1e-6)
	assert.LessOrEqual(t, box.North, 90.0)
}

func TestComputeBoundingBoxAntimeridian(t *testing.T) {
	want := models.BoundingBox{South: -0.0635916, West: 179.9364083, North: 0.0635916, East: -179.9364083}

	for _, lon := range []float64{180, -180} {
		box, err := ComputeBoundingBox(0, lon, 10)
		require.NoError(t, err)
		assertBox(t, want, box, 1e-9)
		assert.True(t, box.CrossesAntimeridian())
	}
}

func TestComputeBoundingBoxEquator(t *testing.T) {
	box, err := ComputeBoundingBox(0, 0, 100)
	require.NoError(t, err)
	assertBox(t, models.BoundingBox{South: -0.6359033, West: -0.6359425, North: 0.6359033, East: 0.6359425}, box, 1e-9)
	assert.False(t, box.CrossesAntimeridian())
}

func TestComputeBoundingBoxOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"lat above", 91, 0},
		{"lat below", -90.0000001, 0},
		{"lon above", 0, 181},
		{"lon below", 0, -180.5},
		{"nan lat", math.NaN(), 0},
		{"nan lon", 0, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, err := ComputeBoundingBox(tt.lat, tt.lon, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrOutOfRange)
			assert.Equal(t, models.BoundingBox{}, box)
		})
	}
}

func TestComputeBoundingBoxBoundaryValues(t *testing.T) {
	for _, c := range []models.Location{{Lat: 90, Lon: 180}, {Lat: -90, Lon: -180}, {Lat: 90, Lon: -180}, {Lat: -90, Lon: 180}} {
		_, err := BoundingBoxAround(c, 0)
		assert.NoError(t, err, "center %+v", c)
	}

	box, err := ComputeBoundingBox(90, 180, 0)
	require.NoError(t, err)
	assertBox(t, models.BoundingBox{South: 90, West: 180, North: 90, East: 180}, box, 1e-9)
}

func TestComputeBoundingBoxZeroRadius(t *testing.T) {
	box, err := ComputeBoundingBox(sfLat, sfLon, 0)
	require.NoError(t, err)
	assertBox(t, models.BoundingBox{South: sfLat, West: sfLon, North: sfLat, East: sfLon}, box, 1e-9)
}

func TestComputeBoundingBoxDeterministic(t *testing.T) {
	a, err := ComputeBoundingBox(sfLat, sfLon, 123.456)
	require.NoError(t, err)
	b, err := ComputeBoundingBox(sfLat, sfLon, 123.456)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeBoundingBoxProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		lat := r.Float64()*180 - 90
		lon := r.Float64()*360 - 180
		radius := r.Float64() * 10000

		box, err := ComputeBoundingBox(lat, lon, radius)
		require.NoError(t, err)

		assert.LessOrEqual(t, box.South, box.North, "center (%v, %v) radius %v", lat, lon, radius)
		for _, v := range []float64{box.South, box.West, box.North, box.East} {
			assertMultipleOfStep(t, v)
		}
		assert.GreaterOrEqual(t, box.West, models.MinLon)
		assert.LessOrEqual(t, box.West, models.MaxLon)
		assert.GreaterOrEqual(t, box.East, models.MinLon)
		assert.LessOrEqual(t, box.East, models.MaxLon)
	}
}

func TestCornersLieOnRadius(t *testing.T) {
	center := s2.LatLngFromDegrees(sfLat, sfLon)

	for _, radius := range []float64{0.1, 1, 10, 100, 1000} {
		box, err := ComputeBoundingBox(sfLat, sfLon, radius)
		require.NoError(t, err)

		sw := s2.LatLngFromDegrees(box.South, box.West)
		ne := s2.LatLngFromDegrees(box.North, box.East)

		assert.InDelta(t, radius, float64(center.Distance(sw))*EarthRadiusKm, 1e-4, "south-west, radius %v", radius)
		assert.InDelta(t, radius, float64(center.Distance(ne))*EarthRadiusKm, 1e-4, "north-east, radius %v", radius)
	}
}

func TestWrapLon(t *testing.T) {
	assert.Equal(t, 179.0, wrapLon(-181))
	assert.Equal(t, -179.0, wrapLon(181))
	assert.Equal(t, 180.0, wrapLon(180))
	assert.Equal(t, -180.0, wrapLon(-180))
	// Only one correction is applied.
	assert.Equal(t, -361.0, wrapLon(-721))
}

func TestRound7(t *testing.T) {
	assert.Equal(t, 1.0, round7(0.99999995))
	assert.Equal(t, 0.1234568, round7(0.12345675))
	assert.Equal(t, -0.1234567, round7(-0.12345675))
	assert.Equal(t, 0.0, round7(0))
}

func BenchmarkComputeBoundingBox(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ComputeBoundingBox(sfLat, sfLon, 50.0)
	}
}

func assertBox(t *testing.T, want, got models.BoundingBox, delta float64) {
	t.Helper()
	assert.InDelta(t, want.South, got.South, delta, "south")
	assert.InDelta(t, want.West, got.West, delta, "west")
	assert.InDelta(t, want.North, got.North, delta, "north")
	assert.InDelta(t, want.East, got.East, delta, "east")
}

func assertMultipleOfStep(t *testing.T, v float64) {
	t.Helper()
	scaled := v * precision
	assert.InDelta(t, math.Round(scaled), scaled, 1e-5, "%v is not a multiple of 1e-7", v)
}

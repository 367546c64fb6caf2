package geo

import (
	"testing"

	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHaversineDistance(t *testing.T) {
	t.Parallel()

	// Paris city center to a point one street over, roughly 14m.
	d := CalculateHaversineDistance(48.8566, 2.3522, 48.8567, 2.3523)
	assert.InDelta(t, 14, d, 2)

	// Same point, zero distance.
	assert.Equal(t, 0.0, CalculateHaversineDistance(48.8566, 2.3522, 48.8566, 2.3522))

	// Paris to London, roughly 344km.
	d = CalculateHaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344000, d, 2000)
}

func TestIsWithinFence_NoZones(t *testing.T) {
	t.Parallel()

	ok, err := IsWithinFence(Point{Latitude: 48.8566, Longitude: 2.3522}, nil, 100)

	require.NoError(t, err)
	assert.True(t, ok, "no configured zones means no restriction")
}

func TestIsWithinFence_InsideAndOutside(t *testing.T) {
	t.Parallel()
	zones := []Point{{Latitude: 48.8566, Longitude: 2.3522}}

	ok, err := IsWithinFence(Point{Latitude: 48.8567, Longitude: 2.3523}, zones, 100)
	require.NoError(t, err)
	assert.True(t, ok, "point ~14m from the zone center must pass a 100m fence")

	ok, err = IsWithinFence(Point{Latitude: 48.9566, Longitude: 2.4522}, zones, 100)
	require.NoError(t, err)
	assert.False(t, ok, "point ~13km away must fail a 100m fence")
}

func TestIsWithinFence_AnyZoneSuffices(t *testing.T) {
	t.Parallel()
	zones := []Point{
		{Latitude: 51.5074, Longitude: -0.1278}, // far
		{Latitude: 48.8566, Longitude: 2.3522},  // near
	}

	ok, err := IsWithinFence(Point{Latitude: 48.8567, Longitude: 2.3523}, zones, 100)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsWithinFence_InclusiveBoundary(t *testing.T) {
	t.Parallel()
	center := Point{Latitude: 48.8566, Longitude: 2.3522}
	probe := Point{Latitude: 48.8566, Longitude: 2.3532}
	distance := CalculateHaversineDistance(center.Latitude, center.Longitude, probe.Latitude, probe.Longitude)

	ok, err := IsWithinFence(probe, []Point{center}, distance)
	require.NoError(t, err)
	assert.True(t, ok, "a point at exactly the radius is inside")

	ok, err = IsWithinFence(probe, []Point{center}, distance-0.001)
	require.NoError(t, err)
	assert.False(t, ok, "a point just past the radius is outside")
}

func TestIsWithinFence_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	_, err := IsWithinFence(Point{Latitude: 91, Longitude: 0}, nil, 100)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "point.latitude")

	_, err = IsWithinFence(Point{Latitude: 0, Longitude: -181}, nil, 100)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "point.longitude")

	_, err = IsWithinFence(Point{}, []Point{{Latitude: 0, Longitude: 200}}, 100)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "zone.longitude")
}

func TestIsWithinFence_InvalidRadius(t *testing.T) {
	t.Parallel()
	zones := []Point{{Latitude: 48.8566, Longitude: 2.3522}}
	var errs validator.ValidationErrors

	// An oversized radius must not silently widen the fence.
	_, err := IsWithinFence(Point{Latitude: 48.9566, Longitude: 2.4522}, zones, 99999)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "radius_meters")

	// A negative radius must not silently reject the zone center itself.
	_, err = IsWithinFence(zones[0], zones, -5)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "radius_meters")

	_, err = IsWithinFence(zones[0], zones, 0)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "radius_meters")

	// The permitted extremes still work.
	ok, err := IsWithinFence(zones[0], zones, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsWithinFence(zones[0], zones, 1000)
	require.NoError(t, err)
	assert.True(t, ok)

	// Without zones no fence is configured, so the radius is not checked.
	ok, err = IsWithinFence(zones[0], nil, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidLatitude(t *testing.T) {
	valid := []float64{0, 48.8566, -90, 90, 89.9999}
	invalid := []float64{90.0001, -90.0001, 180, -180}
	for _, lat := range valid {
		if !IsValidLatitude(lat) {
			t.Errorf("IsValidLatitude(%v) = false, want true", lat)
		}
	}
	for _, lat := range invalid {
		if IsValidLatitude(lat) {
			t.Errorf("IsValidLatitude(%v) = true, want false", lat)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	valid := []float64{0, 2.3522, -180, 180, 179.9999}
	invalid := []float64{180.0001, -180.0001, 360}
	for _, lon := range valid {
		if !IsValidLongitude(lon) {
			t.Errorf("IsValidLongitude(%v) = false, want true", lon)
		}
	}
	for _, lon := range invalid {
		if IsValidLongitude(lon) {
			t.Errorf("IsValidLongitude(%v) = true, want false", lon)
		}
	}
}

func TestIsValidRadiusMeters(t *testing.T) {
	valid := []float64{1, 100, 1000}
	invalid := []float64{0, 0.5, 1000.1, -10}
	for _, r := range valid {
		if !IsValidRadiusMeters(r) {
			t.Errorf("IsValidRadiusMeters(%v) = false, want true", r)
		}
	}
	for _, r := range invalid {
		if IsValidRadiusMeters(r) {
			t.Errorf("IsValidRadiusMeters(%v) = true, want false", r)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Errorf("IsValidDate(%q) = false, want true", "2024-01-15")
	}
	for _, s := range []string{"2024-13-01", "15-01-2024", "2024-01-15T10:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

package units

import "testing"

func TestDistanceUnits(t *testing.T) {
	if DistanceUnits[0] != Miles {
		t.Errorf("DistanceUnits[0]: got %q, want %q", DistanceUnits[0], Miles)
	}
	if DistanceUnits[1] != Kilometers {
		t.Errorf("DistanceUnits[1]: got %q, want %q", DistanceUnits[1], Kilometers)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	km := MilesToKm(100)
	if km < 160.9 || km > 161.0 {
		t.Errorf("MilesToKm(100): got %v, want ~160.934", km)
	}
	back := KmToMiles(km)
	if back < 99.999 || back > 100.001 {
		t.Errorf("round trip: got %v, want 100", back)
	}
}

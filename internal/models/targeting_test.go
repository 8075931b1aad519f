package models

import "testing"

func TestClampRadius(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{1, 2},
		{2, 2},
		{5, 5},
		{17, 17},
		{20, 17},
		{0, 2},
		{-3, 2},
	}
	for _, tt := range tests {
		if got := ClampRadius(tt.in); got != tt.expected {
			t.Errorf("ClampRadius(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestParseRadius(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{"5", 5},
		{"2.5", 2.5},
		{"100", 17},
		{"1", 2},
		{"abc", 5},
		{"", 5},
		{"NaN", 5},
	}
	for _, tt := range tests {
		if got := ParseRadius(tt.in); got != tt.expected {
			t.Errorf("ParseRadius(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestSetAgeKeepsPriorOnGarbage(t *testing.T) {
	spec := NewTargetingSpec()

	spec.SetAgeMin("25")
	if spec.AgeMin != 25 {
		t.Errorf("AgeMin = %d, want 25", spec.AgeMin)
	}

	spec.SetAgeMin("twenty")
	if spec.AgeMin != 25 {
		t.Errorf("AgeMin after garbage = %d, want 25", spec.AgeMin)
	}

	spec.SetAgeMax("-5")
	if spec.AgeMax != DefaultAgeMax {
		t.Errorf("AgeMax after negative = %d, want %d", spec.AgeMax, DefaultAgeMax)
	}

	spec.SetAgeMax("60")
	if spec.AgeMax != 60 {
		t.Errorf("AgeMax = %d, want 60", spec.AgeMax)
	}
}

func TestAddLocationRejectsNearDuplicates(t *testing.T) {
	spec := NewTargetingSpec()

	if err := spec.AddLocation(CustomLocation{Latitude: 12.971599, Longitude: 77.594566, RadiusKm: 5}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	// Both axes within 0.0001 degrees: same place.
	if err := spec.AddLocation(CustomLocation{Latitude: 12.971598, Longitude: 77.594565, RadiusKm: 5}); err == nil {
		t.Error("near-duplicate location should be rejected")
	}

	// Far enough away.
	if err := spec.AddLocation(CustomLocation{Latitude: 13.0, Longitude: 77.0, RadiusKm: 5}); err != nil {
		t.Errorf("distinct location rejected: %v", err)
	}

	if len(spec.CustomLocations) != 2 {
		t.Errorf("got %d locations, want 2", len(spec.CustomLocations))
	}
}

func TestAddLocationClampsRadius(t *testing.T) {
	spec := NewTargetingSpec()
	if err := spec.AddLocation(CustomLocation{Latitude: 1, Longitude: 1, RadiusKm: 50}); err != nil {
		t.Fatalf("AddLocation: %v", err)
	}
	if got := spec.CustomLocations[0].RadiusKm; got != MaxRadiusKm {
		t.Errorf("radius = %v, want %v", got, MaxRadiusKm)
	}
}

func TestTogglePlatformKeepsSetNonEmpty(t *testing.T) {
	spec := NewTargetingSpec()

	spec.TogglePlatform(PlatformInstagram)
	if len(spec.PublisherPlatforms) != 1 || spec.PublisherPlatforms[0] != PlatformFacebook {
		t.Fatalf("platforms = %v, want [facebook]", spec.PublisherPlatforms)
	}

	// Removing the last one is a no-op.
	spec.TogglePlatform(PlatformFacebook)
	if len(spec.PublisherPlatforms) != 1 || spec.PublisherPlatforms[0] != PlatformFacebook {
		t.Errorf("platforms = %v, want [facebook] kept", spec.PublisherPlatforms)
	}

	spec.TogglePlatform(PlatformMessenger)
	if len(spec.PublisherPlatforms) != 2 {
		t.Errorf("platforms = %v, want two entries", spec.PublisherPlatforms)
	}
}

func TestToggleInstagramPositionPairing(t *testing.T) {
	spec := NewTargetingSpec()

	// Selecting explore pulls in stream.
	spec.ToggleInstagramPosition(InstagramPositionExplore)
	if !spec.hasInstagramPosition(InstagramPositionExplore) || !spec.hasInstagramPosition(InstagramPositionStream) {
		t.Fatalf("positions = %v, want explore and stream", spec.InstagramPositions)
	}

	// Deselecting stream drops explore too.
	spec.ToggleInstagramPosition(InstagramPositionStream)
	if len(spec.InstagramPositions) != 0 {
		t.Errorf("positions = %v, want empty", spec.InstagramPositions)
	}

	// Story stands alone.
	spec.ToggleInstagramPosition(InstagramPositionStory)
	if len(spec.InstagramPositions) != 1 || spec.InstagramPositions[0] != InstagramPositionStory {
		t.Errorf("positions = %v, want [story]", spec.InstagramPositions)
	}
}

func TestTargetingValidate(t *testing.T) {
	spec := NewTargetingSpec()
	if err := spec.Validate(); err == nil {
		t.Error("spec with no locations should fail validation")
	}

	_ = spec.AddLocation(CustomLocation{Latitude: 1, Longitude: 1, RadiusKm: 5})
	if err := spec.Validate(); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}

	spec.AgeMin = 12
	if err := spec.Validate(); err == nil {
		t.Error("age_min below 13 should fail validation")
	}
	spec.AgeMin = 30
	spec.AgeMax = 25
	if err := spec.Validate(); err == nil {
		t.Error("age_max below age_min should fail validation")
	}
}

func TestTargetingPayload(t *testing.T) {
	spec := NewTargetingSpec()
	spec.Genders = []Gender{GenderFemale}
	_ = spec.AddLocation(CustomLocation{Latitude: 12.97, Longitude: 77.59, RadiusKm: 5})

	payload := spec.Payload()

	if payload["age_min"] != DefaultAgeMin || payload["age_max"] != DefaultAgeMax {
		t.Errorf("ages = %v/%v", payload["age_min"], payload["age_max"])
	}
	genders, ok := payload["genders"].([]int)
	if !ok || len(genders) != 1 || genders[0] != 2 {
		t.Errorf("genders = %v, want [2]", payload["genders"])
	}
	geo, ok := payload["geo_locations"].(map[string]any)
	if !ok {
		t.Fatal("geo_locations missing")
	}
	locs, ok := geo["custom_locations"].([]map[string]any)
	if !ok || len(locs) != 1 {
		t.Fatalf("custom_locations = %v", geo["custom_locations"])
	}
	if locs[0]["distance_unit"] != "kilometer" {
		t.Errorf("distance_unit = %v", locs[0]["distance_unit"])
	}
}

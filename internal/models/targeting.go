package models

import (
	"fmt"
	"math"
	"strconv"
)

// Gender values recognized by the targeting payload.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// PublisherPlatform values.
type PublisherPlatform string

const (
	PlatformFacebook        PublisherPlatform = "facebook"
	PlatformInstagram       PublisherPlatform = "instagram"
	PlatformMessenger       PublisherPlatform = "messenger"
	PlatformAudienceNetwork PublisherPlatform = "audience_network"
)

var AllPublisherPlatforms = []PublisherPlatform{
	PlatformFacebook, PlatformInstagram, PlatformMessenger, PlatformAudienceNetwork,
}

// Instagram positions with a required co-dependency between stream and explore.
const (
	InstagramPositionStream  = "stream"
	InstagramPositionStory   = "story"
	InstagramPositionExplore = "explore"
	InstagramPositionReels   = "reels"
)

// Targeting defaults and bounds.
const (
	DefaultAgeMin = 18
	DefaultAgeMax = 45

	MinRadiusKm     = 2.0
	MaxRadiusKm     = 17.0
	DefaultRadiusKm = 5.0

	// Two locations closer than this in both axes are the same place.
	locationEpsilonDeg = 0.0001
)

// CustomLocation is one geo-targeted circle.
type CustomLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
	Label     string  `json:"label,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// TargetingSpec is the audience definition attached to an ad set. Empty
// position/device subsets mean "platform default (all)".
type TargetingSpec struct {
	AgeMin             int                 `json:"age_min"`
	AgeMax             int                 `json:"age_max"`
	Genders            []Gender            `json:"genders,omitempty"`
	CustomLocations    []CustomLocation    `json:"custom_locations"`
	PublisherPlatforms []PublisherPlatform `json:"publisher_platforms"`
	FacebookPositions  []string            `json:"facebook_positions,omitempty"`
	InstagramPositions []string            `json:"instagram_positions,omitempty"`
	DevicePlatforms    []string            `json:"device_platforms,omitempty"`
}

// NewTargetingSpec returns a spec with the defaults every session starts from.
func NewTargetingSpec() *TargetingSpec {
	return &TargetingSpec{
		AgeMin:             DefaultAgeMin,
		AgeMax:             DefaultAgeMax,
		PublisherPlatforms: []PublisherPlatform{PlatformFacebook, PlatformInstagram},
	}
}

// ClampRadius forces a radius into the supported [2,17] km window.
func ClampRadius(km float64) float64 {
	if km < MinRadiusKm {
		return MinRadiusKm
	}
	if km > MaxRadiusKm {
		return MaxRadiusKm
	}
	return km
}

// ParseRadius parses user radius input; anything non-numeric becomes the
// default, numeric input is clamped.
func ParseRadius(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return DefaultRadiusKm
	}
	return ClampRadius(v)
}

// SetAgeMin parses age input, keeping the previous value on garbage. Never
// produces zero.
func (t *TargetingSpec) SetAgeMin(s string) {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		t.AgeMin = v
	}
}

// SetAgeMax parses age input, keeping the previous value on garbage.
func (t *TargetingSpec) SetAgeMax(s string) {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		t.AgeMax = v
	}
}

// AddLocation clamps the radius and rejects near-duplicates: a location
// whose latitude and longitude both differ from an existing one by less
// than 0.0001 degrees (~11 m at the equator) is a repeat add.
func (t *TargetingSpec) AddLocation(loc CustomLocation) error {
	for _, existing := range t.CustomLocations {
		if math.Abs(existing.Latitude-loc.Latitude) < locationEpsilonDeg &&
			math.Abs(existing.Longitude-loc.Longitude) < locationEpsilonDeg {
			return fmt.Errorf("location %q is already targeted", loc.Label)
		}
	}
	loc.RadiusKm = ClampRadius(loc.RadiusKm)
	t.CustomLocations = append(t.CustomLocations, loc)
	return nil
}

// RemoveLocation drops the location at index i if it exists.
func (t *TargetingSpec) RemoveLocation(i int) {
	if i < 0 || i >= len(t.CustomLocations) {
		return
	}
	t.CustomLocations = append(t.CustomLocations[:i], t.CustomLocations[i+1:]...)
}

// TogglePlatform flips a publisher platform. Removing the last selected
// platform is a no-op: the set must stay non-empty.
func (t *TargetingSpec) TogglePlatform(p PublisherPlatform) {
	for i, existing := range t.PublisherPlatforms {
		if existing == p {
			if len(t.PublisherPlatforms) == 1 {
				return
			}
			t.PublisherPlatforms = append(t.PublisherPlatforms[:i], t.PublisherPlatforms[i+1:]...)
			return
		}
	}
	t.PublisherPlatforms = append(t.PublisherPlatforms, p)
}

// ToggleInstagramPosition flips an Instagram position. Selecting explore
// also selects stream (the platform requires the pair); deselecting stream
// while explore is selected drops explore too.
func (t *TargetingSpec) ToggleInstagramPosition(pos string) {
	if t.hasInstagramPosition(pos) {
		t.removeInstagramPosition(pos)
		if pos == InstagramPositionStream {
			t.removeInstagramPosition(InstagramPositionExplore)
		}
		return
	}
	t.InstagramPositions = append(t.InstagramPositions, pos)
	if pos == InstagramPositionExplore && !t.hasInstagramPosition(InstagramPositionStream) {
		t.InstagramPositions = append(t.InstagramPositions, InstagramPositionStream)
	}
}

func (t *TargetingSpec) hasInstagramPosition(pos string) bool {
	for _, p := range t.InstagramPositions {
		if p == pos {
			return true
		}
	}
	return false
}

func (t *TargetingSpec) removeInstagramPosition(pos string) {
	for i, p := range t.InstagramPositions {
		if p == pos {
			t.InstagramPositions = append(t.InstagramPositions[:i], t.InstagramPositions[i+1:]...)
			return
		}
	}
}

// Validate checks the spec is submittable with an ad set.
func (t *TargetingSpec) Validate() error {
	if t.AgeMin < 13 {
		return fmt.Errorf("age_min must be at least 13, got %d", t.AgeMin)
	}
	if t.AgeMax < t.AgeMin {
		return fmt.Errorf("age_max %d is below age_min %d", t.AgeMax, t.AgeMin)
	}
	if len(t.CustomLocations) == 0 {
		return fmt.Errorf("at least one custom location is required")
	}
	if len(t.PublisherPlatforms) == 0 {
		return fmt.Errorf("at least one publisher platform is required")
	}
	for _, loc := range t.CustomLocations {
		if loc.RadiusKm < MinRadiusKm || loc.RadiusKm > MaxRadiusKm {
			return fmt.Errorf("location %q radius %.1f km is outside [%.0f, %.0f]", loc.Label, loc.RadiusKm, MinRadiusKm, MaxRadiusKm)
		}
	}
	return nil
}

// Payload renders the spec in the wire shape the ads platform expects.
func (t *TargetingSpec) Payload() map[string]any {
	locations := make([]map[string]any, 0, len(t.CustomLocations))
	for _, loc := range t.CustomLocations {
		locations = append(locations, map[string]any{
			"latitude":      loc.Latitude,
			"longitude":     loc.Longitude,
			"radius":        loc.RadiusKm,
			"distance_unit": "kilometer",
		})
	}

	payload := map[string]any{
		"age_min": t.AgeMin,
		"age_max": t.AgeMax,
		"geo_locations": map[string]any{
			"custom_locations": locations,
		},
		"publisher_platforms": t.PublisherPlatforms,
	}

	if len(t.Genders) > 0 {
		genders := make([]int, 0, len(t.Genders))
		for _, g := range t.Genders {
			switch g {
			case GenderMale:
				genders = append(genders, 1)
			case GenderFemale:
				genders = append(genders, 2)
			}
		}
		payload["genders"] = genders
	}
	if len(t.FacebookPositions) > 0 {
		payload["facebook_positions"] = t.FacebookPositions
	}
	if len(t.InstagramPositions) > 0 {
		payload["instagram_positions"] = t.InstagramPositions
	}
	if len(t.DevicePlatforms) > 0 {
		payload["device_platforms"] = t.DevicePlatforms
	}
	return payload
}

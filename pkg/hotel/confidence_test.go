package hotel

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreEmptyRecord(t *testing.T) {
	r := NewRecord("https://example-hotel.com")
	if got := DefaultScorer().Score(&r); got != 0 {
		t.Errorf("empty record score = %v, want 0", got)
	}
}

func TestScoreUnknownNameContributesNothing(t *testing.T) {
	r := NewRecord("https://example-hotel.com")
	r.Phone = "555-123-4567"
	base := DefaultScorer().Score(&r)

	r.HotelName = "Grand Plaza Hotel"
	named := DefaultScorer().Score(&r)

	if !almostEqual(named-base, DefaultWeights().HotelName) {
		t.Errorf("name contribution = %v, want %v", named-base, DefaultWeights().HotelName)
	}
}

func TestScoreListSaturation(t *testing.T) {
	w := DefaultWeights()
	r := NewRecord("https://example-hotel.com")

	// Below the threshold the weight scales linearly.
	r.Restaurants = []Restaurant{{Name: "A"}}
	if got := DefaultScorer().Score(&r); !almostEqual(got, w.Restaurants/3) {
		t.Errorf("one restaurant score = %v, want %v", got, w.Restaurants/3)
	}

	// At and past the threshold the full weight applies.
	r.Restaurants = []Restaurant{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	if got := DefaultScorer().Score(&r); !almostEqual(got, w.Restaurants) {
		t.Errorf("saturated restaurant score = %v, want %v", got, w.Restaurants)
	}
}

func TestScoreAmenityCount(t *testing.T) {
	r := NewRecord("https://example-hotel.com")
	r.FitnessCenter = &Facility{Available: true}
	r.Pool = &PoolInfo{Available: true}
	r.SpaServices = []string{"massage"}
	r.BusinessCenter = &Facility{Available: true}

	// Four of five amenity categories present.
	want := DefaultWeights().AmenityCount * 4 / 5
	if got := DefaultScorer().Score(&r); !almostEqual(got, want) {
		t.Errorf("amenity score = %v, want %v", got, want)
	}
}

func TestScoreParkingFalseStillCounts(t *testing.T) {
	r := NewRecord("https://example-hotel.com")
	no := false
	r.ParkingAvailable = &no

	if got := DefaultScorer().Score(&r); !almostEqual(got, DefaultWeights().ParkingAvailable) {
		t.Errorf("parking=false score = %v, want %v", got, DefaultWeights().ParkingAvailable)
	}
}

func TestScoreDeterministicAndClamped(t *testing.T) {
	r := NewRecord("https://example-hotel.com")
	r.HotelName = "Grand Plaza Hotel"
	r.Phone = "555-123-4567"
	r.Address = "1 Main St"
	r.CheckinTime = "3:00 pm"
	r.CheckoutTime = "11:00 am"
	yes := true
	r.ParkingAvailable = &yes
	r.WifiInfo = "Free WiFi available"
	r.Restaurants = []Restaurant{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	r.NearbyAttractions = []Place{{Name: "P1"}, {Name: "P2"}, {Name: "P3"}, {Name: "P4"}, {Name: "P5"}}
	r.RoomTypes = []RoomType{{Type: "Suite"}, {Type: "Deluxe"}, {Type: "Standard"}}
	r.FitnessCenter = &Facility{Available: true}
	r.Pool = &PoolInfo{Available: true}
	r.SpaServices = []string{"massage"}
	r.BusinessCenter = &Facility{Available: true}
	r.PetPolicy = &PetPolicy{Allowed: true}
	r.CancellationPolicy = "24h"
	r.DepositPolicy = "One night"
	r.AgeRestrictions = "21+"
	r.ConciergeServices = []string{"a", "b", "c", "d", "e"}

	first := DefaultScorer().Score(&r)
	second := DefaultScorer().Score(&r)
	if first != second {
		t.Errorf("score not deterministic: %v vs %v", first, second)
	}
	if !almostEqual(first, 1.0) {
		t.Errorf("fully populated record score = %v, want 1.0", first)
	}
	if first > 1.0 {
		t.Errorf("score exceeds 1.0: %v", first)
	}
}

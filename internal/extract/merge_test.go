package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hotelintel/hotelintel/pkg/hotel"
)

func usableOutcome(group hotel.FieldGroup, fields map[string]any) Outcome {
	return Outcome{
		Group:  group,
		Status: StatusUsable,
		Result: Result{Group: group, Strategy: "test", Fields: fields},
	}
}

func TestMergeJSONShapes(t *testing.T) {
	// Exactly what json.Unmarshal produces for a remote response.
	rec := hotel.NewRecord("https://x.example")
	mergeOutcome(&rec, usableOutcome(hotel.GroupAmenities, map[string]any{
		"wifi_info": "Free WiFi",
		"fitness_center": map[string]any{
			"available": true,
			"hours":     "6am-10pm",
			"details":   "full gym",
		},
		"pool":         map[string]any{"available": true, "type": "indoor"},
		"spa_services": []any{"massage", "sauna"},
		"pet_policy":   map[string]any{"allowed": false, "details": "No pets"},
	}))

	if rec.WifiInfo != "Free WiFi" {
		t.Errorf("WifiInfo = %q", rec.WifiInfo)
	}
	if rec.FitnessCenter == nil || !rec.FitnessCenter.Available || rec.FitnessCenter.Hours != "6am-10pm" {
		t.Errorf("FitnessCenter = %+v", rec.FitnessCenter)
	}
	if rec.Pool == nil || rec.Pool.Type != "indoor" {
		t.Errorf("Pool = %+v", rec.Pool)
	}
	if diff := cmp.Diff([]string{"massage", "sauna"}, rec.SpaServices); diff != "" {
		t.Errorf("SpaServices (-want +got):\n%s", diff)
	}
	if rec.PetPolicy == nil || rec.PetPolicy.Allowed {
		t.Errorf("PetPolicy = %+v", rec.PetPolicy)
	}
}

func TestMergeNativeShapes(t *testing.T) {
	// What the pattern strategy produces directly.
	rec := hotel.NewRecord("https://x.example")
	mergeOutcome(&rec, usableOutcome(hotel.GroupDining, map[string]any{
		"restaurants": []hotel.Restaurant{{Name: "The Grill", Cuisine: "Steakhouse"}},
		"room_service": hotel.Facility{Available: true, Hours: "24 hours"},
		"breakfast_info": hotel.Breakfast{Available: true, Type: "Buffet", Cost: "Additional charge"},
	}))

	if len(rec.Restaurants) != 1 || rec.Restaurants[0].Name != "The Grill" {
		t.Errorf("Restaurants = %+v", rec.Restaurants)
	}
	if rec.RoomService == nil || rec.RoomService.Hours != "24 hours" {
		t.Errorf("RoomService = %+v", rec.RoomService)
	}
	if rec.BreakfastInfo == nil || rec.BreakfastInfo.Type != "Buffet" {
		t.Errorf("BreakfastInfo = %+v", rec.BreakfastInfo)
	}
}

func TestMergeListOfObjects(t *testing.T) {
	rec := hotel.NewRecord("https://x.example")
	mergeOutcome(&rec, usableOutcome(hotel.GroupNearby, map[string]any{
		"nearby_attractions": []any{
			map[string]any{"name": "Art Museum", "distance": "0.5 miles"},
			map[string]any{"name": "City Park", "type": "Park"},
		},
		"nearby_restaurants": []any{"Blue Door Bistro"},
	}))

	want := []hotel.Place{
		{Name: "Art Museum", Type: "Attraction", Distance: "0.5 miles"},
		{Name: "City Park", Type: "Park"},
	}
	if diff := cmp.Diff(want, rec.NearbyAttractions); diff != "" {
		t.Errorf("NearbyAttractions (-want +got):\n%s", diff)
	}
	if len(rec.NearbyRestaurants) != 1 || rec.NearbyRestaurants[0].Type != "Restaurant" {
		t.Errorf("NearbyRestaurants = %+v", rec.NearbyRestaurants)
	}
}

func TestMergeScalarCoercion(t *testing.T) {
	rec := hotel.NewRecord("https://x.example")
	mergeOutcome(&rec, usableOutcome(hotel.GroupContact, map[string]any{
		"phone":    "555-123-4567",
		"zip_code": float64(62704), // models return bare numbers for zips
	}))
	mergeOutcome(&rec, usableOutcome(hotel.GroupParking, map[string]any{
		"parking_available": "yes",
		"parking_cost":      "Free",
	}))

	if rec.ZipCode != "62704" {
		t.Errorf("ZipCode = %q", rec.ZipCode)
	}
	if rec.ParkingAvailable == nil || !*rec.ParkingAvailable {
		t.Error("ParkingAvailable should coerce from \"yes\"")
	}
}

func TestMergeIgnoresExhaustedOutcomes(t *testing.T) {
	rec := hotel.NewRecord("https://x.example")
	before := rec

	mergeOutcome(&rec, Outcome{Group: hotel.GroupContact, Status: StatusExhausted})

	if diff := cmp.Diff(before, rec); diff != "" {
		t.Errorf("exhausted outcome changed record (-want +got):\n%s", diff)
	}
}

func TestMergeEmptyStringsDoNotOverwrite(t *testing.T) {
	rec := hotel.NewRecord("https://x.example")
	rec.Phone = "555-123-4567"

	mergeOutcome(&rec, usableOutcome(hotel.GroupContact, map[string]any{
		"phone": "",
		"email": "stay@x.example",
	}))

	if rec.Phone != "555-123-4567" {
		t.Errorf("Phone = %q, empty value must not overwrite", rec.Phone)
	}
	if rec.Email != "stay@x.example" {
		t.Errorf("Email = %q", rec.Email)
	}
}

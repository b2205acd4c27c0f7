package hotel

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRecordDefaults(t *testing.T) {
	r := NewRecord("https://example-hotel.com")

	if r.HotelName != UnknownHotelName {
		t.Errorf("HotelName = %q, want %q", r.HotelName, UnknownHotelName)
	}
	if r.WebsiteURL != "https://example-hotel.com" {
		t.Errorf("WebsiteURL = %q", r.WebsiteURL)
	}
	if r.SpaServices == nil || r.Restaurants == nil || r.NearbyAttractions == nil {
		t.Error("list fields must be initialized, not nil")
	}
}

func TestRecordListFieldsMarshalAsEmptyArrays(t *testing.T) {
	r := NewRecord("https://example-hotel.com")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)

	for _, field := range []string{
		"spa_services", "accessibility_features", "restaurants",
		"bars_lounges", "room_types", "room_amenities",
		"nearby_attractions", "nearby_restaurants", "nearby_shopping",
		"concierge_services",
	} {
		if !strings.Contains(out, `"`+field+`":[]`) {
			t.Errorf("field %s did not marshal as []: %s", field, out)
		}
	}
	if strings.Contains(out, "null") {
		t.Errorf("record must not contain null list fields: %s", out)
	}
}

func TestEnsureDefaultsPreservesData(t *testing.T) {
	r := NewRecord("https://example-hotel.com")
	r.SpaServices = []string{"massage"}
	r.Restaurants = []Restaurant{{Name: "The Grill"}}
	r.RoomTypes = nil

	before := r
	before.RoomTypes = []RoomType{}

	r.EnsureDefaults()

	if diff := cmp.Diff(before, r); diff != "" {
		t.Errorf("EnsureDefaults changed populated fields (-want +got):\n%s", diff)
	}
}

func TestGroupOwnership(t *testing.T) {
	if !GroupContact.Owns("phone") {
		t.Error("contact should own phone")
	}
	if GroupContact.Owns("checkin_time") {
		t.Error("contact should not own checkin_time")
	}
	if FieldGroup("bogus").Valid() {
		t.Error("unknown group must not be valid")
	}

	// Every field belongs to exactly one group.
	seen := map[string]FieldGroup{}
	for _, g := range AllGroups() {
		for _, f := range g.Fields() {
			if prev, dup := seen[f]; dup {
				t.Errorf("field %s owned by both %s and %s", f, prev, g)
			}
			seen[f] = g
		}
	}
}

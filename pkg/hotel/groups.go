package hotel

// FieldGroup identifies one semantic cluster of output fields. Each group
// owns a fixed field set; extraction strategies produce results for exactly
// one group at a time and groups never write each other's fields.
type FieldGroup string

const (
	GroupContact   FieldGroup = "contact"
	GroupPolicies  FieldGroup = "policies"
	GroupParking   FieldGroup = "parking"
	GroupAmenities FieldGroup = "amenities"
	GroupDining    FieldGroup = "dining"
	GroupRooms     FieldGroup = "rooms"
	GroupNearby    FieldGroup = "nearby"
	GroupServices  FieldGroup = "services"
)

// AllGroups returns every field group in its canonical order.
func AllGroups() []FieldGroup {
	return []FieldGroup{
		GroupContact,
		GroupPolicies,
		GroupParking,
		GroupAmenities,
		GroupDining,
		GroupRooms,
		GroupNearby,
		GroupServices,
	}
}

var groupFields = map[FieldGroup][]string{
	GroupContact: {
		"phone", "email", "address", "city", "state", "zip_code",
	},
	GroupPolicies: {
		"checkin_time", "checkout_time", "early_checkin_policy",
		"late_checkout_policy", "cancellation_policy", "deposit_policy",
		"age_restrictions",
	},
	GroupParking: {
		"parking_available", "parking_cost", "parking_type", "shuttle_service",
	},
	GroupAmenities: {
		"wifi_info", "fitness_center", "pool", "spa_services",
		"business_center", "pet_policy", "smoking_policy",
		"accessibility_features",
	},
	GroupDining: {
		"restaurants", "room_service", "breakfast_info", "bars_lounges",
	},
	GroupRooms: {
		"room_types", "room_amenities",
	},
	GroupNearby: {
		"nearby_attractions", "nearby_restaurants", "nearby_shopping",
	},
	GroupServices: {
		"concierge_services",
	},
}

// Fields returns the fixed field-name set owned by the group. The returned
// slice must not be modified.
func (g FieldGroup) Fields() []string {
	return groupFields[g]
}

// Owns reports whether the named field belongs to this group.
func (g FieldGroup) Owns(field string) bool {
	for _, f := range groupFields[g] {
		if f == field {
			return true
		}
	}
	return false
}

// Valid reports whether g is a known field group.
func (g FieldGroup) Valid() bool {
	_, ok := groupFields[g]
	return ok
}

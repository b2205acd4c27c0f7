package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/hotelintel/hotelintel/pkg/hotel"
)

const systemPrompt = "You are a hotel information extraction expert. Always return valid JSON."

// promptContentLimit bounds the content embedded in a single group prompt.
// The sample is already budget-limited; this is a second guard for callers
// that configure a large sample budget.
const promptContentLimit = 3000

var groupPromptIntros = map[hotel.FieldGroup]string{
	hotel.GroupContact: `Extract hotel contact information from this webpage content. Return a JSON object with these fields:
- phone: Phone number (format: clean, no extra text)
- email: Email address if found
- address: Full street address
- city: City name
- state: State/province
- zip_code: ZIP or postal code`,

	hotel.GroupPolicies: `Extract hotel policies from this content. Return JSON with these fields:
- checkin_time: Check-in time (e.g., "3:00 PM")
- checkout_time: Check-out time (e.g., "11:00 AM")
- cancellation_policy: Brief summary of cancellation rules
- deposit_policy: Information about deposits or holds
- age_restrictions: Any age-related policies
- early_checkin_policy: Early check-in information
- late_checkout_policy: Late check-out information`,

	hotel.GroupParking: `Extract parking and transportation information from this content. Return JSON with these fields:
- parking_available: true or false
- parking_cost: Parking cost (e.g., "Free", "$25")
- parking_type: "Valet", "Self-park", or similar
- shuttle_service: Shuttle service details if any`,

	hotel.GroupAmenities: `Extract hotel amenities from this content. Return JSON with these fields:
- wifi_info: WiFi availability and cost
- fitness_center: {"available": true, "hours": "...", "details": "..."}
- pool: {"available": true, "type": "indoor/outdoor/heated", "details": "..."}
- spa_services: Array of spa service names
- business_center: {"available": true, "hours": "...", "details": "..."}
- pet_policy: {"allowed": true, "details": "..."}
- smoking_policy: Smoking policy summary
- accessibility_features: Array of accessibility features`,

	hotel.GroupDining: `Extract dining information from this content. Return JSON with these fields:
- restaurants: Array of {"name": "...", "cuisine": "...", "hours": "...", "details": "..."}
- bars_lounges: Array of bar/lounge objects in the same shape
- room_service: {"available": true, "hours": "...", "details": "..."}
- breakfast_info: {"available": true, "type": "...", "cost": "...", "details": "..."}`,

	hotel.GroupRooms: `Extract room information from this content. Return JSON with these fields:
- room_types: Array of {"type": "...", "description": "..."}
- room_amenities: Array of in-room amenity names`,

	hotel.GroupNearby: `Extract nearby points of interest from this content. Return JSON with these fields:
- nearby_attractions: Array of {"name": "...", "type": "Attraction", "distance": "..."}
- nearby_restaurants: Array of {"name": "...", "type": "Restaurant", "distance": "..."}
- nearby_shopping: Array of {"name": "...", "type": "Shopping", "distance": "..."}`,

	hotel.GroupServices: `Extract guest services from this content. Return JSON with this field:
- concierge_services: Array of service descriptions (concierge, laundry, luggage storage, meeting facilities, etc.)`,
}

// buildGroupPrompt creates the user prompt for one field group.
func buildGroupPrompt(group hotel.FieldGroup, content string) string {
	var b strings.Builder
	b.WriteString(groupPromptIntros[group])
	b.WriteString("\n\nContent: ")
	b.WriteString(clip(content, promptContentLimit))
	b.WriteString("\n\nReturn only valid JSON:")
	return b.String()
}

// clip limits s to max bytes without splitting a UTF-8 sequence.
func clip(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}

package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// PatternExtractor is the universal baseline: deterministic regex and
// keyword search against the lowercased sample text. It covers every group
// except Nearby, which has no reliable keyword surface form.
type PatternExtractor struct{}

// NewPatternExtractor creates the pattern strategy. It is always available.
func NewPatternExtractor() *PatternExtractor { return &PatternExtractor{} }

// Name returns the strategy identifier.
func (e *PatternExtractor) Name() string { return StrategyPattern }

// Groups returns the groups with a regex/keyword baseline.
func (e *PatternExtractor) Groups() []hotel.FieldGroup {
	return []hotel.FieldGroup{
		hotel.GroupContact,
		hotel.GroupPolicies,
		hotel.GroupParking,
		hotel.GroupAmenities,
		hotel.GroupDining,
		hotel.GroupRooms,
		hotel.GroupServices,
	}
}

var (
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`),
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
	}
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	checkinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`check[- ]?in(?:\s+time)?:?\s*(\d{1,2}:?\d{0,2}\s*[ap]m)`),
		regexp.MustCompile(`arrival(?:\s+time)?:?\s*(\d{1,2}:?\d{0,2}\s*[ap]m)`),
		regexp.MustCompile(`checkin\s+(?:starts?|begins?)\s+(?:at\s+)?(\d{1,2}:?\d{0,2}\s*[ap]m)`),
	}
	checkoutPatterns = []*regexp.Regexp{
		regexp.MustCompile(`check[- ]?out(?:\s+time)?:?\s*(\d{1,2}:?\d{0,2}\s*[ap]m)`),
		regexp.MustCompile(`departure(?:\s+time)?:?\s*(\d{1,2}:?\d{0,2}\s*[ap]m)`),
		regexp.MustCompile(`checkout\s+(?:is\s+)?(?:by\s+)?(\d{1,2}:?\d{0,2}\s*[ap]m)`),
	}

	// An hour range like "6:00 am - 10:00 pm" inside a keyword context.
	hourRangePattern = regexp.MustCompile(`(\d{1,2}:?\d{0,2}\s*[ap]m.*?\d{1,2}:?\d{0,2}\s*[ap]m)`)
	dollarPattern    = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
)

// fillerHours is used when the primary amenity keyword matched but no hour
// range was found in its context window.
const fillerHours = "Check with hotel"

// Extract runs the regex/keyword heuristics for one group. It never errors;
// an empty result simply means a miss.
func (e *PatternExtractor) Extract(_ context.Context, group hotel.FieldGroup, sample *normalize.Sample) (Result, error) {
	result := Result{Group: group, Strategy: e.Name(), Fields: map[string]any{}}
	text := sample.Text
	lower := strings.ToLower(text)

	switch group {
	case hotel.GroupContact:
		e.extractContact(text, result.Fields)
	case hotel.GroupPolicies:
		e.extractPolicies(lower, result.Fields)
	case hotel.GroupParking:
		e.extractParking(lower, result.Fields)
	case hotel.GroupAmenities:
		e.extractAmenities(lower, result.Fields)
	case hotel.GroupDining:
		e.extractDining(lower, result.Fields)
	case hotel.GroupRooms:
		e.extractRooms(lower, result.Fields)
	case hotel.GroupServices:
		e.extractServices(lower, result.Fields)
	}

	return result, nil
}

func (e *PatternExtractor) extractContact(text string, fields map[string]any) {
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			fields["phone"] = m
			break
		}
	}
	if m := emailPattern.FindString(text); m != "" {
		fields["email"] = m
	}
}

func (e *PatternExtractor) extractPolicies(lower string, fields map[string]any) {
	for _, p := range checkinPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			fields["checkin_time"] = strings.TrimSpace(m[1])
			break
		}
	}
	for _, p := range checkoutPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			fields["checkout_time"] = strings.TrimSpace(m[1])
			break
		}
	}
}

func (e *PatternExtractor) extractParking(lower string, fields map[string]any) {
	parkingCtx := contextAround(lower, "parking", 100)
	if parkingCtx != "" {
		fields["parking_available"] = true

		if containsAny(parkingCtx, "free", "complimentary", "no charge") {
			fields["parking_cost"] = "Free"
		}
		if strings.Contains(parkingCtx, "valet") {
			fields["parking_type"] = "Valet"
		} else if containsAny(parkingCtx, "self-park", "self park", "self service") {
			fields["parking_type"] = "Self-park"
		}
		if m := dollarPattern.FindStringSubmatch(parkingCtx); m != nil {
			fields["parking_cost"] = "$" + m[1]
		}
	}

	if shuttleCtx := contextAround(lower, "shuttle", 80); shuttleCtx != "" {
		fields["shuttle_service"] = snippet(shuttleCtx, 100)
	}
}

// amenityKeywords maps each amenity category to its synonym set; presence of
// any keyword marks the category as present.
var amenityKeywords = map[string][]string{
	"wifi":          {"wifi", "wi-fi", "internet", "wireless"},
	"fitness":       {"fitness", "gym", "exercise", "workout"},
	"pool":          {"pool", "swimming", "aquatic"},
	"spa":           {"spa", "massage", "wellness", "treatment"},
	"business":      {"business center", "meeting room", "conference"},
	"pets":          {"pet", "dog", "cat", "animal"},
	"accessibility": {"accessible", "wheelchair", "ada"},
}

func (e *PatternExtractor) extractAmenities(lower string, fields map[string]any) {
	for category, keywords := range amenityKeywords {
		for _, keyword := range keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			ctx := contextAround(lower, keyword, 80)

			switch category {
			case "wifi":
				if containsAny(ctx, "free", "complimentary") {
					fields["wifi_info"] = "Free WiFi available"
				} else {
					fields["wifi_info"] = "WiFi available"
				}

			case "fitness":
				hours := fillerHours
				if m := hourRangePattern.FindStringSubmatch(ctx); m != nil {
					hours = m[1]
				}
				fields["fitness_center"] = hotel.Facility{
					Available: true,
					Hours:     hours,
					Details:   snippet(ctx, 100),
				}

			case "pool":
				poolType := "Standard"
				for _, pt := range []string{"indoor", "outdoor", "heated", "seasonal"} {
					if strings.Contains(ctx, pt) {
						poolType = pt
						break
					}
				}
				fields["pool"] = hotel.PoolInfo{
					Available: true,
					Type:      poolType,
					Details:   snippet(ctx, 100),
				}

			case "spa":
				var found []string
				for _, svc := range []string{"massage", "facial", "manicure", "pedicure", "sauna"} {
					if strings.Contains(ctx, svc) {
						found = append(found, svc)
					}
				}
				if len(found) > 0 {
					fields["spa_services"] = found
				}

			case "business":
				fields["business_center"] = hotel.Facility{
					Available: true,
					Details:   snippet(ctx, 100),
				}

			case "pets":
				if containsAny(ctx, "friendly", "welcome") {
					fields["pet_policy"] = hotel.PetPolicy{Allowed: true, Details: snippet(ctx, 100)}
				} else if containsAny(ctx, "not allowed", "no pets") {
					fields["pet_policy"] = hotel.PetPolicy{Allowed: false, Details: snippet(ctx, 100)}
				}

			case "accessibility":
				fields["accessibility_features"] = []string{snippet(ctx, 100)}
			}

			break
		}
	}

	if containsAny(lower, "non-smoking", "smoke-free", "smoke free") {
		fields["smoking_policy"] = "Non-smoking property"
	}
}

var cuisineKeywords = []string{"italian", "asian", "american", "french", "mexican", "seafood", "steakhouse"}

func (e *PatternExtractor) extractDining(lower string, fields map[string]any) {
	if strings.Contains(lower, "restaurant") {
		ctx := contextAround(lower, "restaurant", 100)

		cuisine := "International"
		for _, c := range cuisineKeywords {
			if strings.Contains(ctx, c) {
				cuisine = titleCase(c)
				break
			}
		}

		hours := fillerHours
		if m := hourRangePattern.FindStringSubmatch(ctx); m != nil {
			hours = m[1]
		}

		fields["restaurants"] = []hotel.Restaurant{{
			Name:    "Restaurant",
			Cuisine: cuisine,
			Hours:   hours,
			Details: snippet(ctx, 200),
		}}
	}

	if strings.Contains(lower, "room service") {
		ctx := contextAround(lower, "room service", 100)
		hours := "24 hours"
		if m := hourRangePattern.FindStringSubmatch(ctx); m != nil {
			hours = m[1]
		}
		fields["room_service"] = hotel.Facility{
			Available: true,
			Hours:     hours,
			Details:   snippet(ctx, 100),
		}
	}

	for _, keyword := range []string{"breakfast", "morning meal", "continental breakfast"} {
		if !strings.Contains(lower, keyword) {
			continue
		}
		ctx := contextAround(lower, keyword, 100)

		breakfastType := "Continental"
		cost := fillerHours
		if containsAny(ctx, "complimentary", "free") {
			cost = "Complimentary"
		} else if strings.Contains(ctx, "buffet") {
			breakfastType = "Buffet"
			cost = "Additional charge"
		}

		fields["breakfast_info"] = hotel.Breakfast{
			Available: true,
			Type:      breakfastType,
			Cost:      cost,
			Details:   snippet(ctx, 100),
		}
		break
	}
}

var (
	roomTypeKeywords    = []string{"junior suite", "standard", "deluxe", "suite", "premium", "executive"}
	roomAmenityKeywords = []string{"air conditioning", "minibar", "coffee maker", "safe", "balcony", "view"}
)

func (e *PatternExtractor) extractRooms(lower string, fields map[string]any) {
	var roomTypes []hotel.RoomType
	for _, rt := range roomTypeKeywords {
		if strings.Contains(lower, rt) {
			roomTypes = append(roomTypes, hotel.RoomType{
				Type:        titleCase(rt),
				Description: snippet(contextAround(lower, rt, 75), 150),
			})
		}
	}
	if len(roomTypes) > 0 {
		fields["room_types"] = roomTypes
	}

	var amenities []string
	for _, a := range roomAmenityKeywords {
		if strings.Contains(lower, a) {
			amenities = append(amenities, titleCase(a))
		}
	}
	if len(amenities) > 0 {
		fields["room_amenities"] = amenities
	}
}

// serviceKeywords maps each service category to its synonym set.
var serviceKeywords = []struct {
	category string
	keywords []string
}{
	{"concierge", []string{"concierge", "guest services", "front desk"}},
	{"laundry", []string{"laundry", "dry cleaning", "valet service"}},
	{"luggage", []string{"luggage storage", "baggage", "bell hop"}},
	{"transportation", []string{"shuttle", "car service", "taxi"}},
	{"meeting", []string{"meeting room", "conference", "event space"}},
	{"wellness", []string{"spa", "massage", "wellness center"}},
}

func (e *PatternExtractor) extractServices(lower string, fields map[string]any) {
	var services []string
	for _, sc := range serviceKeywords {
		for _, keyword := range sc.keywords {
			if strings.Contains(lower, keyword) {
				ctx := contextAround(lower, keyword, 60)
				services = append(services, titleCase(keyword)+" - "+snippet(ctx, 50))
				break
			}
		}
	}
	if len(services) > 0 {
		fields["concierge_services"] = services
	}
}

// contextAround extracts a fixed-radius window around the first occurrence
// of keyword in text, or "" when the keyword is absent.
func contextAround(text, keyword string, radius int) string {
	pos := strings.Index(text, keyword)
	if pos < 0 {
		return ""
	}
	start := pos - radius
	if start < 0 {
		start = 0
	}
	end := pos + len(keyword) + radius
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func snippet(s string, max int) string {
	return clip(s, max)
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

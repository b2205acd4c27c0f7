package extract

import (
	"strconv"
	"strings"

	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// mergeOutcome writes a usable group result into the record. Strategy output
// is loosely typed (remote results arrive as decoded JSON, pattern results
// as native values), so every field goes through a coercion helper. Each
// group writes a disjoint set of fields, which is what makes concurrent
// pipelines safe to merge one at a time.
func mergeOutcome(rec *hotel.Record, out Outcome) {
	if out.Status != StatusUsable {
		return
	}
	f := out.Result.Fields

	switch out.Group {
	case hotel.GroupContact:
		setString(&rec.Phone, f["phone"])
		setString(&rec.Email, f["email"])
		setString(&rec.Address, f["address"])
		setString(&rec.City, f["city"])
		setString(&rec.State, f["state"])
		setString(&rec.ZipCode, f["zip_code"])

	case hotel.GroupPolicies:
		setString(&rec.CheckinTime, f["checkin_time"])
		setString(&rec.CheckoutTime, f["checkout_time"])
		setString(&rec.EarlyCheckinPolicy, f["early_checkin_policy"])
		setString(&rec.LateCheckoutPolicy, f["late_checkout_policy"])
		setString(&rec.CancellationPolicy, f["cancellation_policy"])
		setString(&rec.DepositPolicy, f["deposit_policy"])
		setString(&rec.AgeRestrictions, f["age_restrictions"])

	case hotel.GroupParking:
		if b, ok := asBool(f["parking_available"]); ok {
			rec.ParkingAvailable = &b
		}
		setString(&rec.ParkingCost, f["parking_cost"])
		setString(&rec.ParkingType, f["parking_type"])
		setString(&rec.ShuttleService, f["shuttle_service"])

	case hotel.GroupAmenities:
		setString(&rec.WifiInfo, f["wifi_info"])
		rec.FitnessCenter = asFacility(f["fitness_center"])
		rec.Pool = asPool(f["pool"])
		if ss := asStringSlice(f["spa_services"]); len(ss) > 0 {
			rec.SpaServices = ss
		}
		rec.BusinessCenter = asFacility(f["business_center"])
		rec.PetPolicy = asPetPolicy(f["pet_policy"])
		setString(&rec.SmokingPolicy, f["smoking_policy"])
		if af := asStringSlice(f["accessibility_features"]); len(af) > 0 {
			rec.AccessibilityFeatures = af
		}

	case hotel.GroupDining:
		if rs := asRestaurants(f["restaurants"]); len(rs) > 0 {
			rec.Restaurants = rs
		}
		if bl := asRestaurants(f["bars_lounges"]); len(bl) > 0 {
			rec.BarsLounges = bl
		}
		rec.RoomService = asFacility(f["room_service"])
		rec.BreakfastInfo = asBreakfast(f["breakfast_info"])

	case hotel.GroupRooms:
		if rt := asRoomTypes(f["room_types"]); len(rt) > 0 {
			rec.RoomTypes = rt
		}
		if ra := asStringSlice(f["room_amenities"]); len(ra) > 0 {
			rec.RoomAmenities = ra
		}

	case hotel.GroupNearby:
		if ps := asPlaces(f["nearby_attractions"], "Attraction"); len(ps) > 0 {
			rec.NearbyAttractions = ps
		}
		if ps := asPlaces(f["nearby_restaurants"], "Restaurant"); len(ps) > 0 {
			rec.NearbyRestaurants = ps
		}
		if ps := asPlaces(f["nearby_shopping"], "Shopping"); len(ps) > 0 {
			rec.NearbyShopping = ps
		}

	case hotel.GroupServices:
		if cs := asStringSlice(f["concierge_services"]); len(cs) > 0 {
			rec.ConciergeServices = cs
		}
	}
}

func setString(dst *string, v any) {
	if s, ok := asString(v); ok && s != "" {
		*dst = s
	}
}

// asString accepts the scalar shapes a JSON-decoded or native value may
// take. Numbers are rendered because models occasionally return a bare
// number where a string was asked for (zip codes especially).
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "available":
			return true, true
		case "false", "no", "unavailable":
			return false, true
		}
	}
	return false, false
}

func asStringSlice(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := asString(e); ok && s != "" {
				out = append(out, s)
			} else if m, ok := e.(map[string]any); ok {
				// Models sometimes return objects where names were asked for.
				if s, ok := asString(m["name"]); ok && s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return nil
	}
}

func asFacility(v any) *hotel.Facility {
	switch t := v.(type) {
	case hotel.Facility:
		return &t
	case *hotel.Facility:
		return t
	case map[string]any:
		fac := hotel.Facility{}
		fac.Available, _ = asBool(t["available"])
		fac.Hours, _ = asString(t["hours"])
		fac.Details, _ = asString(t["details"])
		return &fac
	case string:
		if t == "" {
			return nil
		}
		return &hotel.Facility{Available: true, Details: t}
	default:
		return nil
	}
}

func asPool(v any) *hotel.PoolInfo {
	switch t := v.(type) {
	case hotel.PoolInfo:
		return &t
	case *hotel.PoolInfo:
		return t
	case map[string]any:
		pool := hotel.PoolInfo{}
		pool.Available, _ = asBool(t["available"])
		pool.Type, _ = asString(t["type"])
		pool.Details, _ = asString(t["details"])
		return &pool
	case string:
		if t == "" {
			return nil
		}
		return &hotel.PoolInfo{Available: true, Details: t}
	default:
		return nil
	}
}

func asPetPolicy(v any) *hotel.PetPolicy {
	switch t := v.(type) {
	case hotel.PetPolicy:
		return &t
	case *hotel.PetPolicy:
		return t
	case map[string]any:
		pp := hotel.PetPolicy{}
		pp.Allowed, _ = asBool(t["allowed"])
		pp.Details, _ = asString(t["details"])
		return &pp
	case string:
		if t == "" {
			return nil
		}
		return &hotel.PetPolicy{Details: t}
	default:
		return nil
	}
}

func asBreakfast(v any) *hotel.Breakfast {
	switch t := v.(type) {
	case hotel.Breakfast:
		return &t
	case *hotel.Breakfast:
		return t
	case map[string]any:
		bf := hotel.Breakfast{}
		bf.Available, _ = asBool(t["available"])
		bf.Type, _ = asString(t["type"])
		bf.Cost, _ = asString(t["cost"])
		bf.Details, _ = asString(t["details"])
		return &bf
	case string:
		if t == "" {
			return nil
		}
		return &hotel.Breakfast{Available: true, Details: t}
	default:
		return nil
	}
}

func asRestaurants(v any) []hotel.Restaurant {
	switch t := v.(type) {
	case []hotel.Restaurant:
		return t
	case []any:
		out := make([]hotel.Restaurant, 0, len(t))
		for _, e := range t {
			switch r := e.(type) {
			case map[string]any:
				rest := hotel.Restaurant{}
				rest.Name, _ = asString(r["name"])
				rest.Cuisine, _ = asString(r["cuisine"])
				rest.Hours, _ = asString(r["hours"])
				rest.Details, _ = asString(r["details"])
				if rest.Name != "" {
					out = append(out, rest)
				}
			case string:
				if r != "" {
					out = append(out, hotel.Restaurant{Name: r})
				}
			}
		}
		return out
	default:
		return nil
	}
}

func asRoomTypes(v any) []hotel.RoomType {
	switch t := v.(type) {
	case []hotel.RoomType:
		return t
	case []any:
		out := make([]hotel.RoomType, 0, len(t))
		for _, e := range t {
			switch r := e.(type) {
			case map[string]any:
				rt := hotel.RoomType{}
				rt.Type, _ = asString(r["type"])
				rt.Description, _ = asString(r["description"])
				if rt.Type != "" {
					out = append(out, rt)
				}
			case string:
				if r != "" {
					out = append(out, hotel.RoomType{Type: r})
				}
			}
		}
		return out
	default:
		return nil
	}
}

func asPlaces(v any, kind string) []hotel.Place {
	switch t := v.(type) {
	case []hotel.Place:
		return t
	case []any:
		out := make([]hotel.Place, 0, len(t))
		for _, e := range t {
			switch p := e.(type) {
			case map[string]any:
				place := hotel.Place{}
				place.Name, _ = asString(p["name"])
				place.Type, _ = asString(p["type"])
				place.Distance, _ = asString(p["distance"])
				if place.Type == "" {
					place.Type = kind
				}
				if place.Name != "" {
					out = append(out, place)
				}
			case string:
				if p != "" {
					out = append(out, hotel.Place{Name: p, Type: kind})
				}
			}
		}
		return out
	default:
		return nil
	}
}

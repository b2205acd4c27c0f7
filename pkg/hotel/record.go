// Package hotel defines the unified hotel information record produced by the
// extraction pipeline, the field groups that partition it, and the
// completeness-based confidence scorer.
package hotel

// UnknownHotelName is the sentinel used when no name candidate qualifies.
// A record carrying it scores zero for the name signal.
const UnknownHotelName = "Unknown Hotel"

// Facility describes an on-site facility such as a fitness center, business
// center or room service.
type Facility struct {
	Available bool   `json:"available" yaml:"available"`
	Hours     string `json:"hours,omitempty" yaml:"hours,omitempty"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty"`
}

// PoolInfo describes the pool, if any.
type PoolInfo struct {
	Available bool   `json:"available" yaml:"available"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty"`
}

// PetPolicy describes whether pets are allowed and under what conditions.
type PetPolicy struct {
	Allowed bool   `json:"allowed" yaml:"allowed"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Restaurant is one on-site dining venue (restaurant, bar or lounge).
type Restaurant struct {
	Name    string `json:"name" yaml:"name"`
	Cuisine string `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Hours   string `json:"hours,omitempty" yaml:"hours,omitempty"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Breakfast describes the breakfast offering.
type Breakfast struct {
	Available bool   `json:"available" yaml:"available"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Cost      string `json:"cost,omitempty" yaml:"cost,omitempty"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty"`
}

// RoomType is one category of room the property offers.
type RoomType struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Place is a point of interest near the property.
type Place struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Distance string `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Record is the unified, versioned output of one scrape. Every list-typed
// field is always an initialized slice, never nil, so downstream consumers
// see [] rather than null. The orchestrator owns a Record exclusively while
// building it; after return it is a plain value the caller owns outright.
type Record struct {
	// Identity
	HotelName       string  `json:"hotel_name" yaml:"hotel_name"`
	WebsiteURL      string  `json:"website_url" yaml:"website_url"`
	ScrapedAt       string  `json:"scraped_at" yaml:"scraped_at"`
	ConfidenceScore float64 `json:"confidence_score" yaml:"confidence_score"`

	// Contact & location
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`

	// Policies
	CheckinTime        string `json:"checkin_time,omitempty" yaml:"checkin_time,omitempty"`
	CheckoutTime       string `json:"checkout_time,omitempty" yaml:"checkout_time,omitempty"`
	EarlyCheckinPolicy string `json:"early_checkin_policy,omitempty" yaml:"early_checkin_policy,omitempty"`
	LateCheckoutPolicy string `json:"late_checkout_policy,omitempty" yaml:"late_checkout_policy,omitempty"`
	CancellationPolicy string `json:"cancellation_policy,omitempty" yaml:"cancellation_policy,omitempty"`
	DepositPolicy      string `json:"deposit_policy,omitempty" yaml:"deposit_policy,omitempty"`
	AgeRestrictions    string `json:"age_restrictions,omitempty" yaml:"age_restrictions,omitempty"`

	// Parking & transportation
	ParkingAvailable *bool  `json:"parking_available,omitempty" yaml:"parking_available,omitempty"`
	ParkingCost      string `json:"parking_cost,omitempty" yaml:"parking_cost,omitempty"`
	ParkingType      string `json:"parking_type,omitempty" yaml:"parking_type,omitempty"`
	ShuttleService   string `json:"shuttle_service,omitempty" yaml:"shuttle_service,omitempty"`

	// Amenities
	WifiInfo              string     `json:"wifi_info,omitempty" yaml:"wifi_info,omitempty"`
	FitnessCenter         *Facility  `json:"fitness_center,omitempty" yaml:"fitness_center,omitempty"`
	Pool                  *PoolInfo  `json:"pool,omitempty" yaml:"pool,omitempty"`
	SpaServices           []string   `json:"spa_services" yaml:"spa_services"`
	BusinessCenter        *Facility  `json:"business_center,omitempty" yaml:"business_center,omitempty"`
	PetPolicy             *PetPolicy `json:"pet_policy,omitempty" yaml:"pet_policy,omitempty"`
	SmokingPolicy         string     `json:"smoking_policy,omitempty" yaml:"smoking_policy,omitempty"`
	AccessibilityFeatures []string   `json:"accessibility_features" yaml:"accessibility_features"`

	// Dining
	Restaurants   []Restaurant `json:"restaurants" yaml:"restaurants"`
	RoomService   *Facility    `json:"room_service,omitempty" yaml:"room_service,omitempty"`
	BreakfastInfo *Breakfast   `json:"breakfast_info,omitempty" yaml:"breakfast_info,omitempty"`
	BarsLounges   []Restaurant `json:"bars_lounges" yaml:"bars_lounges"`

	// Rooms
	RoomTypes     []RoomType `json:"room_types" yaml:"room_types"`
	RoomAmenities []string   `json:"room_amenities" yaml:"room_amenities"`

	// Nearby
	NearbyAttractions []Place `json:"nearby_attractions" yaml:"nearby_attractions"`
	NearbyRestaurants []Place `json:"nearby_restaurants" yaml:"nearby_restaurants"`
	NearbyShopping    []Place `json:"nearby_shopping" yaml:"nearby_shopping"`

	// Services
	ConciergeServices []string `json:"concierge_services" yaml:"concierge_services"`
}

// NewRecord returns a Record for the given site with every list field
// initialized to an empty slice.
func NewRecord(websiteURL string) Record {
	r := Record{
		HotelName:  UnknownHotelName,
		WebsiteURL: websiteURL,
	}
	r.EnsureDefaults()
	return r
}

// EnsureDefaults re-establishes the never-nil invariant for list fields.
// Merge steps may assign nil slices when coercing loosely-typed strategy
// output; this runs once before the record is finalized.
func (r *Record) EnsureDefaults() {
	if r.SpaServices == nil {
		r.SpaServices = []string{}
	}
	if r.AccessibilityFeatures == nil {
		r.AccessibilityFeatures = []string{}
	}
	if r.Restaurants == nil {
		r.Restaurants = []Restaurant{}
	}
	if r.BarsLounges == nil {
		r.BarsLounges = []Restaurant{}
	}
	if r.RoomTypes == nil {
		r.RoomTypes = []RoomType{}
	}
	if r.RoomAmenities == nil {
		r.RoomAmenities = []string{}
	}
	if r.NearbyAttractions == nil {
		r.NearbyAttractions = []Place{}
	}
	if r.NearbyRestaurants == nil {
		r.NearbyRestaurants = []Place{}
	}
	if r.NearbyShopping == nil {
		r.NearbyShopping = []Place{}
	}
	if r.ConciergeServices == nil {
		r.ConciergeServices = []string{}
	}
}

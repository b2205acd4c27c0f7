package hotel

// Weights assigns a contribution to each completeness signal. The defaults
// sum to 1.0; custom weight sets should do the same since the final score is
// clamped rather than renormalized.
type Weights struct {
	HotelName         float64 `mapstructure:"hotel_name"`
	Phone             float64 `mapstructure:"phone"`
	Address           float64 `mapstructure:"address"`
	CheckinTime       float64 `mapstructure:"checkin_time"`
	CheckoutTime      float64 `mapstructure:"checkout_time"`
	ParkingAvailable  float64 `mapstructure:"parking_available"`
	WifiInfo          float64 `mapstructure:"wifi_info"`
	Restaurants       float64 `mapstructure:"restaurants"`
	NearbyAttractions float64 `mapstructure:"nearby_attractions"`
	RoomTypes         float64 `mapstructure:"room_types"`
	AmenityCount      float64 `mapstructure:"amenity_count"`
	PolicyCount       float64 `mapstructure:"policy_count"`
	ServiceCount      float64 `mapstructure:"service_count"`
}

// DefaultWeights returns the standard weight set. The constants are
// empirical, not derived from labeled ground truth; callers may tune them.
func DefaultWeights() Weights {
	return Weights{
		HotelName:         0.10,
		Phone:             0.08,
		Address:           0.08,
		CheckinTime:       0.07,
		CheckoutTime:      0.07,
		ParkingAvailable:  0.05,
		WifiInfo:          0.05,
		Restaurants:       0.10,
		NearbyAttractions: 0.08,
		RoomTypes:         0.08,
		AmenityCount:      0.10,
		PolicyCount:       0.08,
		ServiceCount:      0.06,
	}
}

// Saturation holds the per-signal item counts at which a list or counted
// signal reaches its full weight. Extra items beyond the threshold add
// nothing.
type Saturation struct {
	Restaurants       int `mapstructure:"restaurants" validate:"min=1"`
	NearbyAttractions int `mapstructure:"nearby_attractions" validate:"min=1"`
	RoomTypes         int `mapstructure:"room_types" validate:"min=1"`
	Amenities         int `mapstructure:"amenities" validate:"min=1"`
	Policies          int `mapstructure:"policies" validate:"min=1"`
	Services          int `mapstructure:"services" validate:"min=1"`
}

// DefaultSaturation returns the standard saturation thresholds.
func DefaultSaturation() Saturation {
	return Saturation{
		Restaurants:       3,
		NearbyAttractions: 5,
		RoomTypes:         3,
		Amenities:         5,
		Policies:          3,
		Services:          5,
	}
}

// Scorer computes a deterministic data-quality confidence score in [0,1]
// from a finished Record. Identical records always produce identical scores.
type Scorer struct {
	weights    Weights
	saturation Saturation
}

// NewScorer creates a Scorer with the given weights and thresholds.
func NewScorer(w Weights, s Saturation) *Scorer {
	return &Scorer{weights: w, saturation: s}
}

// DefaultScorer creates a Scorer with the default weights and thresholds.
func DefaultScorer() *Scorer {
	return NewScorer(DefaultWeights(), DefaultSaturation())
}

// Score measures the record's completeness, not its factual accuracy.
func (s *Scorer) Score(r *Record) float64 {
	score := 0.0

	// Scalar presence signals: full weight if present, else zero.
	if r.HotelName != "" && r.HotelName != UnknownHotelName {
		score += s.weights.HotelName
	}
	if r.Phone != "" {
		score += s.weights.Phone
	}
	if r.Address != "" {
		score += s.weights.Address
	}
	if r.CheckinTime != "" {
		score += s.weights.CheckinTime
	}
	if r.CheckoutTime != "" {
		score += s.weights.CheckoutTime
	}
	if r.ParkingAvailable != nil {
		score += s.weights.ParkingAvailable
	}
	if r.WifiInfo != "" {
		score += s.weights.WifiInfo
	}

	// List signals: weight scaled by count up to the saturation threshold.
	score += s.weights.Restaurants * ratio(len(r.Restaurants), s.saturation.Restaurants)
	score += s.weights.NearbyAttractions * ratio(len(r.NearbyAttractions), s.saturation.NearbyAttractions)
	score += s.weights.RoomTypes * ratio(len(r.RoomTypes), s.saturation.RoomTypes)

	// Counted category signals.
	amenities := 0
	if r.FitnessCenter != nil {
		amenities++
	}
	if r.Pool != nil {
		amenities++
	}
	if len(r.SpaServices) > 0 {
		amenities++
	}
	if r.BusinessCenter != nil {
		amenities++
	}
	if r.PetPolicy != nil {
		amenities++
	}
	score += s.weights.AmenityCount * ratio(amenities, s.saturation.Amenities)

	policies := 0
	if r.CancellationPolicy != "" {
		policies++
	}
	if r.DepositPolicy != "" {
		policies++
	}
	if r.AgeRestrictions != "" {
		policies++
	}
	score += s.weights.PolicyCount * ratio(policies, s.saturation.Policies)

	score += s.weights.ServiceCount * ratio(len(r.ConciergeServices), s.saturation.Services)

	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

func ratio(count, target int) float64 {
	if count <= 0 || target <= 0 {
		return 0
	}
	v := float64(count) / float64(target)
	if v > 1.0 {
		return 1.0
	}
	return v
}

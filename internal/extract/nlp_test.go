package extract

import (
	"testing"

	"github.com/hotelintel/hotelintel/pkg/hotel"
)

func TestCategorizeEntity(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Springfield Art Museum", "Attraction"},
		{"Riverside Park", "Attraction"},
		{"Orpheum Theater", "Attraction"},
		{"Blue Door Bistro", "Restaurant"},
		{"Corner Cafe", "Restaurant"},
		{"Westfield Mall", "Shopping"},
		{"Farmers Market", "Shopping"},
		{"Acme Corporation", ""},
	}
	for _, tt := range tests {
		if got := categorizeEntity(tt.name); got != tt.want {
			t.Errorf("categorizeEntity(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEntityExtractorGroups(t *testing.T) {
	e, err := NewEntityExtractor()
	if err != nil {
		t.Skipf("entity model unavailable: %v", err)
	}

	if !covers(e, hotel.GroupContact) || !covers(e, hotel.GroupNearby) {
		t.Errorf("entity extractor groups = %v", e.Groups())
	}
	if covers(e, hotel.GroupDining) {
		t.Error("entity extractor must not cover dining")
	}
}

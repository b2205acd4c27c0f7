package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// Text budgets for entity recognition. Tagging cost grows with input size,
// and entities past these bounds add little.
const (
	contactNERLimit  = 2000
	nearbyNERLimit   = 3000
	maxPlacesPerKind = 10
)

// EntityExtractor recognizes named entities (organizations, locations,
// facilities) in the sample text. It backs the groups where regexes have no
// surface form to match: nearby points of interest, plus address hints for
// the contact group.
type EntityExtractor struct{}

// NewEntityExtractor creates the NLP strategy. The underlying model is
// probed once here; a failed probe returns ErrStrategyUnavailable and the
// strategy is left out of every pipeline.
func NewEntityExtractor() (*EntityExtractor, error) {
	if _, err := prose.NewDocument("probe"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStrategyUnavailable, err)
	}
	return &EntityExtractor{}, nil
}

// Name returns the strategy identifier.
func (e *EntityExtractor) Name() string { return StrategyNLP }

// Groups returns the groups entity recognition can serve.
func (e *EntityExtractor) Groups() []hotel.FieldGroup {
	return []hotel.FieldGroup{hotel.GroupContact, hotel.GroupNearby}
}

// Extract runs entity recognition for one group.
func (e *EntityExtractor) Extract(_ context.Context, group hotel.FieldGroup, sample *normalize.Sample) (Result, error) {
	result := Result{Group: group, Strategy: e.Name(), Fields: map[string]any{}}

	switch group {
	case hotel.GroupContact:
		if err := e.extractContact(sample.Text, result.Fields); err != nil {
			return result, err
		}
	case hotel.GroupNearby:
		if err := e.extractNearby(sample.Text, result.Fields); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (e *EntityExtractor) extractContact(text string, fields map[string]any) error {
	doc, err := prose.NewDocument(clip(text, contactNERLimit))
	if err != nil {
		return fmt.Errorf("entity tagging: %w", err)
	}

	for _, ent := range doc.Entities() {
		if ent.Label == "GPE" {
			fields["address"] = ent.Text
			break
		}
	}

	for _, tok := range doc.Tokens() {
		if strings.Contains(tok.Text, "@") && strings.Contains(tok.Text, ".") {
			fields["email"] = tok.Text
			break
		}
	}

	return nil
}

func (e *EntityExtractor) extractNearby(text string, fields map[string]any) error {
	doc, err := prose.NewDocument(clip(text, nearbyNERLimit))
	if err != nil {
		return fmt.Errorf("entity tagging: %w", err)
	}

	var attractions, restaurants, shopping []hotel.Place
	seen := make(map[string]bool)

	for _, ent := range doc.Entities() {
		if ent.Label != "ORG" && ent.Label != "GPE" && ent.Label != "FAC" {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch categorizeEntity(name) {
		case "Attraction":
			if len(attractions) < maxPlacesPerKind {
				attractions = append(attractions, hotel.Place{Name: name, Type: "Attraction"})
			}
		case "Restaurant":
			if len(restaurants) < maxPlacesPerKind {
				restaurants = append(restaurants, hotel.Place{Name: name, Type: "Restaurant"})
			}
		case "Shopping":
			if len(shopping) < maxPlacesPerKind {
				shopping = append(shopping, hotel.Place{Name: name, Type: "Shopping"})
			}
		}
	}

	if len(attractions) > 0 {
		fields["nearby_attractions"] = attractions
	}
	if len(restaurants) > 0 {
		fields["nearby_restaurants"] = restaurants
	}
	if len(shopping) > 0 {
		fields["nearby_shopping"] = shopping
	}

	return nil
}

// RefineName returns the first organization entity found in the candidate
// string, or "" when tagging finds none. Used to strip site chrome like
// " | Book Direct" from title-derived hotel names.
func (e *EntityExtractor) RefineName(candidate string) string {
	doc, err := prose.NewDocument(candidate)
	if err != nil {
		return ""
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "ORG" {
			return strings.TrimSpace(ent.Text)
		}
	}
	return ""
}

// categorizeEntity classifies an entity name into a nearby-place kind by
// keyword, or "" when no kind fits.
func categorizeEntity(name string) string {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "museum", "park", "theater", "theatre", "gallery", "center", "centre"):
		return "Attraction"
	case containsAny(lower, "restaurant", "cafe", "bar", "bistro", "grill"):
		return "Restaurant"
	case containsAny(lower, "mall", "shop", "market", "store"):
		return "Shopping"
	default:
		return ""
	}
}

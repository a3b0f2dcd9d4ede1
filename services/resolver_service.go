package services

import (
	"context"
	"log"
	"strings"

	"github.com/gustta03/meals-api/models"
)

// ResolvedFood is a catalog match for a described food.
type ResolvedFood struct {
	Food                *models.Food
	WeightGrams         float64
	OriginalDescription string
	Confidence          models.Confidence
}

// Words dropped before the standalone-term stage: prepositions, connectives
// and common preparation verbs.
var stopWords = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {}, "com": {}, "sem": {},
	"e": {}, "a": {}, "o": {}, "em": {}, "no": {}, "na": {}, "um": {}, "uma": {},
	"frito": {}, "frita": {}, "grelhado": {}, "grelhada": {},
	"cozido": {}, "cozida": {}, "assado": {}, "assada": {},
	"refogado": {}, "refogada": {}, "recheado": {}, "recheada": {},
}

// ResolverService finds catalog rows for free-text food names. The cascade is
// a fixed rule chain, not a scorer: exact match, then substring either
// direction, then stop-word-stripped standalone terms. The first stage that
// hits determines the confidence tag, so the ordering is load bearing.
type ResolverService struct {
	catalog FoodCatalog
}

func NewResolverService(catalog FoodCatalog) *ResolverService {
	return &ResolverService{catalog: catalog}
}

func (r *ResolverService) Resolve(ctx context.Context, description string, weightGrams float64) (*ResolvedFood, error) {
	normalized := strings.ToLower(strings.TrimSpace(description))

	// (a) exact, canonical or alternate name
	food, err := r.catalog.FindByName(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if food != nil {
		return r.resolved(food, weightGrams, description, models.ConfidenceHigh), nil
	}

	// (b) substring either direction
	matches, err := r.catalog.Search(ctx, normalized, 5)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return r.resolved(&matches[0], weightGrams, description, models.ConfidenceHigh), nil
	}

	// (c) standalone content words
	for _, term := range contentWords(normalized) {
		food, err := r.catalog.FindByName(ctx, term)
		if err != nil {
			return nil, err
		}
		if food == nil {
			termMatches, err := r.catalog.Search(ctx, term, 1)
			if err != nil {
				return nil, err
			}
			if len(termMatches) > 0 {
				food = &termMatches[0]
			}
		}
		if food != nil {
			return r.resolved(food, weightGrams, description, models.ConfidenceMedium), nil
		}
	}

	log.Printf("resolver: no catalog match for %q", description)
	return nil, nil
}

func (r *ResolverService) resolved(food *models.Food, weight float64, original string, conf models.Confidence) *ResolvedFood {
	return &ResolvedFood{
		Food:                food,
		WeightGrams:         weight,
		OriginalDescription: original,
		Confidence:          conf,
	}
}

func contentWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ".,;:!?")
		if len(w) <= 2 {
			continue
		}
		if _, skip := stopWords[w]; skip {
			continue
		}
		words = append(words, w)
	}
	return words
}

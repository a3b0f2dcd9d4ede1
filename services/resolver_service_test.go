package services

import (
	"context"
	"testing"

	"github.com/gustta03/meals-api/models"
)

func TestResolverCascade(t *testing.T) {
	catalog := &fakeCatalog{foods: []models.Food{
		{Code: "C0101", Name: "arroz", AltNames: "arroz branco,arroz cozido", PortionG: 100, EnergyKcal: 130},
		{Code: "C0102", Name: "frango grelhado", PortionG: 100, EnergyKcal: 159},
	}}
	r := NewResolverService(catalog)
	ctx := context.Background()

	t.Run("exact name is high confidence", func(t *testing.T) {
		got, err := r.Resolve(ctx, "Arroz", 200)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Food.Code != "C0101" {
			t.Fatalf("got %+v, want arroz", got)
		}
		if got.Confidence != models.ConfidenceHigh {
			t.Errorf("confidence = %q, want high", got.Confidence)
		}
	})

	t.Run("alternate name is high confidence", func(t *testing.T) {
		got, err := r.Resolve(ctx, "arroz branco", 200)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Food.Code != "C0101" {
			t.Fatalf("got %+v, want arroz via alt name", got)
		}
		if got.Confidence != models.ConfidenceHigh {
			t.Errorf("confidence = %q, want high", got.Confidence)
		}
	})

	t.Run("substring match is high confidence", func(t *testing.T) {
		got, err := r.Resolve(ctx, "frango grelhado temperado", 100)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Food.Code != "C0102" {
			t.Fatalf("got %+v, want frango grelhado", got)
		}
		if got.Confidence != models.ConfidenceHigh {
			t.Errorf("confidence = %q, want high", got.Confidence)
		}
	})

	t.Run("standalone content word is medium confidence", func(t *testing.T) {
		got, err := r.Resolve(ctx, "peito de frango desfiado", 120)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Food.Code != "C0102" {
			t.Fatalf("got %+v, want frango grelhado via the frango term", got)
		}
		if got.Confidence != models.ConfidenceMedium {
			t.Errorf("confidence = %q, want medium", got.Confidence)
		}
		if got.OriginalDescription != "peito de frango desfiado" {
			t.Errorf("original description lost: %q", got.OriginalDescription)
		}
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		got, err := r.Resolve(ctx, "pizza quatro queijos", 300)
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})
}

func TestContentWords(t *testing.T) {
	got := contentWords("200g de arroz com frango frito, e salada")
	want := []string{"200g", "arroz", "frango", "salada"}
	if len(got) != len(want) {
		t.Fatalf("contentWords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

package models

// Confidence is the coarse trust label attached to an identified food.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Nutrients struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

// NutritionItem is one priced food inside an analysis.
type NutritionItem struct {
	Name        string    `json:"name"`
	Quantity    string    `json:"quantity"`
	WeightGrams float64   `json:"weight_grams"`
	FoodRef     string    `json:"food_ref"`
	Nutrients   Nutrients `json:"nutrients"`
}

// NutritionAnalysis is the result of pricing one message's foods.
type NutritionAnalysis struct {
	Items  []NutritionItem `json:"items"`
	Totals Nutrients       `json:"totals"`
}

// FoodIdentification is a candidate food extracted from free text.
type FoodIdentification struct {
	Name        string     `json:"food_name"`
	WeightGrams float64    `json:"weight_grams"`
	Confidence  Confidence `json:"confidence"`
}

// ImageFoodItem is a candidate food identified on a photo. Image results are
// lower trust and always go through user confirmation.
type ImageFoodItem struct {
	Name        string  `json:"name"`
	Quantity    string  `json:"quantity"`
	WeightGrams float64 `json:"weight_grams"`
	Unit        string  `json:"unit,omitempty"`
}

// ExtractedNutrition is a raw AI-returned record, untrusted until validated.
type ExtractedNutrition struct {
	FoodName    string     `json:"food_name"`
	WeightGrams float64    `json:"weight_grams"`
	Calories    float64    `json:"calories"`
	ProteinG    float64    `json:"protein_g"`
	CarbsG      float64    `json:"carbs_g"`
	FatG        float64    `json:"fat_g"`
	FiberG      float64    `json:"fiber_g,omitempty"`
	Confidence  Confidence `json:"confidence"`
}

// ValidatedNutrition is an ExtractedNutrition that passed the bound checks.
// Warnings record consistency issues that did not block acceptance; they are
// logged, never shown to the user.
type ValidatedNutrition struct {
	ExtractedNutrition
	Warnings []string `json:"warnings"`
}

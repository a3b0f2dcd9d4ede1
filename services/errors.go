package services

import (
	"errors"
	"fmt"

	"github.com/gustta03/meals-api/models"
)

var (
	// ErrNotFound: no catalog match and no AI fallback could identify the food.
	ErrNotFound = errors.New("food not found")
	// ErrExternalService: an AI or store call failed. Recoverable at the turn
	// level only; the user sees a generic failure message.
	ErrExternalService = errors.New("external service failure")
)

// ValidationError carries the attempted values when AI-extracted nutrition is
// rejected for being out of bounds.
type ValidationError struct {
	Reason    string
	Attempted models.ExtractedNutrition
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("nutrition validation failed: %s", e.Reason)
}

func externalErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrExternalService, err)
}

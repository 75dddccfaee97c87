package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/andyrewlee/snapscroll/internal/section"
	"github.com/andyrewlee/snapscroll/internal/snap"
)

// maxTitleLength bounds a section title in bytes.
const maxTitleLength = 200

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateTitle validates a single section title. Empty titles are allowed
// and fall back to a generic label.
func ValidateTitle(field, title string) error {
	if strings.ContainsAny(title, "\r\n") {
		return &ValidationError{Field: field, Message: "title must be a single line"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{Field: field, Message: fmt.Sprintf("title too long (max %d characters)", maxTitleLength)}
	}
	return nil
}

// ValidateDocument validates section titles and title overrides.
func ValidateDocument(doc *section.Document) error {
	if doc == nil {
		return &ValidationError{Field: "document", Message: "document is empty"}
	}
	for i, s := range doc.Sections {
		if err := ValidateTitle(fmt.Sprintf("sections[%d].title", i), s.Title); err != nil {
			return err
		}
	}
	if len(doc.Titles) > len(doc.Sections) {
		return &ValidationError{
			Field:   "titles",
			Message: fmt.Sprintf("%d titles given for %d sections", len(doc.Titles), len(doc.Sections)),
		}
	}
	for i, t := range doc.Titles {
		if err := ValidateTitle(fmt.Sprintf("titles[%d]", i), t); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePolicy validates explicit navigation tuning.
func ValidatePolicy(p snap.Policy) error {
	if math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) || p.Threshold <= 0 {
		return &ValidationError{Field: "threshold", Message: "must be a positive number"}
	}
	if p.LockDuration <= 0 {
		return &ValidationError{Field: "lock", Message: "must be positive"}
	}
	if math.IsNaN(p.VisibleFraction) || p.VisibleFraction <= 0 || p.VisibleFraction > 1 {
		return &ValidationError{Field: "visible_fraction", Message: "must be in (0, 1]"}
	}
	return nil
}

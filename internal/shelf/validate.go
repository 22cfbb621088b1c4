package shelf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/five82/shelf/internal/catalog"
)

// DefaultMaxPublicationYear is the upper bound used when none is configured.
const DefaultMaxPublicationYear = 2026

// ValidationError is a local failure that never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormValidator checks save-form input before it is sent.
type FormValidator struct {
	validate *validator.Validate
	maxYear  int
}

type saveFields struct {
	Title   string `validate:"required"`
	Author  string `validate:"required"`
	Year    int    `validate:"gt=0,ltefield=MaxYear"`
	MaxYear int    `validate:"-"`
}

// NewFormValidator builds a validator bounding publication_year by maxYear.
// Non-positive maxYear falls back to DefaultMaxPublicationYear.
func NewFormValidator(maxYear int) *FormValidator {
	if maxYear <= 0 {
		maxYear = DefaultMaxPublicationYear
	}
	return &FormValidator{
		validate: validator.New(),
		maxYear:  maxYear,
	}
}

// MaxYear returns the configured upper bound.
func (v *FormValidator) MaxYear() int {
	return v.maxYear
}

// Validate returns the request to send, or a *ValidationError describing the
// first problem in field order: title, author, publication year.
func (v *FormValidator) Validate(form Form) (catalog.SaveRequest, error) {
	yearText := strings.TrimSpace(form.Year)
	year, yearErr := strconv.Atoi(yearText)

	fields := saveFields{
		Title:   strings.TrimSpace(form.Title),
		Author:  strings.TrimSpace(form.Author),
		Year:    year,
		MaxYear: v.maxYear,
	}

	failed := map[string]string{}
	if err := v.validate.Struct(fields); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return catalog.SaveRequest{}, err
		}
		for _, fe := range verrs {
			if _, seen := failed[fe.Field()]; !seen {
				failed[fe.Field()] = fe.Tag()
			}
		}
	}

	if _, bad := failed["Title"]; bad {
		return catalog.SaveRequest{}, &ValidationError{Field: "title", Message: "Title is required"}
	}
	if _, bad := failed["Author"]; bad {
		return catalog.SaveRequest{}, &ValidationError{Field: "author", Message: "Author is required"}
	}
	switch {
	case yearText == "":
		return catalog.SaveRequest{}, &ValidationError{Field: "publication_year", Message: "Publication year is required"}
	case yearErr != nil:
		return catalog.SaveRequest{}, &ValidationError{Field: "publication_year", Message: "Publication year must be a number"}
	}
	switch failed["Year"] {
	case "gt":
		return catalog.SaveRequest{}, &ValidationError{Field: "publication_year", Message: "Publication year must be a positive number"}
	case "ltefield":
		return catalog.SaveRequest{}, &ValidationError{
			Field:   "publication_year",
			Message: fmt.Sprintf("Publication year must not be later than %d", v.maxYear),
		}
	}

	return catalog.SaveRequest{
		ISBN:            form.ISBN,
		Title:           form.Title,
		Author:          form.Author,
		PublicationYear: year,
	}, nil
}

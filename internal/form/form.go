// Package form is the client-side validation gate in front of the
// create/edit mutations. The server accepts whatever it is sent; this is
// the only place the field limits and the category enumeration are
// enforced.
package form

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookcatalog/internal/book"
)

// Categories is the fixed set selectable in the form.
var Categories = []string{"Industrial", "Municipal", "Organic", "E-Waste", "Hazardous"}

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// BookForm collects create/edit input. No mutation payload is produced
// until every field passes.
type BookForm struct {
	Name        string `validate:"notblank,max=100"`
	Description string `validate:"notblank,max=500"`
	Category    string `validate:"required,oneof=Industrial Municipal Organic E-Waste Hazardous"`
}

// Validate checks every field and returns inline messages keyed by field
// name. An empty result means the form may be submitted.
func (f BookForm) Validate() map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	messages := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		switch fieldErr.Field() {
		case "Name":
			if fieldErr.Tag() == "max" {
				messages["name"] = fmt.Sprintf("Book name must be %d characters or less", MaxNameLength)
			} else {
				messages["name"] = "Book name is required"
			}
		case "Description":
			if fieldErr.Tag() == "max" {
				messages["description"] = fmt.Sprintf("Description must be %d characters or less", MaxDescriptionLength)
			} else {
				messages["description"] = "Description is required"
			}
		case "Category":
			if fieldErr.Tag() == "oneof" {
				messages["category"] = fmt.Sprintf("Category must be one of: %s", strings.Join(Categories, ", "))
			} else {
				messages["category"] = "Category is required"
			}
		}
	}
	return messages
}

// CreateInput returns the create payload, or the field errors blocking
// submission.
func (f BookForm) CreateInput() (book.CreateInput, map[string]string) {
	if messages := f.Validate(); len(messages) > 0 {
		return book.CreateInput{}, messages
	}
	return book.CreateInput{
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
	}, nil
}

// UpdateInput returns the edit payload, or the field errors blocking
// submission. The form always submits all three fields.
func (f BookForm) UpdateInput() (book.UpdateInput, map[string]string) {
	if messages := f.Validate(); len(messages) > 0 {
		return book.UpdateInput{}, messages
	}
	name, description, category := f.Name, f.Description, f.Category
	return book.UpdateInput{
		Name:        &name,
		Description: &description,
		Category:    &category,
	}, nil
}

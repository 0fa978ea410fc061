package v1

import (
	"strings"

	"github.com/go-playground/validator"
)

// ID identifies a recipe for its whole lifetime
type ID string

func (id ID) String() string { return string(id) }

// Short is the tail of the ID, which is the random part of a UUIDv7
func (id ID) Short() string {
	s := string(id)
	if len(s) > 8 {
		return s[len(s)-8:]
	}
	return s
}

var (
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	// required alone accepts "   "
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

package binder

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// dateValidator accepts calendar dates in the form YYYY-MM-DD, and the empty
// string so that optional dates can be cleared. Pair it with `required` when a
// date must be present.
func dateValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

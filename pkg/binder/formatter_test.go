package binder

import (
	"reflect"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldError is a hand-built validator.FieldError so every tag and kind
// combination can be formatted without a struct to trigger it.
type fieldError struct {
	tag, field, param string
	kind              reflect.Kind
}

func (e fieldError) Error() string                    { return e.tag + " failed on " + e.field }
func (e fieldError) Tag() string                      { return e.tag }
func (e fieldError) ActualTag() string                { return e.tag }
func (e fieldError) Namespace() string                { return e.field }
func (e fieldError) StructNamespace() string          { return e.field }
func (e fieldError) Field() string                    { return e.field }
func (e fieldError) StructField() string              { return e.field }
func (e fieldError) Value() interface{}               { return nil }
func (e fieldError) Param() string                    { return e.param }
func (e fieldError) Kind() reflect.Kind               { return e.kind }
func (e fieldError) Type() reflect.Type               { return nil }
func (e fieldError) Translate(_ ut.Translator) string { return e.Error() }

func TestFormatValidationError(t *testing.T) {
	cases := []struct {
		fe  fieldError
		msg string
	}{
		{fieldError{required, "first_name", "", reflect.String}, `"first_name" is required`},
		{fieldError{required, "genre_ids", "", reflect.Slice}, `"genre_ids" is required`},
		{fieldError{mx, "last_name", "100", reflect.String}, `"last_name" length must be less than or equal to 100 characters`},
		{fieldError{mx, "isbn", "1", reflect.String}, `"isbn" length must be less than or equal to 1 character`},
		{fieldError{mn, "title", "2", reflect.String}, `"title" length must be greater than or equal to 2 characters`},
		{fieldError{mx, "genre_ids", "5", reflect.Slice}, `"genre_ids" length must be less than or equal to 5 elements`},
		{fieldError{mn, "genre_ids", "1", reflect.Slice}, `"genre_ids" length must be greater than or equal to 1 element`},
		{fieldError{mx, "author_id", "50", reflect.Int}, `"author_id" must be less than or equal to 50`},
		{fieldError{mn, "language_id", "1", reflect.Int64}, `"language_id" must be greater than or equal to 1`},
		{fieldError{mn, "copies", "0", reflect.Float64}, `"copies" must be greater than or equal to 0`},
		{fieldError{gt, "book_id", "0", reflect.Int}, `"book_id" must be greater than 0`},
		{fieldError{gte, "book_id", "1", reflect.Int}, `"book_id" must be greater than or equal to 1`},
		{fieldError{date, "due_back", "", reflect.String}, `"due_back" should be in the format of YYYY-MM-DD`},
		{
			fieldError{oneof, "status", "available maintenance on-loan reserved", reflect.String},
			`"status" must be one of the following: "available", "maintenance", "on-loan", "reserved"`,
		},
		{fieldError{"uuid4", "id", "", reflect.String}, `"id" is invalid`},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.msg, formatValidationError(tt.fe), tt.fe.Error())
	}
}

func TestFormatValidationError_FromValidator(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	type instance struct {
		Imprint string  `json:"imprint" validate:"required,max=200"`
		DueBack *string `json:"due_back" validate:"omitempty,date"`
		Status  string  `json:"status" validate:"required,oneof=available reserved"`
	}
	due := "2026-13-01"
	err = b.validate.Struct(instance{DueBack: &due, Status: "lost"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, formatValidationError(fe))
	}
	assert.Equal(t, []string{
		`"imprint" is required`,
		`"due_back" should be in the format of YYYY-MM-DD`,
		`"status" must be one of the following: "available", "reserved"`,
	}, msgs)
}

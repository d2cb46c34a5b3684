package errcodes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestViolations_EmptyIsNil(t *testing.T) {
	var v Violations
	v.Add(nil)

	assert.Equal(t, 0, v.Len())
	assert.NoError(t, v.Err())
}

func TestViolations_KeepsOrder(t *testing.T) {
	var v Violations
	v.Addf("author_id", "references unknown author %d", 7)
	v.Add(ValidationError(`"date_of_birth" should be in the format of YYYY-MM-DD`))
	v.Addf("genre_ids", "references unknown genre %d", 4)

	err := v.Err()
	assert.Equal(t, 3, v.Len())
	assert.True(t, errors.Is(err, ValidationError(
		`"author_id" references unknown author 7; "date_of_birth" should be in the format of YYYY-MM-DD; "genre_ids" references unknown genre 4`,
	)))
}

package authors

import (
	"github.com/locallibrary/catalog/pkg/dates"
	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/locallibrary/catalog/pkg/models"
)

type AuthorOut struct {
	ID          int     `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death"`
}

func ToAuthorOut(author *models.Author) AuthorOut {
	return AuthorOut{
		ID:          author.ID,
		FirstName:   author.FirstName,
		LastName:    author.LastName,
		DateOfBirth: dates.Format(author.DateOfBirth),
		DateOfDeath: dates.Format(author.DateOfDeath),
	}
}

func ToAuthorOuts(authors []*models.Author) []AuthorOut {
	out := make([]AuthorOut, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToAuthorOut(a))
	}
	return out
}

// FromAuthorIn builds the writable fields of an author from a bound payload.
// A death date before the birth date is rejected.
func FromAuthorIn(in AuthorIn) (*models.Author, error) {
	var v errcodes.Violations

	born, err := dates.Parse("date_of_birth", in.DateOfBirth)
	v.Add(err)
	died, err := dates.Parse("date_of_death", in.DateOfDeath)
	v.Add(err)
	if born != nil && died != nil && died.Before(*born) {
		v.Addf("date_of_death", "must not be before %q", "date_of_birth")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return &models.Author{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: born,
		DateOfDeath: died,
	}, nil
}

package bookinstances

import (
	"github.com/locallibrary/catalog/pkg/dates"
	"github.com/locallibrary/catalog/pkg/models"
)

type BookInstanceOut struct {
	ID      string  `json:"id"`
	BookID  int     `json:"book_id"`
	Imprint string  `json:"imprint"`
	DueBack *string `json:"due_back"`
	Status  string  `json:"status"`
}

func ToBookInstanceOut(instance *models.BookInstance) BookInstanceOut {
	return BookInstanceOut{
		ID:      instance.ID,
		BookID:  instance.BookID,
		Imprint: instance.Imprint,
		DueBack: dates.Format(instance.DueBack),
		Status:  instance.Status,
	}
}

func ToBookInstanceOuts(instances []*models.BookInstance) []BookInstanceOut {
	out := make([]BookInstanceOut, 0, len(instances))
	for _, i := range instances {
		out = append(out, ToBookInstanceOut(i))
	}
	return out
}

// FromBookInstanceIn builds the writable fields of an instance from a bound
// payload. The id is left empty.
func FromBookInstanceIn(in BookInstanceIn) (*models.BookInstance, error) {
	dueBack, err := dates.Parse("due_back", in.DueBack)
	if err != nil {
		return nil, err
	}
	return &models.BookInstance{
		BookID:  in.BookID,
		Imprint: in.Imprint,
		DueBack: dueBack,
		Status:  in.Status,
	}, nil
}

package books

type BookIn struct {
	Title      string `json:"title" mod:"trim" validate:"required,max=200"`
	AuthorID   int    `json:"author_id" validate:"required"`
	Summary    string `json:"summary" mod:"trim" validate:"max=1000"`
	ISBN       string `json:"isbn" mod:"trim" validate:"required,max=13"`
	GenreIDs   []int  `json:"genre_ids" validate:"required"`
	LanguageID int    `json:"language_id" validate:"required"`
}

package bookinstances

type BookInstanceIn struct {
	BookID  int     `json:"book_id" validate:"required"`
	Imprint string  `json:"imprint" mod:"trim" validate:"required,max=200"`
	DueBack *string `json:"due_back" mod:"trim" validate:"omitempty,date"`
	Status  string  `json:"status" mod:"trim" validate:"required,oneof=available maintenance on-loan reserved"`
}

package authors

type AuthorIn struct {
	FirstName   string  `json:"first_name" mod:"trim" validate:"required,max=100"`
	LastName    string  `json:"last_name" mod:"trim" validate:"required,max=100"`
	DateOfBirth *string `json:"date_of_birth" mod:"trim" validate:"omitempty,date"`
	DateOfDeath *string `json:"date_of_death" mod:"trim" validate:"omitempty,date"`
}

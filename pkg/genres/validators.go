package genres

type GenreIn struct {
	Name string `json:"name" mod:"trim" validate:"required,max=200"`
}

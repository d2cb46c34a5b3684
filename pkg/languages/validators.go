package languages

type LanguageIn struct {
	Name string `json:"name" mod:"trim" validate:"required,max=200"`
}

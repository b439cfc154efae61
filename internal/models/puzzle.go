package models

// Puzzle is one day's picture and its answer
type Puzzle struct {
	// Answer is the word to guess
	Answer string `json:"answer" validate:"required,alphanum,max=12"`

	// Title is shown on the welcome screen
	Title string `json:"title"`

	// Art is the picture as rows of ASCII characters
	Art []string `json:"art" validate:"required,min=1,dive,max=60"`
}

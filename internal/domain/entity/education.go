package entity

// EcoTip is a fixed educational tip. The daily tip is picked from the
// ordered tip list by day of year.
type EcoTip struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Impact     string `json:"impact"`
	Icon       string `json:"icon"`
}

// FAQ is a fixed question/answer entry.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswer indexes into
// Options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Category      string   `json:"category"`
	Points        int      `json:"points"`
}

package model

// Record represents a single parsed log line.
type Record struct {
	DateTime string `json:"date_time"` // "<date> <time>" joined with one space
	Level    string `json:"level"`     // severity token, stored verbatim
	Text     string `json:"text"`      // message words rejoined with single spaces
}

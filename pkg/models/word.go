package models

// Word is one entry of the German-Persian word bank.
type Word struct {
	ID      int    `json:"id" db:"id"`
	German  string `json:"de" db:"german"`
	Persian string `json:"fa" db:"persian"`
	Level   string `json:"lvl" db:"level"`
}

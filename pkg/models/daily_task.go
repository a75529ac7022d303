package models

// Daily task modes.
const (
	TaskModeMCQ = "mcq"
	TaskModeGap = "gap"
)

// DailyTask is one generated daily-challenge item. For mcq tasks Options and
// Answer are set; for gap tasks Expected holds the normalized solution.
// Training tasks run through the same mechanics but never count toward the
// daily gate.
type DailyTask struct {
	Mode     string   `json:"mode"`
	Level    string   `json:"level,omitempty"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options,omitempty"`
	Answer   int      `json:"answer,omitempty"`
	Expected string   `json:"expected,omitempty"`
	WordID   int      `json:"word_id,omitempty"`
	Training bool     `json:"training,omitempty"`
}

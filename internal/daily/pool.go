package daily

import "github.com/example/deutschbuddy/pkg/models"

// DefaultVocabPool is the built-in vocabulary pool for daily challenges.
var DefaultVocabPool = []models.Word{
	{ID: 101, German: "die Vereinbarung", Persian: "توافق", Level: "B2"},
	{ID: 102, German: "verlässlich", Persian: "قابل اتکا", Level: "B2"},
	{ID: 103, German: "die Fähigkeit", Persian: "توانایی", Level: "B1"},
	{ID: 104, German: "umweltfreundlich", Persian: "سازگار با محیط زیست", Level: "B1"},
	{ID: 105, German: "stattfinden", Persian: "برگزار شدن", Level: "B1"},
	{ID: 106, German: "ermöglichen", Persian: "امکان‌پذیر کردن", Level: "B2"},
}

// DefaultGapPool is the built-in fill-in-the-blank pool.
var DefaultGapPool = []GapSentence{
	{Prompt: "Ich ____ seit zwei Jahren Deutsch.", Answer: "lerne", Level: "A1"},
	{Prompt: "Wir ____ am Wochenende ins Kino.", Answer: "gehen", Level: "A1"},
	{Prompt: "Das Konzert ____ morgen statt.", Answer: "findet", Level: "B1"},
}

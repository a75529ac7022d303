package words

import "github.com/example/deutschbuddy/pkg/models"

// Seed is the starter word bank loaded into an empty database.
var Seed = []models.Word{
	{German: "die Erfahrung", Persian: "تجربه", Level: "B1"},
	{German: "umweltfreundlich", Persian: "سازگار با محیط زیست", Level: "B1"},
	{German: "die Vereinbarung", Persian: "توافق", Level: "B2"},
	{German: "die Voraussetzung", Persian: "پیش‌نیاز", Level: "B2"},
	{German: "sich bewerben", Persian: "درخواست دادن (شغل/تحصیل)", Level: "B1"},
	{German: "die Gelegenheit", Persian: "فرصت", Level: "B1"},
	{German: "nachhaltig", Persian: "پایدار (سازگار با محیط‌زیست)", Level: "B2"},
	{German: "verfügbar", Persian: "در دسترس", Level: "B1"},
	{German: "stattfinden", Persian: "برگزار شدن", Level: "B1"},
	{German: "beeinflussen", Persian: "تحت‌تأثیر قرار دادن", Level: "B2"},
	{German: "die Fähigkeit", Persian: "توانایی", Level: "B1"},
	{German: "verlässlich", Persian: "قابل اتکا", Level: "B2"},
	{German: "die Herausforderung", Persian: "چالش", Level: "B2"},
	{German: "der Aufenthalt", Persian: "اقامت", Level: "B1"},
	{German: "ermöglichen", Persian: "امکان‌پذیر کردن", Level: "B2"},
	{German: "vorbereiten", Persian: "آماده کردن/شدن", Level: "A2"},
	{German: "die Lösung", Persian: "راه‌حل", Level: "B1"},
	{German: "plötzlich", Persian: "ناگهان", Level: "A2"},
	{German: "die Erfahrung sammeln", Persian: "کسب تجربه", Level: "B1"},
	{German: "sich erinnern (an)", Persian: "به یاد آوردن", Level: "B1"},
}

package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScript(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Vereinbarung", "DE"},
		{"sich bewerben", "DE"},
		{"توافق", "FA"},
		{"کلمه Vereinbarung", "FA"},
		{"", "DE"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DetectScript(tc.query), "query %q", tc.query)
	}
}

func TestCoerceJSONDirect(t *testing.T) {
	raw := `{"headword":"die Lösung","lang":"DE","pos":"noun","gender":"f","senses":[{"gloss":"solution","translations":["راه‌حل"]}]}`
	entry, ok := coerceJSON(raw)
	require.True(t, ok)
	assert.Equal(t, "die Lösung", entry.Headword)
	require.Len(t, entry.Senses, 1)
	assert.Equal(t, []string{"راه‌حل"}, entry.Senses[0].Translations)
}

func TestCoerceJSONExtractsTrailingBlock(t *testing.T) {
	raw := "Sure, here is the entry:\n{\"headword\":\"plötzlich\",\"lang\":\"DE\",\"pos\":\"adv\"}"
	entry, ok := coerceJSON(raw)
	require.True(t, ok)
	assert.Equal(t, "plötzlich", entry.Headword)
	assert.Equal(t, "adv", entry.POS)
}

func TestCoerceJSONRejectsProse(t *testing.T) {
	_, ok := coerceJSON("I could not find that word.")
	assert.False(t, ok)

	_, ok = coerceJSON("broken {not json")
	assert.False(t, ok)
}

func TestFormatEntry(t *testing.T) {
	entry := &DictEntry{
		Headword: "die Gelegenheit",
		Lang:     "DE",
		POS:      "noun",
		Gender:   "f",
		Senses: []Sense{
			{
				Gloss:        "opportunity",
				Translations: []string{"فرصت"},
				ExampleDE:    "Das ist eine gute Gelegenheit.",
				ExampleFA:    "این یک فرصت خوب است.",
			},
		},
	}

	out := entry.Format()
	assert.Contains(t, out, "*die Gelegenheit*")
	assert.Contains(t, out, "🇩🇪")
	assert.Contains(t, out, "noun · f")
	assert.Contains(t, out, "فرصت")
	assert.Contains(t, out, "Das ist eine gute Gelegenheit.")
}

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Sense is one meaning of a dictionary entry.
type Sense struct {
	Gloss        string   `json:"gloss"`
	Translations []string `json:"translations"`
	ExampleDE    string   `json:"example_de"`
	ExampleFA    string   `json:"example_fa"`
}

// DictEntry is a structured bilingual dictionary entry.
type DictEntry struct {
	Headword      string  `json:"headword"`
	Lang          string  `json:"lang"`
	POS           string  `json:"pos"`
	Gender        string  `json:"gender"`
	PluralOrForms string  `json:"plural_or_forms"`
	Pronunciation string  `json:"pronunciation"`
	Senses        []Sense `json:"senses"`
}

const dictionarySystemPrompt = "You are a precise DE<->FA lexicographer. Always respond as strict, valid JSON (UTF-8, no code fences). " +
	"Schema:\n" +
	"{" +
	"  'headword': str, 'lang': 'DE'|'FA', 'pos': str, 'gender': str|null, " +
	"  'plural_or_forms': str|null, 'pronunciation': str|null, " +
	"  'senses': [ {'gloss': str, 'translations': [str], 'example_de': str, 'example_fa': str} ]" +
	"}\n" +
	"Guidelines:\n" +
	"- If input is German, translate to FA; if input is Persian, translate to DE.\n" +
	"- Provide 2-4 concise senses where possible.\n" +
	"- Include part of speech (pos), gender for nouns (m/f/n) when applicable; forms briefly for verbs/nouns.\n" +
	"- Include one short German example with a natural FA translation for each sense.\n" +
	"- Output must be pure JSON. No markdown, no extra text."

var (
	persianScript = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
	jsonBlock     = regexp.MustCompile(`\{[\s\S]*\}\s*$`)
)

// DetectScript returns "FA" when the query contains Persian or Arabic
// script, "DE" otherwise.
func DetectScript(q string) string {
	if persianScript.MatchString(q) {
		return "FA"
	}
	return "DE"
}

// coerceJSON parses the model output as JSON, falling back to the last
// brace-delimited block when the model wrapped the document in prose.
func coerceJSON(raw string) (*DictEntry, bool) {
	raw = strings.TrimSpace(raw)

	var entry DictEntry
	if err := json.Unmarshal([]byte(raw), &entry); err == nil {
		return &entry, true
	}
	block := jsonBlock.FindString(raw)
	if block == "" {
		return nil, false
	}
	if err := json.Unmarshal([]byte(block), &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func buildDictPrompt(q, lang string) string {
	if lang == "DE" {
		return fmt.Sprintf(
			"Lookup headword: %s\n"+
				"Input language: DE. Output JSON in the schema above, with Persian translations in 'translations'. "+
				"For verbs include basic forms; for nouns include gender and plural when relevant.", q)
	}
	return fmt.Sprintf(
		"Lookup headword: %s\n"+
			"Input language: FA. Output JSON in the schema above, with German equivalents in 'translations'. "+
			"Choose natural DE equivalents; keep senses concise.", q)
}

// Format renders the entry as a Markdown card.
func (d *DictEntry) Format() string {
	head := orDash(d.Headword)
	flag := "🇮🇷"
	if d.Lang == "DE" {
		flag = "🇩🇪"
	}

	lines := []string{fmt.Sprintf("🔎 *%s* %s", head, flag)}

	meta := []string{orDash(d.POS)}
	if d.Gender != "" {
		meta = append(meta, d.Gender)
	}
	if d.PluralOrForms != "" {
		meta = append(meta, d.PluralOrForms)
	}
	if d.Pronunciation != "" {
		meta = append(meta, "/"+d.Pronunciation+"/")
	}
	lines = append(lines, "— "+strings.Join(meta, " · "))

	if len(d.Senses) > 0 {
		lines = append(lines, "\n*معانی / Senses:*")
		for i, s := range d.Senses {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, orDash(s.Gloss)))
			if len(s.Translations) > 0 {
				lines = append(lines, "   ↔️ "+strings.Join(s.Translations, ", "))
			}
			if s.ExampleDE != "" && s.ExampleFA != "" {
				lines = append(lines, "   📝 "+s.ExampleDE)
				lines = append(lines, "   🔁 "+s.ExampleFA)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Lookup asks the model for a dictionary entry and returns a formatted
// card. When the model fails to produce valid JSON the raw reply is
// returned as-is.
func (c *Client) Lookup(ctx context.Context, query string) (string, error) {
	lang := DetectScript(query)
	raw, err := c.Complete(ctx, []Message{
		{Role: RoleSystem, Content: dictionarySystemPrompt},
		{Role: RoleUser, Content: buildDictPrompt(query, lang)},
	}, 0.2)
	if err != nil {
		return "", err
	}

	if entry, ok := coerceJSON(raw); ok {
		return entry.Format(), nil
	}
	return raw, nil
}

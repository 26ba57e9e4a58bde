package expenses

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Draft is an expense extracted from free text, before it is stored.
type Draft struct {
	Amount      float64
	Category    string
	Description string
}

const (
	maxDescription = 50
	truncatedTo    = 47
)

var (
	amountRe = regexp.MustCompile(`(?i)(?:rs|inr)\.?\s?(\d+(?:\.\d+)?)`)
	itemRe   = regexp.MustCompile(`(?i)\w+\s+for\s+(?:lunch|dinner|breakfast)|(?:ate|bought|had|ordered)\s+\w+(?:\s+\w+){0,3}`)

	categoryRules = []struct {
		name string
		re   *regexp.Regexp
	}{
		{"Food", regexp.MustCompile(`(?i)food|restaurant|cafe|dining|lunch|dinner|breakfast|eat|meal|snack`)},
		{"Transport", regexp.MustCompile(`(?i)uber|ola|taxi|cab|auto|transport|travel|flight|train|bus`)},
		{"Entertainment", regexp.MustCompile(`(?i)movie|entertainment|show|concert|theater|cinema`)},
		{"Groceries", regexp.MustCompile(`(?i)grocery|supermarket|mart|store|shop|market`)},
		{"Bills", regexp.MustCompile(`(?i)bill|utility|electricity|water|gas|internet|phone`)},
	}
)

// ParseSMS extracts amount, category and description from a transaction
// message. Matching is substring based and case-insensitive; the first
// category rule that matches wins, otherwise the category is Other.
func ParseSMS(text string) Draft {
	d := Draft{Category: "Other"}

	if m := amountRe.FindStringSubmatch(text); m != nil {
		d.Amount, _ = strconv.ParseFloat(m[1], 64)
	}
	for _, rule := range categoryRules {
		if rule.re.MatchString(text) {
			d.Category = rule.name
			break
		}
	}

	if item := itemRe.FindString(text); item != "" {
		d.Description = item
		return d
	}
	desc := text
	if loc := amountRe.FindStringIndex(text); loc != nil {
		desc = text[:loc[0]] + text[loc[1]:]
	}
	desc = strings.TrimSpace(desc)
	if utf8.RuneCountInString(desc) > maxDescription {
		desc = string([]rune(desc)[:truncatedTo]) + "..."
	}
	d.Description = desc
	return d
}

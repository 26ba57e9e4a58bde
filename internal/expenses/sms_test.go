package expenses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSMS(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Draft
	}{
		{"meal phrase", "Paid Rs. 250 for lunch at cafe", Draft{250, "Food", "250 for lunch"}},
		{"bill fallback", "INR 1200 debited for electricity bill", Draft{1200, "Bills", "debited for electricity bill"}},
		{"decimal transport", "Rs 99.50 spent at uber", Draft{99.5, "Transport", "spent at uber"}},
		{"nothing recognised", "hello", Draft{0, "Other", "hello"}},
		{"bought item", "rs.40 bought two samosas today", Draft{40, "Other", "bought two samosas today"}},
		{"cinema", "Spent INR 500 on cinema tickets", Draft{500, "Entertainment", "Spent  on cinema tickets"}},
		{"grocery", "RS 75 at supermarket", Draft{75, "Groceries", "at supermarket"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSMS(tc.text))
		})
	}
}

func TestParseSMSTruncatesLongDescriptions(t *testing.T) {
	text := "Rs 10 " + strings.Repeat("x", 60)
	d := ParseSMS(text)
	assert.Equal(t, 10.0, d.Amount)
	assert.Equal(t, strings.Repeat("x", 47)+"...", d.Description)
	assert.Equal(t, 50, len([]rune(d.Description)))

	exact := strings.Repeat("y", 50)
	assert.Equal(t, exact, ParseSMS(exact).Description)
}

func TestParseSMSTruncatesByRune(t *testing.T) {
	d := ParseSMS(strings.Repeat("é", 51))
	assert.Equal(t, strings.Repeat("é", 47)+"...", d.Description)
}

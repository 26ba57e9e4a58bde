// Package expenses records spending, including entries parsed from bank SMS
// text, and reports totals.
package expenses

import (
	"encoding/json"
	"fmt"
	"time"
)

type Expense struct {
	ID          string    `bson:"_id" json:"_id"`
	Date        time.Time `bson:"date" json:"date"`
	Description string    `bson:"description" json:"description"`
	Amount      float64   `bson:"amount" json:"amount"`
	Category    string    `bson:"category" json:"category"`
}

// CategoryTotal is one row of the per-category aggregate.
type CategoryTotal struct {
	Category string  `bson:"_id" json:"_id"`
	Total    float64 `bson:"total" json:"total"`
}

// InputDate is a request date given either as an RFC 3339 timestamp or as a
// plain "2006-01-02" day.
type InputDate struct {
	time.Time
}

func (d *InputDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

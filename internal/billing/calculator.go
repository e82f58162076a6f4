package billing

import (
	"strconv"
	"strings"
)

// ItemInput is a raw line item as submitted by the client. Quantity and
// rate arrive as text because the bill form posts free-text fields.
type ItemInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
}

// Item is a retained line item with its computed amount.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// Result holds the computed totals for a bill.
type Result struct {
	Items     []Item  `json:"items"`
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
	// Skipped counts rows dropped for a blank name or an unparsable
	// quantity/rate. Dropping is deliberate lenience, not an error.
	Skipped int `json:"skipped"`
}

// Calculate computes line amounts, subtotal, tax and total from raw form
// rows. Rows with a blank name are dropped. An empty quantity or rate
// counts as zero; a non-numeric or negative value drops the whole row.
// The result is deterministic and an empty input yields all zeros.
func Calculate(rows []ItemInput, taxEnabled bool, taxPercent float64) Result {
	res := Result{Items: []Item{}}

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			res.Skipped++
			continue
		}

		qty, ok := parseAmountField(row.Quantity)
		if !ok {
			res.Skipped++
			continue
		}
		rate, ok := parseAmountField(row.Rate)
		if !ok {
			res.Skipped++
			continue
		}

		amount := qty * rate
		res.Items = append(res.Items, Item{
			Name:     name,
			Quantity: qty,
			Rate:     rate,
			Amount:   amount,
		})
		res.Subtotal += amount
	}

	if taxEnabled {
		res.TaxAmount = res.Subtotal * taxPercent / 100
	}
	res.Total = res.Subtotal + res.TaxAmount

	return res
}

func parseAmountField(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

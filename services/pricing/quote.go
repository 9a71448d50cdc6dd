package pricing

import (
	"math"

	"shootflow/models"
)

// ComputeQuote aggregates the selected services into a running quote. Each
// line's price is resolved against the property's square footage and any
// manual override, summed into the base quote.
//
// Tax is base times rate unless manualTax is set; a hand-entered tax amount
// stays authoritative across service-set changes until the caller clears the
// flag. This mirrors how the booking form behaves when an admin edits the
// tax field directly.
func ComputeQuote(lines []models.QuoteLine, sqft *float64, taxRate float64, manualTax bool, manualTaxAmount float64) models.Quote {
	q := models.Quote{TaxManual: manualTax}

	for _, line := range lines {
		res := ResolvePrice(line.Service, sqft, line.Override)
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		q.Lines = append(q.Lines, models.SelectedService{
			ServiceID:       line.Service.ID,
			Name:            line.Service.Name,
			ResolvedPrice:   res.Price,
			Quantity:        qty,
			PhotographerPay: res.PhotographerPay,
			PriceOverridden: res.HasOverride,
			CategoryID:      line.Service.CategoryID,
		})
		q.BaseQuote += res.Price * float64(qty)
	}

	if manualTax {
		q.TaxAmount = manualTaxAmount
	} else {
		q.TaxAmount = round2(q.BaseQuote * taxRate)
	}
	q.TotalQuote = q.BaseQuote + q.TaxAmount
	return q
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

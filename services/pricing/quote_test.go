package pricing

import (
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedService(id string, price float64) models.Service {
	return models.Service{ID: id, Name: id, PricingType: models.PricingFixed, Price: price}
}

func TestComputeQuoteAutoTax(t *testing.T) {
	lines := []models.QuoteLine{
		{Service: fixedService("svc-a", 100), Quantity: 1},
	}

	q := ComputeQuote(lines, nil, 0.08, false, 0)
	assert.Equal(t, 100.0, q.BaseQuote)
	assert.Equal(t, 8.0, q.TaxAmount)
	assert.Equal(t, 108.0, q.TotalQuote)
	assert.False(t, q.TaxManual)
}

func TestComputeQuoteManualTaxSurvivesServiceChanges(t *testing.T) {
	lines := []models.QuoteLine{
		{Service: fixedService("svc-a", 100), Quantity: 1},
	}

	// Admin edits the tax field to $5.
	q := ComputeQuote(lines, nil, 0.08, true, 5)
	assert.Equal(t, 5.0, q.TaxAmount)
	assert.Equal(t, 105.0, q.TotalQuote)
	assert.True(t, q.TaxManual)

	// Adding a $50 service must not recompute the tax.
	lines = append(lines, models.QuoteLine{Service: fixedService("svc-b", 50), Quantity: 1})
	q = ComputeQuote(lines, nil, 0.08, true, 5)
	assert.Equal(t, 150.0, q.BaseQuote)
	assert.Equal(t, 5.0, q.TaxAmount)
	assert.Equal(t, 155.0, q.TotalQuote)
}

func TestComputeQuoteClearedManualTaxRecomputes(t *testing.T) {
	lines := []models.QuoteLine{
		{Service: fixedService("svc-a", 100), Quantity: 1},
		{Service: fixedService("svc-b", 50), Quantity: 1},
	}

	q := ComputeQuote(lines, nil, 0.08, false, 0)
	assert.Equal(t, 12.0, q.TaxAmount)
	assert.Equal(t, 162.0, q.TotalQuote)
}

func TestComputeQuoteQuantityDefaultsToOne(t *testing.T) {
	lines := []models.QuoteLine{
		{Service: fixedService("svc-a", 40), Quantity: 0},
		{Service: fixedService("svc-b", 40), Quantity: 3},
	}

	q := ComputeQuote(lines, nil, 0, false, 0)
	require.Len(t, q.Lines, 2)
	assert.Equal(t, 1, q.Lines[0].Quantity)
	assert.Equal(t, 3, q.Lines[1].Quantity)
	assert.Equal(t, 160.0, q.BaseQuote)
}

func TestComputeQuoteResolvesVariablePricesAndOverrides(t *testing.T) {
	svc := models.Service{
		ID:          "svc-hdr",
		Name:        "HDR Photography",
		PricingType: models.PricingVariable,
		Price:       99,
		SqftRanges: []models.SqftRange{
			{SqftFrom: 0, SqftTo: 2000, Price: 180, PhotographerPay: 70},
		},
	}
	sqft := 1400.0
	lines := []models.QuoteLine{
		{Service: svc, Quantity: 1},
		{Service: fixedService("svc-drone", 150), Quantity: 1, Override: "120"},
	}

	q := ComputeQuote(lines, &sqft, 0.1, false, 0)
	require.Len(t, q.Lines, 2)
	assert.Equal(t, 180.0, q.Lines[0].ResolvedPrice)
	assert.Equal(t, 70.0, q.Lines[0].PhotographerPay)
	assert.False(t, q.Lines[0].PriceOverridden)
	assert.Equal(t, 120.0, q.Lines[1].ResolvedPrice)
	assert.True(t, q.Lines[1].PriceOverridden)
	assert.Equal(t, 300.0, q.BaseQuote)
	assert.Equal(t, 30.0, q.TaxAmount)
}

func TestComputeQuoteTaxRounding(t *testing.T) {
	lines := []models.QuoteLine{
		{Service: fixedService("svc-a", 33.33), Quantity: 1},
	}

	q := ComputeQuote(lines, nil, 0.0825, false, 0)
	assert.Equal(t, 2.75, q.TaxAmount)
}

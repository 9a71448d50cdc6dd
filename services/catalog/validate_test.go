package catalog

import (
	"testing"

	"shootflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validVariableService() *models.Service {
	return &models.Service{
		Name:        "HDR Photography",
		PricingType: models.PricingVariable,
		Price:       99,
		SqftRanges: []models.SqftRange{
			{SqftFrom: 0, SqftTo: 1500, Price: 150},
			{SqftFrom: 1501, SqftTo: 3000, Price: 200},
		},
	}
}

func TestValidateServiceAcceptsWellFormed(t *testing.T) {
	require.NoError(t, ValidateService(validVariableService()))

	fixed := &models.Service{Name: "Drone Photos", PricingType: models.PricingFixed, Price: 175}
	require.NoError(t, ValidateService(fixed))
}

func TestValidateServiceRequiresNameAndPricingType(t *testing.T) {
	svc := validVariableService()
	svc.Name = ""
	assert.Error(t, ValidateService(svc))

	svc = validVariableService()
	svc.PricingType = "hourly"
	assert.Error(t, ValidateService(svc))

	svc = validVariableService()
	svc.Price = -1
	assert.Error(t, ValidateService(svc))
}

func TestValidateServicePhotoCountAndQuantityExclusive(t *testing.T) {
	svc := validVariableService()
	svc.PhotoCount = intPtr(25)
	require.NoError(t, ValidateService(svc))

	svc.Quantity = intPtr(2)
	assert.Error(t, ValidateService(svc))
}

func TestValidateServiceRejectsOverlappingRanges(t *testing.T) {
	svc := validVariableService()
	svc.SqftRanges = []models.SqftRange{
		{SqftFrom: 0, SqftTo: 1500, Price: 150},
		{SqftFrom: 1500, SqftTo: 3000, Price: 200}, // shares 1500
	}
	err := ValidateService(svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")

	// Order of declaration must not matter.
	svc.SqftRanges = []models.SqftRange{
		{SqftFrom: 2000, SqftTo: 4000, Price: 250},
		{SqftFrom: 0, SqftTo: 2500, Price: 150},
	}
	assert.Error(t, ValidateService(svc))
}

func TestValidateServiceRejectsMalformedRanges(t *testing.T) {
	svc := validVariableService()
	svc.SqftRanges = []models.SqftRange{{SqftFrom: -5, SqftTo: 100, Price: 10}}
	assert.Error(t, ValidateService(svc))

	svc.SqftRanges = []models.SqftRange{{SqftFrom: 500, SqftTo: 100, Price: 10}}
	assert.Error(t, ValidateService(svc))

	svc.SqftRanges = []models.SqftRange{{SqftFrom: 0, SqftTo: 100, Price: -10}}
	assert.Error(t, ValidateService(svc))
}

func TestValidateServiceFixedIgnoresRanges(t *testing.T) {
	svc := &models.Service{
		Name:        "Twilight",
		PricingType: models.PricingFixed,
		Price:       120,
		SqftRanges: []models.SqftRange{
			{SqftFrom: 0, SqftTo: 1500, Price: 150},
			{SqftFrom: 1000, SqftTo: 3000, Price: 200}, // overlapping, but unused
		},
	}
	assert.NoError(t, ValidateService(svc))
}

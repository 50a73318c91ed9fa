package delivery_eta

import (
	"time"

	"dispatch/internal/entities"
)

type ETAFactory struct{}

func New() *ETAFactory {
	return &ETAFactory{}
}

// CalculateExpectedDelivery is the customer-facing promise: the pickup
// lead time requested by the store plus the worst-case ETA the chosen
// company quotes for the area.
func (f *ETAFactory) CalculateExpectedDelivery(terms entities.CompanyTerms, leadMinutes int64, baseTime time.Time) time.Time {
	return baseTime.
		Add(time.Duration(leadMinutes) * time.Minute).
		Add(time.Duration(terms.MaxETAMinutes) * time.Minute)
}

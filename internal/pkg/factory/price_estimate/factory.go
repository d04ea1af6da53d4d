package price_estimate

// PriceFactory computes the upfront price estimate shown to the requester
// at errand creation. Not a payment amount, just a heuristic.
type PriceFactory struct {
	baseFare  float64
	ratePerKm float64
}

const (
	defaultBaseFare  = 500.0
	defaultRatePerKm = 150.0
)

func New() *PriceFactory {
	return &PriceFactory{
		baseFare:  defaultBaseFare,
		ratePerKm: defaultRatePerKm,
	}
}

func (f *PriceFactory) CalculatePrice(distanceKm float64) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return f.baseFare + f.ratePerKm*distanceKm
}

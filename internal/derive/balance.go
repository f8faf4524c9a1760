package derive

import (
	"math"

	"github.com/MKhiriev/aion/models"
)

// OverallBalance returns the rounded mean score across all life domains,
// or 0 when no domains are recorded. Individual scores are taken as stored;
// clamping to 0-100 is left to whoever rendered them.
func OverallBalance(domains []models.LifeDomain) int {
	if len(domains) == 0 {
		return 0
	}

	sum := 0
	for _, domain := range domains {
		sum += domain.Score
	}

	return int(math.Round(float64(sum) / float64(len(domains))))
}

// LowestDomain returns the domain with the smallest score, preferring the
// earliest on ties. The second return is false for an empty list.
func LowestDomain(domains []models.LifeDomain) (models.LifeDomain, bool) {
	if len(domains) == 0 {
		return models.LifeDomain{}, false
	}

	lowest := domains[0]
	for _, domain := range domains[1:] {
		if domain.Score < lowest.Score {
			lowest = domain
		}
	}

	return lowest, true
}

package keywords

// Composite priority weights.
const (
	weightVolume      = 0.4
	weightCompetition = 0.3
	weightIntent      = 0.3
)

// volumeStep buckets a raw search volume into a 10-100 step score.
func volumeStep(volume int) float64 {
	switch {
	case volume >= 100000:
		return 100
	case volume >= 50000:
		return 85
	case volume >= 10000:
		return 70
	case volume >= 5000:
		return 55
	case volume >= 1000:
		return 40
	case volume >= 500:
		return 25
	case volume >= 100:
		return 15
	default:
		return 10
	}
}

// intentWeights maps each intent to its fixed priority contribution.
var intentWeights = map[Intent]float64{
	IntentTransactional: 100,
	IntentCommercial:    85,
	IntentInformational: 60,
	IntentNavigational:  30,
}

// PriorityScore combines volume, inverted competition, and intent into a
// 0-100 composite. Holding intent fixed, the score is monotonic
// non-decreasing in volume and non-increasing in competition.
func PriorityScore(volume int, competition float64, intent Intent) float64 {
	if competition < 0 {
		competition = 0
	}
	if competition > 1 {
		competition = 1
	}
	return weightVolume*volumeStep(volume) +
		weightCompetition*(1-competition)*100 +
		weightIntent*intentWeights[intent]
}

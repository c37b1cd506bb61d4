package signal

// Documented value sets for model output. The validator does not enforce
// them: a response carrying all required keys is accepted as-is, and the
// interpreter treats anything outside these sets as "no edge".
const (
	SentimentBullish = "bullish"
	SentimentBearish = "bearish"
	SentimentNeutral = "neutral"

	DirectionLong  = "long"
	DirectionShort = "short"
	DirectionFlat  = "flat"
)

// Signal is the structured judgment extracted from one headline.
// Immutable once returned by the validator.
type Signal struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Direction  string  `json:"direction"`
	Reason     string  `json:"reason"`
}

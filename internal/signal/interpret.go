package signal

import (
	"fmt"
	"strings"
)

// Disclaimer is printed after every interpreted signal.
const Disclaimer = "WARNING: this is a toy signal. Use ONLY for learning and backtesting, not live money."

const minActionableConfidence = 0.6

// Action maps a validated signal to the recommended stance. Low confidence
// and a neutral read both override whatever direction the model suggested.
func Action(s Signal) string {
	if s.Confidence < minActionableConfidence || s.Direction == DirectionFlat || s.Sentiment == SentimentNeutral {
		return "stay flat — confidence too low or neutral signal."
	}
	switch s.Direction {
	case DirectionLong:
		return "consider long position, small risk."
	case DirectionShort:
		return "consider short position, small risk."
	default:
		return "stay flat — direction unclear."
	}
}

// Render produces the user-facing block for one signal: the four fields,
// the recommended action and the disclaimer.
func Render(s Signal) string {
	var b strings.Builder
	b.WriteString("--- AI Trading Signal ---\n")
	fmt.Fprintf(&b, "Sentiment : %s\n", s.Sentiment)
	fmt.Fprintf(&b, "Direction : %s\n", s.Direction)
	fmt.Fprintf(&b, "Confidence: %.2f\n", s.Confidence)
	fmt.Fprintf(&b, "Reason    : %s\n", s.Reason)
	b.WriteString("\nSuggested action (for testing / demo only):\n")
	fmt.Fprintf(&b, "- %s\n", Action(s))
	b.WriteString("\n" + Disclaimer + "\n")
	return b.String()
}

package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionRules(t *testing.T) {
	cases := []struct {
		name string
		sig  Signal
		want string
	}{
		{
			name: "confident long",
			sig:  Signal{Sentiment: "bullish", Confidence: 0.9, Direction: "long", Reason: "x"},
			want: "consider long position, small risk.",
		},
		{
			name: "confident short",
			sig:  Signal{Sentiment: "bearish", Confidence: 0.8, Direction: "short", Reason: "x"},
			want: "consider short position, small risk.",
		},
		{
			name: "neutral overrides high confidence",
			sig:  Signal{Sentiment: "neutral", Confidence: 0.9, Direction: "long", Reason: "x"},
			want: "stay flat — confidence too low or neutral signal.",
		},
		{
			name: "low confidence overrides direction",
			sig:  Signal{Sentiment: "bearish", Confidence: 0.3, Direction: "short", Reason: "x"},
			want: "stay flat — confidence too low or neutral signal.",
		},
		{
			name: "flat direction",
			sig:  Signal{Sentiment: "bullish", Confidence: 0.9, Direction: "flat", Reason: "x"},
			want: "stay flat — confidence too low or neutral signal.",
		},
		{
			name: "unknown direction",
			sig:  Signal{Sentiment: "bullish", Confidence: 0.9, Direction: "up", Reason: "x"},
			want: "stay flat — direction unclear.",
		},
		{
			name: "boundary confidence is actionable",
			sig:  Signal{Sentiment: "bullish", Confidence: 0.6, Direction: "long", Reason: "x"},
			want: "consider long position, small risk.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Action(tc.sig))
		})
	}
}

func TestRender(t *testing.T) {
	sig := Signal{Sentiment: "bullish", Confidence: 0.9, Direction: "long", Reason: "strong jobs report"}
	out := Render(sig)

	assert.Contains(t, out, "Sentiment : bullish")
	assert.Contains(t, out, "Direction : long")
	assert.Contains(t, out, "Confidence: 0.90")
	assert.Contains(t, out, "Reason    : strong jobs report")
	assert.Contains(t, out, "consider long position, small risk.")
	assert.Contains(t, out, Disclaimer)
}

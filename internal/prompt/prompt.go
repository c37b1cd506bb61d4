package prompt

import (
	"strings"
	"text/template"
)

// The template reproduces the output schema verbatim so the model sees the
// exact field names the validator requires.
const userTemplate = `You are a systematic trading assistant.

Instrument: {{.Instrument}}
Time horizon: {{.Horizon}}.

Task:
1. Read the following news headline.
2. Evaluate its short-term likely impact on {{.Instrument}}.
3. Respond ONLY in strict JSON with this exact structure:

{
  "sentiment": "bullish" | "bearish" | "neutral",
  "confidence": float between 0 and 1,
  "direction": "long" | "short" | "flat",
  "reason": "very short explanation in one sentence"
}

Rules:
- "bullish" means the news is positive for {{.Instrument}} (price up).
- "bearish" means the news is negative for {{.Instrument}} (price down).
- "neutral" means unclear or no strong edge.
- "long" = buy {{.Instrument}}, "short" = sell {{.Instrument}}, "flat" = no position.
- If the headline is ambiguous, prefer "neutral" and "flat".
- Do NOT include any text before or after the JSON.
{{- range .ExtraRules}}
- {{.}}
{{- end}}

Headline: "{{.Headline}}"`

var userTpl = template.Must(template.New("signal_user_prompt").Parse(userTemplate))

// Builder renders the fixed instruction template around one headline.
// Pure: instrument and horizon come from the profile source at build time.
type Builder struct {
	profiles ProfileSource
}

// ProfileSource supplies the current prompt profile. Implemented by
// *ProfileStore; tests plug in static values.
type ProfileSource interface {
	Current() Profile
}

func NewBuilder(profiles ProfileSource) *Builder {
	return &Builder{profiles: profiles}
}

type templateData struct {
	Instrument string
	Horizon    string
	ExtraRules []string
	Headline   string
}

// Build renders the prompt for one headline. The caller guarantees the
// headline is non-empty; it is embedded verbatim on a single line.
func (b *Builder) Build(headline string) string {
	prof := DefaultProfile()
	if b.profiles != nil {
		prof = b.profiles.Current()
	}
	data := templateData{
		Instrument: prof.Instrument,
		Horizon:    prof.Horizon,
		ExtraRules: prof.ExtraRules,
		Headline:   flatten(headline),
	}
	var sb strings.Builder
	if err := userTpl.Execute(&sb, data); err != nil {
		// Template and data are both fixed shapes; this cannot fire at runtime.
		panic(err)
	}
	return sb.String()
}

// flatten folds line breaks so the headline stays a single quoted line
// inside the prompt. All other characters are kept verbatim.
func flatten(headline string) string {
	headline = strings.ReplaceAll(headline, "\r\n", " ")
	headline = strings.ReplaceAll(headline, "\n", " ")
	return strings.ReplaceAll(headline, "\r", " ")
}

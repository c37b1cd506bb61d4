package signal

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"

	"newsig/internal/pkg/jsonutil"
)

// RequiredKeys is the full key set a response must carry to count as a
// signal. Value domains are deliberately unconstrained (see schema below).
var RequiredKeys = []string{"sentiment", "confidence", "direction", "reason"}

// The schema checks key presence only. Out-of-range confidence or unknown
// enum values pass through; the interpreter degrades them to "stay flat".
const signalSchema = `{
  "type": "object",
  "required": ["sentiment", "confidence", "direction", "reason"]
}`

type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() *Validator {
	return &Validator{
		schema: jsonschema.MustCompileString("signal.schema.json", signalSchema),
	}
}

// Validate runs exactly one parse attempt over raw model text. Same input
// always yields the same outcome.
func (v *Validator) Validate(raw string) (Signal, error) {
	block, ok := jsonutil.ExtractObject(raw)
	if !ok {
		return Signal{}, &MalformedResponseError{Raw: raw}
	}
	if !gjson.Valid(block) {
		return Signal{}, &MalformedResponseError{Raw: raw}
	}
	var doc any
	if err := json.Unmarshal([]byte(block), &doc); err != nil {
		return Signal{}, &MalformedResponseError{Raw: raw}
	}
	if err := v.schema.Validate(doc); err != nil {
		parsed := gjson.Parse(block)
		return Signal{}, &IncompleteSignalError{
			Record:  jsonutil.Pretty(block),
			Missing: missingKeys(parsed),
		}
	}
	return signalFromRecord(gjson.Parse(block)), nil
}

func missingKeys(rec gjson.Result) []string {
	var out []string
	for _, key := range RequiredKeys {
		if !rec.Get(key).Exists() {
			out = append(out, key)
		}
	}
	return out
}

// signalFromRecord keeps field values as the model sent them. Confidence is
// coerced to a number the way gjson reads it; a non-numeric confidence
// becomes 0 and therefore falls below every action threshold.
func signalFromRecord(rec gjson.Result) Signal {
	return Signal{
		Sentiment:  rec.Get("sentiment").String(),
		Confidence: rec.Get("confidence").Float(),
		Direction:  rec.Get("direction").String(),
		Reason:     rec.Get("reason").String(),
	}
}

package factcheck

import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// verdictSchema is the canonical shape the verification prompt asks for.
// Validation against it is advisory only: normalization must default, never
// fail, when the model drifts from the shape.
const verdictSchema = `{
	"type": "object",
	"properties": {
		"verdict": {"type": "string", "enum": ["True", "False", "Unverified", "Misleading"]},
		"confidence": {"type": "number", "minimum": 0, "maximum": 100},
		"explanation": {"type": "string"},
		"category": {"type": "string", "enum": ["Medical", "Financial", "Political", "Science", "Other"]}
	},
	"required": ["verdict", "confidence", "explanation", "category"]
}`

var compiledVerdictSchema = mustCompileVerdictSchema()

func mustCompileVerdictSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("verdict.json", strings.NewReader(verdictSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("verdict.json")
}

// checkVerdictPayload reports whether the parsed payload matches the
// canonical schema. A mismatch is worth a log line, nothing more.
func checkVerdictPayload(payload map[string]any) error {
	// Round-trip through JSON so numbers validate uniformly.
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	return compiledVerdictSchema.Validate(doc)
}

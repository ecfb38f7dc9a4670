// Package verify holds the embedded prompts for the verification call.
package verify

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// UserPromptKey identifies the verification prompt in call logs.
const UserPromptKey = "verify.user"

// SystemPrompt returns the fact-checker system prompt.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt embedding the claim and the judgment
// protocol.
func UserPrompt(claim string) string {
	var buf bytes.Buffer
	data := struct{ Claim string }{Claim: claim}
	if err := userTemplate.Execute(&buf, data); err != nil {
		// Fallback to raw template on error
		return userPromptTmpl
	}
	return buf.String()
}

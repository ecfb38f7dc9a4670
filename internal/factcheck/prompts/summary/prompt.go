// Package summary holds the embedded prompt for the shareable one-liner.
package summary

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// UserPromptKey identifies the summary prompt in call logs.
const UserPromptKey = "summary.user"

// UserPrompt builds the summary prompt from the verdict and explanation.
func UserPrompt(explanation, verdict string) string {
	var buf bytes.Buffer
	data := struct{ Explanation, Verdict string }{Explanation: explanation, Verdict: verdict}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}

// Package transcribe holds the embedded prompt for image-to-text extraction.
package transcribe

import _ "embed"

//go:embed user.tmpl
var userPrompt string

// UserPromptKey identifies the transcription prompt in call logs.
const UserPromptKey = "transcribe.user"

// UserPrompt returns the transcription instruction.
func UserPrompt() string {
	return userPrompt
}

package factcheck

import (
	"errors"
	"fmt"
)

// Pipeline error taxonomy. Each sentinel carries its user-facing message so
// the serving surface can relay it directly. Callers match with errors.Is.
var (
	// ErrVerificationUnavailable covers transport, auth, quota and empty
	// responses - everything unrelated to payload shape.
	ErrVerificationUnavailable = errors.New("verification service is unavailable, check your connection and try again later")

	// ErrMalformedResponse means the backend answered but the payload could
	// not be parsed. Distinct from unavailability so callers can decide
	// whether a retry is sensible.
	ErrMalformedResponse = errors.New("the verification response was malformed, retrying may help")

	// ErrTranscriptionFailed means the image-to-text call itself failed.
	ErrTranscriptionFailed = errors.New("could not read text from the image, a clearer photo may help")

	// ErrNoLegibleText means transcription succeeded but found nothing
	// usable. Distinct from ErrTranscriptionFailed: the call did not error.
	ErrNoLegibleText = errors.New("no legible text was found in the image")

	// ErrEmptyClaim is input validation: verification is never invoked on
	// empty text.
	ErrEmptyClaim = errors.New("claim text must not be empty")
)

// MalformedPayloadError is the parser-internal failure. It carries the
// original model text for diagnostics and escalates to ErrMalformedResponse
// at the verifier boundary.
type MalformedPayloadError struct {
	Raw string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("no parseable JSON object in model output (%d bytes)", len(e.Raw))
}

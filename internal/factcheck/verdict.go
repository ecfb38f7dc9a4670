// Package factcheck implements the claim verification pipeline: it turns a
// pasted claim (or a photographed one) into a structured verdict backed by
// web-search-grounded citations and a short shareable summary.
//
// The pipeline is strictly sequential: (transcribe) -> verify -> summarize.
// Model output is treated as adversarial text; every stage either produces a
// well-formed value or a typed failure, never a silently-defaulted result.
package factcheck

import "strings"

// Verdict is the truthfulness label assigned to a claim.
type Verdict string

const (
	VerdictTrue       Verdict = "True"
	VerdictFalse      Verdict = "False"
	VerdictUnverified Verdict = "Unverified"
	VerdictMisleading Verdict = "Misleading"
)

// Category classifies the subject matter of a claim.
type Category string

const (
	CategoryMedical   Category = "Medical"
	CategoryFinancial Category = "Financial"
	CategoryPolitical Category = "Political"
	CategoryScience   Category = "Science"
	CategoryOther     Category = "Other"
)

// DefaultExplanation is used when the model omits an explanation.
const DefaultExplanation = "No explanation was provided for this verdict."

// Citation is a single grounded source reference.
// Order follows the backend's grounding metadata order.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Result is the externally visible verification output.
// A Result is constructed fresh per request and never mutated after return.
type Result struct {
	Verdict     Verdict    `json:"verdict"`
	Confidence  int        `json:"confidence"` // 0-100
	Explanation string     `json:"explanation"`
	Category    Category   `json:"category"`
	Citations   []Citation `json:"citations"`
	Summary     string     `json:"summary,omitempty"`
}

// WithSummary returns a copy of the result with the summary populated.
// The receiver is left untouched so the verifier's output stays immutable.
func (r *Result) WithSummary(summary string) *Result {
	combined := *r
	combined.Summary = summary
	return &combined
}

// RequestKind discriminates the input union.
type RequestKind string

const (
	KindText  RequestKind = "text"
	KindImage RequestKind = "image"
)

// Request is the pipeline input: either raw claim text or image bytes to
// transcribe first.
type Request struct {
	Kind RequestKind

	// Text input
	Content string

	// Image input
	Bytes    []byte
	MIMEType string
}

// TextRequest builds a text-claim request.
func TextRequest(content string) Request {
	return Request{Kind: KindText, Content: content}
}

// ImageRequest builds an image-claim request.
func ImageRequest(data []byte, mimeType string) Request {
	return Request{Kind: KindImage, Bytes: data, MIMEType: mimeType}
}

// parseVerdict maps model output onto the verdict enum, defaulting to
// Unverified for anything unrecognized.
func parseVerdict(s string) Verdict {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return VerdictTrue
	case "false":
		return VerdictFalse
	case "misleading":
		return VerdictMisleading
	case "unverified":
		return VerdictUnverified
	default:
		return VerdictUnverified
	}
}

// parseCategory maps model output onto the category enum, defaulting to Other.
func parseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medical":
		return CategoryMedical
	case "financial":
		return CategoryFinancial
	case "political":
		return CategoryPolitical
	case "science":
		return CategoryScience
	default:
		return CategoryOther
	}
}

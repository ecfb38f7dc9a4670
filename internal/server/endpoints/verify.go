package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/factlens/factlens/internal/api"
	"github.com/factlens/factlens/internal/factcheck"
	"github.com/factlens/factlens/internal/svcctx"
)

// VerifyRequest is the body for POST /api/v1/verify.
type VerifyRequest struct {
	Claim string `json:"claim"`
}

// VerifyEndpoint handles POST /api/v1/verify.
type VerifyEndpoint struct{}

func (e *VerifyEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/verify", e.handler
}

func (e *VerifyEndpoint) RequiresInit() bool { return true }

func (e *VerifyEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Claim) == "" {
		writeError(w, http.StatusBadRequest, factcheck.ErrEmptyClaim.Error())
		return
	}

	pipeline := svcctx.PipelineFrom(r.Context())
	result, err := pipeline.Run(r.Context(), factcheck.TextRequest(req.Claim))
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (e *VerifyEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <claim>",
		Short: "Verify a claim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var result factcheck.Result
			if err := client.Post(cmd.Context(), "/api/v1/verify", VerifyRequest{Claim: args[0]}, &result); err != nil {
				return err
			}
			return api.Output(result)
		},
	}
}

// writePipelineError maps the pipeline error taxonomy onto HTTP statuses.
// The sentinel messages are user-facing and are relayed as-is.
func writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, factcheck.ErrEmptyClaim):
		writeError(w, http.StatusBadRequest, factcheck.ErrEmptyClaim.Error())
	case errors.Is(err, factcheck.ErrMalformedResponse):
		writeError(w, http.StatusUnprocessableEntity, factcheck.ErrMalformedResponse.Error())
	case errors.Is(err, factcheck.ErrNoLegibleText):
		writeError(w, http.StatusUnprocessableEntity, factcheck.ErrNoLegibleText.Error())
	case errors.Is(err, factcheck.ErrTranscriptionFailed):
		writeError(w, http.StatusUnprocessableEntity, factcheck.ErrTranscriptionFailed.Error())
	case errors.Is(err, factcheck.ErrVerificationUnavailable):
		writeError(w, http.StatusBadGateway, factcheck.ErrVerificationUnavailable.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

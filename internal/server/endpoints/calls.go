package endpoints

import (
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/factlens/factlens/internal/api"
	"github.com/factlens/factlens/internal/calllog"
	"github.com/factlens/factlens/internal/svcctx"
)

// CallsResponse lists recent recorded model calls.
type CallsResponse struct {
	Calls []calllog.Call `json:"calls"`
}

// CallsEndpoint handles GET /api/v1/calls.
type CallsEndpoint struct{}

func (e *CallsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/v1/calls", e.handler
}

func (e *CallsEndpoint) RequiresInit() bool { return true }

func (e *CallsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	recorder := svcctx.RecorderFrom(r.Context())
	writeJSON(w, http.StatusOK, CallsResponse{Calls: recorder.Recent(limit)})
}

func (e *CallsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "calls",
		Short: "List recent model calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp CallsResponse
			path := "/api/v1/calls?limit=" + strconv.Itoa(limit)
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum calls to return")
	return cmd
}

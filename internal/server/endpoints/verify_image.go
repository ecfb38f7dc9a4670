package endpoints

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/factlens/factlens/internal/api"
	"github.com/factlens/factlens/internal/factcheck"
	"github.com/factlens/factlens/internal/svcctx"
)

// maxImageBytes bounds uploaded screenshots.
const maxImageBytes = 10 << 20 // 10 MiB

// VerifyImageEndpoint handles POST /api/v1/verify/image (multipart upload).
type VerifyImageEndpoint struct{}

func (e *VerifyImageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/v1/verify/image", e.handler
}

func (e *VerifyImageEndpoint) RequiresInit() bool { return true }

func (e *VerifyImageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form or image too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = detectImageMIME(header.Filename)
	}

	pipeline := svcctx.PipelineFrom(r.Context())
	result, err := pipeline.Run(r.Context(), factcheck.ImageRequest(data, mimeType))
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (e *VerifyImageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-image <path>",
		Short: "Verify the claim in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			var result factcheck.Result
			if err := client.PostFile(cmd.Context(), "/api/v1/verify/image", "image", filepath.Base(args[0]), data, &result); err != nil {
				return err
			}
			return api.Output(result)
		},
	}
}

// detectImageMIME guesses a MIME type from the filename extension.
func detectImageMIME(filename string) string {
	switch filepath.Ext(filename) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=mock_deliverer_test.go -package=api
package api

import (
	"io"
	"net/http"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/runtime/workers"

	"github.com/gin-gonic/gin"
)

// Deliverer pushes events produced by REST calls to the open sessions.
type Deliverer interface {
	DeliverMessage(msg domain.Message) bool
	DeliverReadReceipts(readerID domain.UserID, bySender map[domain.UserID][]domain.MessageID) bool
}

// StatsSource exposes the last telemetry report.
type StatsSource interface {
	Latest() workers.Report
}

func healthHandler(c *gin.Context) {
	respond(c, http.StatusOK, "ok", nil)
}

func statsHandler(stats StatsSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, "Telemetry snapshot", stats.Latest())
	}
}

// uploadedMedia returns the optional "media" file of a multipart form,
// nil when none was sent.
func uploadedMedia(c *gin.Context) (io.ReadCloser, error) {
	header, err := c.FormFile("media")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return header.Open()
}

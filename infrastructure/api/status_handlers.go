package api

import (
	"log/slog"
	"net/http"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/services"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	log      *slog.Logger
	statuses services.IStatusService
}

func NewStatusHandler(log *slog.Logger, statuses services.IStatusService) *StatusHandler {
	return &StatusHandler{log: log, statuses: statuses}
}

type createStatusForm struct {
	Content     string `form:"content" json:"content"`
	ContentType string `form:"contentType" json:"contentType"`
}

func (h *StatusHandler) Create(c *gin.Context) {
	var form createStatusForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	media, err := uploadedMedia(c)
	if err != nil {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	if media != nil {
		defer media.Close()
	}

	status, err := h.statuses.Create(c.Request.Context(), services.CreateStatusRequest{
		UserID:      currentUser(c),
		Content:     form.Content,
		ContentType: domain.ContentType(form.ContentType),
		Media:       media,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "Status created successfully", status)
}

func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.statuses.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Statuses retrieved successfully", statuses)
}

func (h *StatusHandler) View(c *gin.Context) {
	status, err := h.statuses.View(c.Request.Context(), domain.StatusID(c.Param("statusId")), currentUser(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Status viewed successfully", status)
}

func (h *StatusHandler) Delete(c *gin.Context) {
	if err := h.statuses.Delete(c.Request.Context(), domain.StatusID(c.Param("statusId")), currentUser(c)); err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Status deleted successfully", nil)
}

package api

import (
	"log/slog"
	"net/http"
	"zenchat/domain"
	"zenchat/errors"
	"zenchat/services"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type ChatHandler struct {
	log       *slog.Logger
	chat      services.IChatService
	deliverer Deliverer
}

func NewChatHandler(log *slog.Logger, chat services.IChatService, deliverer Deliverer) *ChatHandler {
	return &ChatHandler{log: log, chat: chat, deliverer: deliverer}
}

type sendMessageForm struct {
	ReceiverID string `form:"receiverId" json:"receiverId"`
	Content    string `form:"content" json:"content"`
}

type readMessagesRequest struct {
	MessageIDs []domain.MessageID `json:"messageIds"`
}

// SendMessage stores the message then hands it to the realtime layer,
// the response does not wait for delivery.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var form sendMessageForm
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

	msg, err := h.chat.SendMessage(c.Request.Context(), services.SendMessageRequest{
		SenderID:   currentUser(c),
		ReceiverID: domain.UserID(form.ReceiverID),
		Content:    form.Content,
		Media:      media,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if !h.deliverer.DeliverMessage(msg) {
		h.log.Warn("Realtime layer stopped, message not delivered", "message_id", msg.ID)
	}
	respond(c, http.StatusCreated, "Message sent successfully", msg)
}

func (h *ChatHandler) Conversations(c *gin.Context) {
	conversations, err := h.chat.Conversations(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Conversations retrieved successfully", conversations)
}

// Messages returns a page of history, older pages with ?cursor=<oldest id>.
// Messages read by opening the conversation are acknowledged to their senders.
func (h *ChatHandler) Messages(c *gin.Context) {
	var cursor *string
	if value, ok := c.GetQuery("cursor"); ok && value != "" {
		cursor = &value
	}
	me := currentUser(c)
	page, err := h.chat.Messages(c.Request.Context(), me, domain.ConversationID(c.Param("conversationId")), cursor)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if len(page.Read) > 0 {
		h.deliverer.DeliverReadReceipts(me, page.Read)
	}
	respond(c, http.StatusOK, "Messages retrieved", page)
}

func (h *ChatHandler) Search(c *gin.Context) {
	result, err := h.chat.Search(c.Request.Context(), currentUser(c),
		domain.ConversationID(c.Param("conversationId")), c.Query("q"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Search completed", result)
}

func (h *ChatHandler) MarkAsRead(c *gin.Context) {
	var req readMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.MessageIDs) == 0 {
		fail(c, h.log, errors.ErrInvalidRequest)
		return
	}
	me := currentUser(c)
	receipts, err := h.chat.ReadMessages(c.Request.Context(), req.MessageIDs, me)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if len(receipts) > 0 {
		h.deliverer.DeliverReadReceipts(me, receipts)
	}
	respond(c, http.StatusOK, "Messages marked as read", gin.H{
		"messageIds": lo.Flatten(lo.Values(receipts)),
	})
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	messageID := domain.MessageID(c.Param("messageId"))
	if err := h.chat.DeleteMessage(c.Request.Context(), currentUser(c), messageID); err != nil {
		fail(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Message deleted successfully", gin.H{"messageId": messageID})
}

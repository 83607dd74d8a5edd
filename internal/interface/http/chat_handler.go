package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/pkg/response"
)

type ChatHandler struct {
	Svc    *application.ChatService
	Logger *logrus.Logger
}

func NewChatHandler(svc *application.ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	UserID  int64  `json:"userId" binding:"required,gt=0"`
	Message string `json:"message" binding:"required,max=4000"`
}

func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.History(userID), "chat history", nil)
}

// Send answers with the assistant's stored reply. The reply is the fallback
// message when the completion backend is unavailable.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req) {
		return
	}
	reply := h.Svc.Send(c.Request.Context(), req.UserID, req.Message)
	response.Success(c, http.StatusCreated, reply, "reply", nil)
}

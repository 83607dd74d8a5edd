package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/pkg/response"
)

type GenerationHandler struct {
	Svc    *application.GenerationService
	Logger *logrus.Logger
}

func NewGenerationHandler(svc *application.GenerationService, logger *logrus.Logger) *GenerationHandler {
	return &GenerationHandler{Svc: svc, Logger: logger}
}

type generateRequest struct {
	Prompt   string `json:"prompt" binding:"required,max=4000"`
	EventID  int64  `json:"eventId" binding:"required,gt=0"`
	Platform *int64 `json:"platform" binding:"omitempty,gt=0"`
}

func (h *GenerationHandler) Generate(c *gin.Context) {
	var req generateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.Svc.Generate(c.Request.Context(), req.Prompt, req.EventID, req.Platform)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, out, "content generated", nil)
}

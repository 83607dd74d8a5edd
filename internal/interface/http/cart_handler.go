package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/application"
	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/pkg/response"
)

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addToCartRequest struct {
	UserID    int64 `json:"userId" binding:"required,gt=0"`
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  *int  `json:"quantity" binding:"omitempty,min=1"`
}

// Quantity range is checked after the row lookup so an unknown id reports
// not found whatever the quantity.
type updateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *CartHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.Svc.List(userID), "cart", nil)
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	line, err := h.Svc.Add(entity.CartItemInput{UserID: req.UserID, ProductID: req.ProductID, Quantity: qty})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, line, "Item added to cart", nil)
}

func (h *CartHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "cart item")
	if !ok {
		return
	}
	var req updateCartRequest
	if !bindJSON(c, &req) {
		return
	}
	line, err := h.Svc.SetQuantity(id, *req.Quantity)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, line, "Cart item updated", nil)
}

func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id", "cart item")
	if !ok {
		return
	}
	if err := h.Svc.Remove(id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Item removed from cart", nil)
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	n := h.Svc.Clear(userID)
	response.Success(c, http.StatusOK, gin.H{"removed": n}, "Cart cleared", nil)
}

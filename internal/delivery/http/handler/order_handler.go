package handler

import (
	"net/http"

	orderdto "github.com/craveo/marketplace-service/internal/usecase/dto/order"
	"github.com/craveo/marketplace-service/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders order.OrderUsecase
}

func NewOrderHandler(orders order.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	found, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": found})
}

type orderStatusBody struct {
	CallerID   string `json:"caller_id" binding:"required"`
	CallerRole string `json:"caller_role" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var body orderStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.orders.AdvanceStatus(c.Request.Context(), &orderdto.AdvanceStatusInput{
		OrderID:    c.Param("id"),
		CallerID:   body.CallerID,
		CallerRole: body.CallerRole,
		Action:     orderdto.StatusAction(body.Action),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": updated})
}

func (h *OrderHandler) ListActive(c *gin.Context) {
	orders, err := h.orders.ListActive(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *OrderHandler) History(c *gin.Context) {
	orders, err := h.orders.History(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	orders, err := h.orders.ListByCustomer(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *OrderHandler) ListBySupplier(c *gin.Context) {
	orders, err := h.orders.ListBySupplier(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

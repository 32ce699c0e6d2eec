package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-admin/internal/service"
)

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.logger.Errorf("GET /api/orders: %v", err)
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

func (h *Handler) createOrder(c *gin.Context) {
	req, err := bindLenient[orderPayload](c)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	if req.UserID.Value == "" || req.Total.Value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and total are required"})
		return
	}

	order, err := h.orders.Create(c.Request.Context(), req.UserID.Value, req.Total.Value, req.Status.Value)
	if err != nil {
		h.logger.Errorf("POST /api/orders: %v", err)
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, orderToResponse(*order))
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		itemError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderToResponse(*order))
}

func (h *Handler) updateOrder(c *gin.Context) {
	req, err := bindLenient[orderPayload](c)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	order, err := h.orders.Update(c.Request.Context(), c.Param("id"), service.OrderUpdate{
		Total:  req.Total.Ptr(),
		Status: req.Status.Ptr(),
	})
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, orderToResponse(*order))
}

func (h *Handler) deleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

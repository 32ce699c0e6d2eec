package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-admin/internal/service"
)

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.Errorf("GET /api/users: %v", err)
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createUser(c *gin.Context) {
	req, err := bindLenient[userPayload](c)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	if req.Email.Value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Email.Value, req.Role.Value)
	if err != nil {
		h.logger.Errorf("POST /api/users: %v", err)
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, userToResponse(*user))
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		itemError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) updateUser(c *gin.Context) {
	req, err := bindLenient[userPayload](c)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), service.UserUpdate{
		Email: req.Email.Ptr(),
		Role:  req.Role.Ptr(),
	})
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		errorJSON(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listUserOrders(c *gin.Context) {
	orders, err := h.orders.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Errorf("GET /api/users/%s/orders: %v", c.Param("id"), err)
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

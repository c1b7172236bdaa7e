package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listUsers(c *gin.Context) {
	ctx, cancel := h.storeCtx(c)
	defer cancel()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.internalError(c, "ListUsers", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) createUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.userValidator.ValidateNew(c.Request.Context(), &user); err != nil {
		h.invalidPayload(c, err)
		return
	}

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			c.String(http.StatusConflict, "Usuário já existe")
			return
		}
		h.internalError(c, "CreateUser", err)
		return
	}
	c.String(http.StatusCreated, "Usuário criado com sucesso")
}

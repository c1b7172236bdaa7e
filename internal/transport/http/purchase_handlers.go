package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createPurchase(c *gin.Context) {
	var draft validate.PurchaseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.purchaseValidator.ValidateCreate(c.Request.Context(), &draft); err != nil {
		h.invalidPayload(c, err)
		return
	}

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.purchases.CreatePurchase(ctx, draft.Purchase()); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			c.String(http.StatusConflict, "Pedido já existe")
		case errors.Is(err, domain.ErrNotFound):
			c.String(http.StatusNotFound, "Usuário não foi encontrado.")
		case errors.Is(err, domain.ErrUnknownProduct):
			c.String(http.StatusBadRequest, "Alguns dos produtos não foram encontrados.")
		default:
			h.internalError(c, "CreatePurchase", err)
		}
		return
	}
	c.String(http.StatusCreated, "Pedido realizado com sucesso")
}

func (h *Handler) getPurchase(c *gin.Context) {
	ctx, cancel := h.storeCtx(c)
	defer cancel()

	// Код 400 для отсутствующей покупки сохранён ради совместимости клиентов.
	details, err := h.purchases.GetPurchase(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusBadRequest, "Não existe compra com esse id.")
			return
		}
		h.internalError(c, "GetPurchase", err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) deletePurchase(c *gin.Context) {
	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.purchases.DeletePurchase(ctx, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusBadRequest, "Id não encontrado")
			return
		}
		h.internalError(c, "DeletePurchase", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pedido apagado"})
}

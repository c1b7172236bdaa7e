package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.storeCtx(c)
	defer cancel()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.internalError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) searchProducts(c *gin.Context) {
	q := c.Query("q")
	if err := validate.SearchQuery(q); err != nil {
		h.invalidPayload(c, err)
		return
	}

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	products, err := h.products.SearchProducts(ctx, q)
	if err != nil {
		h.internalError(c, "SearchProducts", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) createProduct(c *gin.Context) {
	var draft validate.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.productValidator.ValidateNew(c.Request.Context(), &draft); err != nil {
		h.invalidPayload(c, err)
		return
	}

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.products.CreateProduct(ctx, draft.Product()); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			c.String(http.StatusConflict, "Produto já existe")
			return
		}
		h.internalError(c, "CreateProduct", err)
		return
	}
	c.String(http.StatusCreated, "Produto criado com sucesso")
}

func (h *Handler) updateProduct(c *gin.Context) {
	var upd domain.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.productValidator.ValidateUpdate(c.Request.Context(), upd); err != nil {
		h.invalidPayload(c, err)
		return
	}

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	// Код 409 для отсутствующего товара сохранён ради совместимости клиентов.
	if err := h.products.UpdateProduct(ctx, c.Param("id"), upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.String(http.StatusConflict, "Produto não existe")
			return
		}
		h.internalError(c, "UpdateProduct", err)
		return
	}
	c.String(http.StatusCreated, "Produto alterado com sucesso")
}

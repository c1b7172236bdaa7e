// Пакет rest — HTTP-слой поверх сервисов магазина (gin).
// Тексты успешных ответов совместимы с исходным API витрины.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики поверх сервисов магазина.
type Handler struct {
	users     ports.UserService
	products  ports.ProductService
	purchases ports.PurchaseService
	log       ports.Logger

	userValidator     *validate.UserValidator
	productValidator  *validate.ProductValidator
	purchaseValidator *validate.PurchaseValidator

	// timeout ограничивает каждое обращение к хранилищу; 0 — без ограничения.
	timeout time.Duration
}

// NewHandler — DI-конструктор.
func NewHandler(
	users ports.UserService,
	products ports.ProductService,
	purchases ports.PurchaseService,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		users:             users,
		products:          products,
		purchases:         purchases,
		log:               log,
		userValidator:     validate.NewUserValidator(),
		productValidator:  validate.NewProductValidator(),
		purchaseValidator: validate.NewPurchaseValidator(),
		timeout:           timeout,
	}
}

// NewRouter — собирает маршруты и middleware.
func NewRouter(h *Handler, serviceName string, tracing bool) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if tracing {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "Pong!"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/users", h.listUsers)
	r.POST("/users", h.createUser)

	r.GET("/products", h.listProducts)
	r.GET("/products/search", h.searchProducts)
	r.POST("/products", h.createProduct)
	r.PUT("/products/:id", h.updateProduct)

	r.POST("/purchases", h.createPurchase)
	r.GET("/purchases/:id", h.getPurchase)
	r.DELETE("/purchases/:id", h.deletePurchase)

	return r
}

// storeCtx — контекст с таймаутом на обращение к хранилищу.
func (h *Handler) storeCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// invalidPayload — 400 в формате исходного API: префикс + причина.
func (h *Handler) invalidPayload(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, "Dados inválidos. "+err.Error())
}

// internalError — generic 500; причина остаётся в логах, не в ответе.
func (h *Handler) internalError(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrTimeout) {
		h.log.Errorf(c.Request.Context(), "%s timed out err=%v", op, err)
	} else {
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
	}
	c.String(http.StatusInternalServerError, "Erro inesperado.")
}

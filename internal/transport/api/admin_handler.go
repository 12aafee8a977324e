package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	productSvs  ProductServicer
	trSvs       TransactionServicer
	deliverySvs DeliveryServicer
}

func NewAdminHandler(productSvs ProductServicer, trSvs TransactionServicer, deliverySvs DeliveryServicer) *AdminHandler {
	return &AdminHandler{
		productSvs:  productSvs,
		trSvs:       trSvs,
		deliverySvs: deliverySvs,
	}
}

type RestockParams struct {
	Quantity int `json:"quantity"`
}

type GatewayStatusResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	StatusMessage string `json:"statusMessage,omitempty"`
	Reference     string `json:"reference,omitempty"`
	AmountInCents int64  `json:"amountInCents"`
	Currency      string `json:"currency,omitempty"`
}

// Restock POST AdminRouteGroup + AdminRestockRoute. Кол-во должно быть положительным, иначе 400.
func (h *AdminHandler) Restock(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var params RestockParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.productSvs.Restock(reqCtx, id, params.Quantity)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

// GatewayStatus GET AdminRouteGroup + AdminGatewayStatusRoute. Состояние транзакции на стороне шлюза
// для ручной сверки, например после компенсирующего отказа.
func (h *AdminHandler) GatewayStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, GatewayTimeout)
	defer cancel()

	status, err := h.trSvs.GatewayStatus(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, GatewayStatusResponse{
		ID:            status.ID,
		Status:        status.Status,
		StatusMessage: status.StatusMessage,
		Reference:     status.Reference,
		AmountInCents: status.AmountInCents,
		Currency:      status.Currency,
	})
}

// ShipDelivery POST AdminRouteGroup + AdminShipDeliveryRoute. Доставка должна быть в статусе PENDING, иначе 409.
func (h *AdminHandler) ShipDelivery(c *gin.Context) {
	h.advanceDelivery(c, h.deliverySvs.Ship)
}

// CompleteDelivery POST AdminRouteGroup + AdminCompleteDeliveryRoute. Только из SHIPPED.
func (h *AdminHandler) CompleteDelivery(c *gin.Context) {
	h.advanceDelivery(c, h.deliverySvs.MarkDelivered)
}

func (h *AdminHandler) advanceDelivery(
	c *gin.Context,
	transition func(ctx context.Context, id uuid.UUID) (*domain.Delivery, error),
) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := transition(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionsHandler struct {
	trSvs      TransactionServicer
	payTimeout time.Duration
}

// NewTransactionsHandler payTimeout ограничивает оплату, нулевое значение заменяется на DefaultPayTimeout.
func NewTransactionsHandler(trSvs TransactionServicer, payTimeout time.Duration) *TransactionsHandler {
	if payTimeout <= 0 {
		payTimeout = DefaultPayTimeout
	}
	return &TransactionsHandler{
		trSvs:      trSvs,
		payTimeout: payTimeout,
	}
}

type CreateTransactionParams struct {
	ProductID    uuid.UUID  `binding:"required"       json:"productId"`
	CustomerID   *uuid.UUID `json:"customerId"`
	ShippingCost *int64     `binding:"omitempty,gte=0" json:"shippingCost"`
}

type PayTransactionParams struct {
	CardToken string `binding:"required,max_bytes=255" json:"cardToken"`
}

type TransactionResponse struct {
	ID                    uuid.UUID                    `json:"id"`
	ProductID             uuid.UUID                    `json:"productId"`
	CustomerID            *uuid.UUID                   `json:"customerId"`
	ProductPrice          int64                        `json:"productPrice"`
	BaseCharge            int64                        `json:"baseCharge"`
	ShippingCost          int64                        `json:"shippingCost"`
	TotalAmount           int64                        `json:"totalAmount"`
	Status                domain.TransactionStatusType `json:"status"`
	ExternalTransactionID *string                      `json:"externalTransactionId"`
	CreatedAt             time.Time                    `json:"createdAt"`
	UpdatedAt             time.Time                    `json:"updatedAt"`
}

func newTransactionResponse(tr *domain.Transaction) TransactionResponse {
	var externalID *string
	if tr.ExternalTransactionID != "" {
		externalID = &tr.ExternalTransactionID
	}
	return TransactionResponse{
		ID:                    tr.ID,
		ProductID:             tr.ProductID,
		CustomerID:            tr.CustomerID,
		ProductPrice:          tr.ProductPrice,
		BaseCharge:            tr.BaseCharge,
		ShippingCost:          tr.ShippingCost,
		TotalAmount:           tr.TotalAmount,
		Status:                tr.Status,
		ExternalTransactionID: externalID,
		CreatedAt:             tr.CreatedAt,
		UpdatedAt:             tr.UpdatedAt,
	}
}

// Create POST TransactionsRoute. Создает транзакцию в статусе PENDING, склад не резервируется.
func (h *TransactionsHandler) Create(c *gin.Context) {
	var params CreateTransactionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tr, err := h.trSvs.Create(reqCtx, service.CreateTransactionArgs{
		ProductID:    params.ProductID,
		CustomerID:   params.CustomerID,
		ShippingCost: params.ShippingCost,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(tr))
}

// Show GET TransactionRoute.
func (h *TransactionsHandler) Show(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tr, err := h.trSvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(tr))
}

// Pay POST TransactionPayRoute. Ответы: 200 оплачено, 402 отказ, 404 нет транзакции, 409 уже обработана.
func (h *TransactionsHandler) Pay(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var params PayTransactionParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, h.payTimeout)
	defer cancel()

	tr, err := h.trSvs.Pay(reqCtx, id, params.CardToken)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(tr))
}

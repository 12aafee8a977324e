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

type DeliveriesHandler struct {
	deliverySvs DeliveryServicer
}

func NewDeliveriesHandler(deliverySvs DeliveryServicer) *DeliveriesHandler {
	return &DeliveriesHandler{
		deliverySvs: deliverySvs,
	}
}

type CreateDeliveryParams struct {
	TransactionID uuid.UUID `binding:"required"               json:"transactionId"`
	CustomerID    uuid.UUID `binding:"required"               json:"customerId"`
	Address       string    `binding:"required,min=5,max=200" json:"address"`
	City          string    `binding:"required,max=100"       json:"city"`
	Department    string    `binding:"required,max=100"       json:"department"`
	ZipCode       string    `binding:"required,min=4,max=10"  json:"zipCode"`
	Instructions  string    `binding:"max=500"                json:"instructions"`
}

type DeliveryResponse struct {
	ID            uuid.UUID                 `json:"id"`
	TransactionID uuid.UUID                 `json:"transactionId"`
	CustomerID    uuid.UUID                 `json:"customerId"`
	Address       string                    `json:"address"`
	City          string                    `json:"city"`
	Department    string                    `json:"department"`
	ZipCode       string                    `json:"zipCode"`
	Instructions  *string                   `json:"instructions"`
	Status        domain.DeliveryStatusType `json:"status"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

func newDeliveryResponse(d *domain.Delivery) DeliveryResponse {
	var instructions *string
	if d.Instructions != "" {
		instructions = &d.Instructions
	}
	return DeliveryResponse{
		ID:            d.ID,
		TransactionID: d.TransactionID,
		CustomerID:    d.CustomerID,
		Address:       d.Address,
		City:          d.City,
		Department:    d.Department,
		ZipCode:       d.ZipCode,
		Instructions:  instructions,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

// Create POST DeliveriesRoute. Повторный запрос для той же транзакции вернет существующую доставку.
func (h *DeliveriesHandler) Create(c *gin.Context) {
	var params CreateDeliveryParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := h.deliverySvs.Create(reqCtx, service.CreateDeliveryArgs{
		TransactionID: params.TransactionID,
		CustomerID:    params.CustomerID,
		Address:       params.Address,
		City:          params.City,
		Department:    params.Department,
		ZipCode:       params.ZipCode,
		Instructions:  params.Instructions,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newDeliveryResponse(delivery))
}

// Show GET DeliveryRoute.
func (h *DeliveriesHandler) Show(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := h.deliverySvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

// ShowByTransaction GET DeliveryByTxRoute.
func (h *DeliveriesHandler) ShowByTransaction(c *gin.Context) {
	transactionID, ok := uuidParam(c, "transactionId")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	delivery, err := h.deliverySvs.GetByTransaction(reqCtx, transactionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeliveryResponse(delivery))
}

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

type CustomersHandler struct {
	customerSvs CustomerServicer
}

func NewCustomersHandler(customerSvs CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerSvs: customerSvs,
	}
}

type CreateCustomerParams struct {
	Email    string `binding:"required,email,max_bytes=255" json:"email"`
	FullName string `binding:"required,min=2,max=100"       json:"fullName"`
	Phone    string `binding:"required,min=7,max=15"        json:"phone"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Email:     customer.Email,
		FullName:  customer.FullName,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}

// Create POST CustomersRoute. Для уже известного email возвращает существующего покупателя.
func (h *CustomersHandler) Create(c *gin.Context) {
	var params CreateCustomerParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Create(reqCtx, service.CreateCustomerArgs{
		Email:    params.Email,
		FullName: params.FullName,
		Phone:    params.Phone,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCustomerResponse(customer))
}

// Show GET CustomerRoute.
func (h *CustomersHandler) Show(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerSvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

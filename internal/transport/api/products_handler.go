package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct {
	productSvs ProductServicer
}

func NewProductsHandler(productSvs ProductServicer) *ProductsHandler {
	return &ProductsHandler{
		productSvs: productSvs,
	}
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Available   bool      `json:"available"`
	ImageURL    *string   `json:"imageUrl"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	var imageURL *string
	if p.ImageURL != "" {
		imageURL = &p.ImageURL
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Available:   p.HasStock(1),
		ImageURL:    imageURL,
	}
}

// Index GET ProductsRoute.
func (p *ProductsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := p.productSvs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = newProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET ProductRoute.
func (p *ProductsHandler) Show(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := p.productSvs.GetByID(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

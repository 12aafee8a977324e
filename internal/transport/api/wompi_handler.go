package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/gin-gonic/gin"
)

const msgAcceptanceTokenFailed = "Failed to get acceptance token"

// WompiHandler вспомогательные операции шлюза для фронтенда. Ответы в формате {success, data | message}.
type WompiHandler struct {
	wompiSvs WompiServicer
}

func NewWompiHandler(wompiSvs WompiServicer) *WompiHandler {
	return &WompiHandler{
		wompiSvs: wompiSvs,
	}
}

type TokenizeCardParams struct {
	CardNumber string `binding:"required,min=13,max=19,digits,luhn"                   json:"cardNumber"`
	CVC        string `binding:"required,min=3,max=4,digits"                           json:"cvc"`
	ExpMonth   string `binding:"required,oneof=01 02 03 04 05 06 07 08 09 10 11 12"    json:"expMonth"`
	ExpYear    string `binding:"required,len=2,digits"                                 json:"expYear"`
	CardHolder string `binding:"required,min=2,max=100"                                json:"cardHolder"`
}

type AcceptanceTokenResponse struct {
	AcceptanceToken string `json:"acceptanceToken"`
	Permalink       string `json:"permalink"`
	Type            string `json:"type"`
}

type CardTokenResponse struct {
	TokenID   string `json:"tokenId"`
	Brand     string `json:"brand"`
	LastFour  string `json:"lastFour"`
	ExpiresAt string `json:"expiresAt"`
}

// AcceptanceToken GET WompiAcceptanceRoute.
func (h *WompiHandler) AcceptanceToken(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, GatewayTimeout)
	defer cancel()

	token, err := h.wompiSvs.GetAcceptanceToken(reqCtx)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": msgAcceptanceTokenFailed,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": AcceptanceTokenResponse{
			AcceptanceToken: token.Token,
			Permalink:       token.Permalink,
			Type:            token.Type,
		},
	})
}

// TokenizeCard POST WompiTokenizeCardRoute. Отказ шлюза отдается как 400 с сообщениями шлюза.
func (h *WompiHandler) TokenizeCard(c *gin.Context) {
	var params TokenizeCardParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, GatewayTimeout)
	defer cancel()

	token, err := h.wompiSvs.TokenizeCard(reqCtx, domain.TokenizeCardArgs{
		Number:     params.CardNumber,
		CVC:        params.CVC,
		ExpMonth:   params.ExpMonth,
		ExpYear:    params.ExpYear,
		CardHolder: params.CardHolder,
	})
	if err != nil {
		var tokenizationErr *domain.CardTokenizationError
		if errors.As(err, &tokenizationErr) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": tokenizationErr.Message,
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": CardTokenResponse{
			TokenID:   token.ID,
			Brand:     token.Brand,
			LastFour:  token.LastFour,
			ExpiresAt: token.ExpiresAt,
		},
	})
}

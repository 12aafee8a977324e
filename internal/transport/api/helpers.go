package api

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// uuidParam читает UUID из параметра пути. При неверном формате отвечает 400 и возвращает false.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).SetType(gin.ErrorTypePublic)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON разбирает тело запроса в params. Ошибки валидации отдаются клиенту списком, остальные как bad request.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		messages := make([]string, len(valErrs))
		for i, fe := range valErrs {
			messages[i] = fe.Error()
		}
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": messages})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// abortWithServiceError переводит ошибку сервисного слоя в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		notFoundErr      *domain.NotFoundError
		paymentFailedErr *domain.PaymentFailedError
		tokenizationErr  *domain.CardTokenizationError
	)

	switch {
	case errors.As(err, &notFoundErr):
		_ = c.AbortWithError(http.StatusNotFound, notFoundErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.As(err, &paymentFailedErr):
		_ = c.AbortWithError(http.StatusPaymentRequired, paymentFailedErr).SetType(gin.ErrorTypePublic)
	case errors.As(err, &tokenizationErr):
		_ = c.AbortWithError(http.StatusBadRequest, tokenizationErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInsufficientStock):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrInsufficientStock).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidDeliveryStatus):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrInvalidDeliveryStatus).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrAlreadyProcessed):
		_ = c.AbortWithError(http.StatusConflict, domain.ErrAlreadyProcessed).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidAmount):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrGatewayUnavailable):
		_ = c.AbortWithError(http.StatusInternalServerError, domain.ErrGatewayUnavailable).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// isValidLuhn проверяет корректность строки по алгоритму Луна.
func isValidLuhn(code string) bool {
	if code == "" {
		return false
	}

	var sum int
	maxDigit := 9
	double := false

	for i := len(code) - 1; i >= 0; i-- {
		char := code[i]

		if !unicode.IsDigit(rune(char)) {
			return false
		}

		digit := int(char - '0')

		if double {
			digit *= 2
			if digit > maxDigit {
				digit -= maxDigit
			}
		}
		sum += digit
		double = !double
	}

	// Код считается валидным, если сумма кратна 10
	return sum%10 == 0
}

package client

import (
	"fmt"
	"strings"
	"time"
)

// StatusCodeError ответ шлюза с неожиданным статусом. Messages содержит сообщения из тела ошибки, если они были.
type StatusCodeError struct {
	Code     int
	Type     string
	Messages []string
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("Unexpected status code %d", e.Code)
	}
	return fmt.Sprintf("Unexpected status code %d: %s", e.Code, strings.Join(e.Messages, ", "))
}

type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("Too many requests. Need retry after %.f seconds", e.RetryAfter.Seconds())
}

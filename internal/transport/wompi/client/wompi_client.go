// Package client HTTP клиент REST API платежного шлюза Wompi.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RouteMerchant     = "/merchants/%s"
	RouteTokenizeCard = "/tokens/cards"
	RouteTransactions = "/transactions"
	RouteTransaction  = "/transactions/%s"
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

const defaultTimeout = 30 * time.Second

type StatusType string

const (
	StatusPending  StatusType = "PENDING"
	StatusApproved StatusType = "APPROVED"
	StatusDeclined StatusType = "DECLINED"
	StatusVoided   StatusType = "VOIDED"
	StatusError    StatusType = "ERROR"
)

type PresignedAcceptance struct {
	AcceptanceToken string `json:"acceptance_token"`
	Permalink       string `json:"permalink"`
	Type            string `json:"type"`
}

type Merchant struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`
	PresignedAcceptance PresignedAcceptance `json:"presigned_acceptance"`
}

type CardTokenRequest struct {
	Number     string `json:"number"`
	CVC        string `json:"cvc"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CardHolder string `json:"card_holder"`
}

type CardToken struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	Brand      string `json:"brand"`
	Name       string `json:"name"`
	LastFour   string `json:"last_four"`
	Bin        string `json:"bin"`
	ExpYear    string `json:"exp_year"`
	ExpMonth   string `json:"exp_month"`
	CardHolder string `json:"card_holder"`
	ExpiresAt  string `json:"expires_at"`
}

type PaymentMethod struct {
	Type         string `json:"type"`
	Token        string `json:"token"`
	Installments int    `json:"installments"`
}

type TransactionRequest struct {
	AmountInCents   int64         `json:"amount_in_cents"`
	Currency        string        `json:"currency"`
	CustomerEmail   string        `json:"customer_email"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Reference       string        `json:"reference"`
	AcceptanceToken string        `json:"acceptance_token"`
	Signature       string        `json:"signature"`
}

type Transaction struct {
	ID                string     `json:"id"`
	CreatedAt         string     `json:"created_at,omitempty"`
	Status            StatusType `json:"status"`
	StatusMessage     string     `json:"status_message,omitempty"`
	Reference         string     `json:"reference,omitempty"`
	AmountInCents     int64      `json:"amount_in_cents,omitempty"`
	Currency          string     `json:"currency,omitempty"`
	PaymentMethodType string     `json:"payment_method_type,omitempty"`
}

// envelope все успешные ответы шлюза завернуты в data.
type envelope[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Error struct {
		Type     string          `json:"type"`
		Reason   string          `json:"reason"`
		Messages json.RawMessage `json:"messages"`
	} `json:"error"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к Wompi.
type HTTPClient struct {
	baseURL    string
	publicKey  string
	privateKey string
	httpClient *http.Client
}

func New(baseURL, publicKey, privateKey string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		publicKey:  publicKey,
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// GetMerchant получает данные мерчанта по публичному ключу, в том числе токен согласия.
func (c HTTPClient) GetMerchant(ctx context.Context) (*Merchant, error) {
	return request[Merchant](ctx, c, http.MethodGet, fmt.Sprintf(RouteMerchant, c.publicKey), "", nil)
}

// TokenizeCard обменивает данные карты на токен. Авторизуется публичным ключом.
func (c HTTPClient) TokenizeCard(ctx context.Context, card CardTokenRequest) (*CardToken, error) {
	return request[CardToken](ctx, c, http.MethodPost, RouteTokenizeCard, c.publicKey, card)
}

// CreateTransaction создает транзакцию. Авторизуется приватным ключом.
func (c HTTPClient) CreateTransaction(ctx context.Context, tr TransactionRequest) (*Transaction, error) {
	return request[Transaction](ctx, c, http.MethodPost, RouteTransactions, c.privateKey, tr)
}

func (c HTTPClient) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return request[Transaction](ctx, c, http.MethodGet, fmt.Sprintf(RouteTransaction, id), "", nil)
}

// request выполняет запрос и разбирает поле data ответа.
// При ответе сервера со статусом отличным от 2xx, возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func request[T any](
	ctx context.Context,
	c HTTPClient,
	method, route, bearer string,
	payload any,
) (response *T, err error) {
	var body io.Reader
	if payload != nil {
		raw, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
		body = bytes.NewReader(raw)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, c.baseURL+route, body)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, parseStatusCodeError(resp.StatusCode, respBody)
	}

	var env envelope[T]
	if jsonErr := json.Unmarshal(respBody, &env); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return &env.Data, nil
}

func parseRetryAfter(value string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(value)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}

func parseStatusCodeError(code int, body []byte) *StatusCodeError {
	statusErr := NewStatusCodeError(code)

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return statusErr
	}
	statusErr.Type = eb.Error.Type
	statusErr.Messages = parseMessages(eb.Error.Messages)
	if len(statusErr.Messages) == 0 && eb.Error.Reason != "" {
		statusErr.Messages = []string{eb.Error.Reason}
	}
	return statusErr
}

// parseMessages приводит поле error.messages к плоскому списку.
// Шлюз отдает его строкой, массивом строк или объектом поле -> сообщения. Поля объекта обходятся по алфавиту.
func parseMessages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if str == "" {
			return nil
		}
		return []string{str}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var messages []string
	for _, k := range keys {
		messages = append(messages, parseMessages(fields[k])...)
	}
	return messages
}

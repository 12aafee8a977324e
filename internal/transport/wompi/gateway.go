// Package wompi адаптер платежного шлюза Wompi: токен согласия, токенизация карт и проведение платежей.
package wompi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/transport/wompi/client"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultPollAttempts uint = 10
	defaultPollInterval      = 2 * time.Second
	defaultCustomerEmail     = "customer@test.com"

	paymentMethodCard = "CARD"
	installments      = 1
)

const (
	msgTokenizationFailed     = "Card tokenization failed"
	msgPaymentDeclined        = "Payment declined"
	msgPaymentFailed          = "Payment processing failed"
	msgStatusNotConfirmed     = "Transaction status could not be confirmed"
	referencePrefix           = "order_"
	referenceRandomSuffixBase = 36
)

// Gateway реализует порт платежного шлюза поверх Wompi API.
type Gateway struct {
	client          Client
	integritySecret string
	defaultEmail    string
	pollAttempts    uint
	pollInterval    time.Duration
	l               *logrus.Entry
	now             func() time.Time
}

func New(c Client, integritySecret string, l *logrus.Logger) *Gateway {
	return &Gateway{
		client:          c,
		integritySecret: integritySecret,
		defaultEmail:    defaultCustomerEmail,
		pollAttempts:    defaultPollAttempts,
		pollInterval:    defaultPollInterval,
		l: l.WithFields(logrus.Fields{
			"component": "wompi",
			"module":    "gateway",
		}),
		now: time.Now,
	}
}

// SetPollAttempts устанавливает сколько раз опрашивать статус транзакции, оставшейся в PENDING.
func (g *Gateway) SetPollAttempts(attempts uint) *Gateway {
	g.pollAttempts = attempts
	return g
}

// SetPollInterval устанавливает паузу перед каждым опросом статуса.
func (g *Gateway) SetPollInterval(interval time.Duration) *Gateway {
	g.pollInterval = interval
	return g
}

// SetDefaultEmail email, который отправляется в шлюз, если покупатель неизвестен.
func (g *Gateway) SetDefaultEmail(email string) *Gateway {
	g.defaultEmail = email
	return g
}

// GetAcceptanceToken получает предподписанный токен согласия мерчанта.
// Любая ошибка шлюза сводится к domain.ErrGatewayUnavailable.
func (g *Gateway) GetAcceptanceToken(ctx context.Context) (*domain.AcceptanceToken, error) {
	merchant, err := g.client.GetMerchant(ctx)
	if err != nil {
		g.l.WithError(err).Error("failed to get acceptance token")
		return nil, pkgerrors.Wrap(domain.ErrGatewayUnavailable, "failed to get acceptance token")
	}
	return &domain.AcceptanceToken{
		Token:     merchant.PresignedAcceptance.AcceptanceToken,
		Permalink: merchant.PresignedAcceptance.Permalink,
		Type:      merchant.PresignedAcceptance.Type,
	}, nil
}

// TokenizeCard токенизирует карту. Отказ шлюза возвращается как *domain.CardTokenizationError
// с сообщениями шлюза через запятую.
func (g *Gateway) TokenizeCard(ctx context.Context, args domain.TokenizeCardArgs) (*domain.CardToken, error) {
	token, err := g.client.TokenizeCard(ctx, client.CardTokenRequest{
		Number:     args.Number,
		CVC:        args.CVC,
		ExpMonth:   args.ExpMonth,
		ExpYear:    args.ExpYear,
		CardHolder: args.CardHolder,
	})
	if err != nil {
		message := gatewayMessage(err, msgTokenizationFailed)
		g.l.WithError(err).WithField("reason", message).Error("card tokenization failed")
		return nil, &domain.CardTokenizationError{Message: message}
	}
	return &domain.CardToken{
		ID:        token.ID,
		Brand:     token.Brand,
		LastFour:  token.LastFour,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// Pay проводит платеж картой.
//
// Алгоритм работы:
//  1. Получает токен согласия и формирует уникальную ссылку платежа с подписью целостности.
//  2. Создает транзакцию в шлюзе.
//  3. APPROVED сразу считается успехом. PENDING опрашивается (см. SetPollAttempts, SetPollInterval)
//     до финального статуса. Все остальные статусы и неподтвержденный PENDING являются отказом.
//
// Отказ и ошибки связи со шлюзом возвращаются как *domain.PaymentFailedError.
func (g *Gateway) Pay(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	if req.AmountInCents <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, req.AmountInCents)
	}

	acceptance, acceptanceErr := g.GetAcceptanceToken(ctx)
	if acceptanceErr != nil {
		return nil, &domain.PaymentFailedError{Message: msgPaymentFailed}
	}

	email := req.CustomerEmail
	if email == "" {
		email = g.defaultEmail
	}
	reference := g.reference()

	l := g.l.WithFields(logrus.Fields{
		"reference": reference,
		"amount":    req.AmountInCents,
	})

	tr, err := g.client.CreateTransaction(ctx, client.TransactionRequest{
		AmountInCents: req.AmountInCents,
		Currency:      domain.Currency,
		CustomerEmail: email,
		PaymentMethod: client.PaymentMethod{
			Type:         paymentMethodCard,
			Token:        req.CardToken,
			Installments: installments,
		},
		Reference:       reference,
		AcceptanceToken: acceptance.Token,
		Signature:       IntegritySignature(reference, req.AmountInCents, domain.Currency, g.integritySecret),
	})
	if err != nil {
		message := gatewayMessage(err, msgPaymentFailed)
		l.WithError(err).Error("payment failed")
		return nil, &domain.PaymentFailedError{Message: message}
	}

	l = l.WithField("externalID", tr.ID)

	if tr.Status == client.StatusPending {
		tr = g.pollTransactionStatus(ctx, l, tr.ID)
	}

	if tr.Status == client.StatusApproved {
		return &domain.PaymentResult{ExternalID: tr.ID, Status: string(tr.Status)}, nil
	}

	message := tr.StatusMessage
	if message == "" {
		message = msgPaymentDeclined
	}
	l.WithFields(logrus.Fields{
		"status": tr.Status,
		"reason": message,
	}).Info("payment not approved")
	return nil, &domain.PaymentFailedError{
		ExternalID: tr.ID,
		Status:     string(tr.Status),
		Message:    message,
	}
}

// GetTransactionStatus читает транзакцию шлюза. Возвращает nil, если прочитать не удалось.
func (g *Gateway) GetTransactionStatus(ctx context.Context, externalID string) *domain.GatewayTransaction {
	tr, err := g.client.GetTransaction(ctx, externalID)
	if err != nil {
		g.l.WithError(err).WithField("externalID", externalID).Error("failed to get transaction")
		return nil
	}
	return &domain.GatewayTransaction{
		ID:            tr.ID,
		Status:        string(tr.Status),
		StatusMessage: tr.StatusMessage,
		Reference:     tr.Reference,
		AmountInCents: tr.AmountInCents,
		Currency:      tr.Currency,
	}
}

// pollTransactionStatus ждет выхода транзакции из PENDING. Перед каждой попыткой выдерживает pollInterval.
// Ошибки опроса не прерывают цикл. Если статус так и не стал финальным, возвращает PENDING
// с сообщением о неподтвержденном статусе.
func (g *Gateway) pollTransactionStatus(ctx context.Context, l *logrus.Entry, id string) *client.Transaction {
	unconfirmed := &client.Transaction{
		ID:            id,
		Status:        client.StatusPending,
		StatusMessage: msgStatusNotConfirmed,
	}

	timer := time.NewTimer(g.pollInterval)
	defer timer.Stop()

	for attempt := range g.pollAttempts {
		if attempt > 0 {
			timer.Reset(g.pollInterval)
		}
		select {
		case <-ctx.Done():
			l.WithError(ctx.Err()).Warn("transaction polling interrupted")
			return unconfirmed
		case <-timer.C:
		}

		tr, err := g.client.GetTransaction(ctx, id)
		if err != nil {
			l.WithError(err).WithField("attempt", attempt+1).Warn("failed to poll transaction status")
			continue
		}
		l.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"status":  tr.Status,
		}).Debug("transaction status polled")
		if tr.Status != client.StatusPending {
			return tr
		}
	}

	l.WithField("attempts", g.pollAttempts).Warn("transaction is still pending after polling")
	return unconfirmed
}

// reference уникальная ссылка платежа вида order_<unix ms>_<случайный суффикс>.
func (g *Gateway) reference() string {
	return referencePrefix +
		strconv.FormatInt(g.now().UnixMilli(), 10) + "_" +
		strconv.FormatUint(rand.Uint64(), referenceRandomSuffixBase) //nolint:gosec
}

// IntegritySignature подпись целостности платежа: sha256 от reference + amount + currency + secret в hex.
func IntegritySignature(reference string, amountInCents int64, currency, secret string) string {
	sum := sha256.Sum256([]byte(reference + strconv.FormatInt(amountInCents, 10) + currency + secret))
	return hex.EncodeToString(sum[:])
}

// gatewayMessage сообщения шлюза из ответа с ошибкой через запятую или fallback.
func gatewayMessage(err error, fallback string) string {
	var statusErr *client.StatusCodeError
	if errors.As(err, &statusErr) && len(statusErr.Messages) > 0 {
		return strings.Join(statusErr.Messages, ", ")
	}
	return fallback
}

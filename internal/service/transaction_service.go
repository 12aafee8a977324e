package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	msgPaymentProcessingFailed = "Payment processing failed"
	// persistTimeout ограничивает запись результата платежа, которая не зависит от отмены запроса.
	persistTimeout = 10 * time.Second
)

// Ошибки компенсирующего отказа: деньги списаны, но заказ выполнить нельзя.
var (
	errProductNotFound   = errors.New("Product not found")    //nolint:revive,stylecheck
	errProductOutOfStock = errors.New("Product out of stock") //nolint:revive,stylecheck
)

type TransactionOptions struct {
	BaseCharge   int64
	ShippingCost int64
}

func DefaultTransactionOptions() TransactionOptions {
	return TransactionOptions{
		BaseCharge:   domain.DefaultBaseCharge,
		ShippingCost: domain.DefaultShippingCost,
	}
}

type TransactionService struct {
	uow          uow.UOW
	trRepo       TransactionRepository
	productRepo  ProductRepository
	customerRepo CustomerRepository
	gateway      PaymentGateway
	opts         TransactionOptions
	locks        *keyedMutex
	l            *logrus.Entry
	now          func() time.Time
}

func NewTransactionService(
	u uow.UOW,
	gateway PaymentGateway,
	opts TransactionOptions,
	l *logrus.Logger,
) (*TransactionService, error) {
	trRepo, err := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err
	}
	productRepo, err := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err
	}
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err
	}
	return &TransactionService{
		uow:          u,
		trRepo:       trRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		gateway:      gateway,
		opts:         opts,
		locks:        newKeyedMutex(),
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "transaction",
		}),
		now: time.Now,
	}, nil
}

type CreateTransactionArgs struct {
	ProductID  uuid.UUID
	CustomerID *uuid.UUID
	// ShippingCost nil означает стоимость доставки по умолчанию.
	ShippingCost *int64
}

// Create создает транзакцию в статусе PENDING по текущей цене товара.
//
// Наличие на складе только проверяется, товар не резервируется: списание происходит при успешной оплате.
// Ошибки: *domain.NotFoundError (товар или покупатель), domain.ErrInsufficientStock, domain.ErrInvalidAmount.
func (t *TransactionService) Create(ctx context.Context, args CreateTransactionArgs) (*domain.Transaction, error) {
	product, err := t.productRepo.FindByID(ctx, args.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("product", args.ProductID)
		}
		return nil, fmt.Errorf("creating transaction: %w", err)
	}
	if !product.HasStock(1) {
		return nil, domain.ErrInsufficientStock
	}

	if args.CustomerID != nil {
		if _, customerErr := t.customerRepo.FindByID(ctx, *args.CustomerID); customerErr != nil {
			if errors.Is(customerErr, domain.ErrRecordNotFound) {
				return nil, domain.NewNotFoundError("customer", *args.CustomerID)
			}
			return nil, fmt.Errorf("creating transaction: %w", customerErr)
		}
	}

	shippingCost := t.opts.ShippingCost
	if args.ShippingCost != nil {
		shippingCost = *args.ShippingCost
	}

	tr, trErr := domain.NewTransaction(domain.NewTransactionArgs{
		ProductID:    product.ID,
		CustomerID:   args.CustomerID,
		ProductPrice: product.Price,
		BaseCharge:   t.opts.BaseCharge,
		ShippingCost: shippingCost,
	}, t.now())
	if trErr != nil {
		return nil, trErr //nolint:wrapcheck
	}

	created, createErr := t.trRepo.Create(ctx, tr)
	if createErr != nil {
		return nil, fmt.Errorf("creating transaction: %w", createErr)
	}

	t.l.WithFields(logrus.Fields{
		"transactionID": created.ID,
		"productID":     created.ProductID,
		"totalAmount":   created.TotalAmount,
	}).Info("transaction created")
	return created, nil
}

func (t *TransactionService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	tr, err := t.trRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("transaction", id)
		}
		return nil, fmt.Errorf("getting transaction: %w", err)
	}
	return tr, nil
}

// Pay оплачивает транзакцию токеном карты.
//
// Алгоритм работы:
//  1. Захватывает блокировку по id транзакции, чтобы параллельные оплаты одной транзакции шли по очереди.
//  2. Транзакция должна существовать и быть PENDING, иначе *domain.NotFoundError или domain.ErrAlreadyProcessed.
//     В этом случае шлюз не вызывается.
//  3. Отправляет платеж в шлюз на TotalAmount с email покупателя, если он известен.
//  4. Отказ шлюза: транзакция становится DECLINED, склад не трогается, возвращается *domain.PaymentFailedError.
//  5. Успех: в одной транзакции БД списывает единицу товара и переводит транзакцию в APPROVED.
//     Если товара нет или он закончился, выполняется компенсирующий отказ: DECLINED и *domain.PaymentFailedError.
//
// После вызова шлюза результат записывается на контексте, не зависящем от отмены запроса.
func (t *TransactionService) Pay(ctx context.Context, id uuid.UUID, cardToken string) (*domain.Transaction, error) {
	unlock, lockErr := t.locks.Lock(ctx, id)
	if lockErr != nil {
		return nil, fmt.Errorf("paying transaction: %w", lockErr)
	}
	defer unlock()

	tr, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tr.IsPending() {
		return nil, domain.ErrAlreadyProcessed
	}

	email, emailErr := t.customerEmail(ctx, tr)
	if emailErr != nil {
		return nil, emailErr
	}

	l := t.l.WithFields(logrus.Fields{
		"transactionID": tr.ID,
		"amount":        tr.TotalAmount,
	})

	result, payErr := t.gateway.Pay(ctx, domain.PaymentRequest{
		AmountInCents: tr.TotalAmount,
		CardToken:     cardToken,
		CustomerEmail: email,
	})

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if payErr != nil {
		return t.declineFailedPayment(persistCtx, l, tr, payErr)
	}
	return t.approvePayment(persistCtx, l, tr, result)
}

// GatewayStatus читает состояние транзакции на стороне шлюза для ручной сверки.
func (t *TransactionService) GatewayStatus(ctx context.Context, id uuid.UUID) (*domain.GatewayTransaction, error) {
	tr, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tr.ExternalTransactionID == "" {
		return nil, domain.NewNotFoundError("gateway transaction", id)
	}
	status := t.gateway.GetTransactionStatus(ctx, tr.ExternalTransactionID)
	if status == nil {
		return nil, domain.NewNotFoundError("gateway transaction", id)
	}
	return status, nil
}

func (t *TransactionService) declineFailedPayment(
	ctx context.Context,
	l *logrus.Entry,
	tr *domain.Transaction,
	payErr error,
) (*domain.Transaction, error) {
	var failed *domain.PaymentFailedError
	if !errors.As(payErr, &failed) {
		l.WithError(payErr).Error("payment gateway error")
		failed = &domain.PaymentFailedError{Message: msgPaymentProcessingFailed}
	}

	if _, err := t.decline(ctx, tr, failed.ExternalID); err != nil {
		return nil, err
	}

	l.WithFields(logrus.Fields{
		"externalID": failed.ExternalID,
		"status":     failed.Status,
		"reason":     failed.Message,
	}).Info("payment declined")
	return nil, failed
}

func (t *TransactionService) approvePayment(
	ctx context.Context,
	l *logrus.Entry,
	tr *domain.Transaction,
	result *domain.PaymentResult,
) (*domain.Transaction, error) {
	l = l.WithField("externalID", result.ExternalID)

	next := *tr
	if err := next.Approve(result.ExternalID, t.now()); err != nil {
		return nil, err //nolint:wrapcheck
	}
	statusArgs := finalStatusArgs(&next, result.ExternalID)

	var approved *domain.Transaction
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		productRepo, repoErr := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		trRepo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if _, err := productRepo.DecreaseStock(c, tr.ProductID, 1); err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				return errProductNotFound
			case errors.Is(err, domain.ErrInsufficientStock):
				return errProductOutOfStock
			default:
				return err //nolint:wrapcheck
			}
		}

		updated, err := trRepo.UpdateStatusIfPending(c, statusArgs)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.ErrAlreadyProcessed
			}
			return err //nolint:wrapcheck
		}
		approved = updated
		return nil
	})

	switch {
	case txErr == nil:
		l.Info("payment approved")
		return approved, nil
	case errors.Is(txErr, errProductNotFound), errors.Is(txErr, errProductOutOfStock):
		l.WithField("reason", txErr.Error()).
			Warn("payment approved by gateway but order cannot be fulfilled, refund required")
		if _, err := t.decline(ctx, tr, result.ExternalID); err != nil {
			return nil, err
		}
		return nil, &domain.PaymentFailedError{
			ExternalID: result.ExternalID,
			Status:     result.Status,
			Message:    txErr.Error(),
		}
	case errors.Is(txErr, domain.ErrAlreadyProcessed):
		return nil, domain.ErrAlreadyProcessed
	default:
		l.WithError(txErr).Error("payment approved by gateway but transaction was not updated")
		return nil, fmt.Errorf("approving transaction: %w", txErr)
	}
}

// decline переводит PENDING транзакцию в DECLINED.
func (t *TransactionService) decline(
	ctx context.Context,
	tr *domain.Transaction,
	externalID string,
) (*domain.Transaction, error) {
	next := *tr
	if err := next.Decline(externalID, t.now()); err != nil {
		return nil, err //nolint:wrapcheck
	}

	declined, err := t.trRepo.UpdateStatusIfPending(ctx, finalStatusArgs(&next, externalID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, fmt.Errorf("declining transaction: %w", err)
	}
	return declined, nil
}

// finalStatusArgs условная запись финального статуса, уже примененного к tr доменной моделью.
func finalStatusArgs(tr *domain.Transaction, externalID string) repoargs.UpdateTransactionStatus {
	return repoargs.UpdateTransactionStatus{
		ID:         tr.ID,
		Status:     tr.Status,
		ExternalID: externalID,
		UpdatedAt:  tr.UpdatedAt,
	}
}

// customerEmail email покупателя транзакции или пустая строка, если покупатель не указан или удален.
func (t *TransactionService) customerEmail(ctx context.Context, tr *domain.Transaction) (string, error) {
	if tr.CustomerID == nil {
		return "", nil
	}
	customer, err := t.customerRepo.FindByID(ctx, *tr.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("paying transaction: %w", err)
	}
	return customer.Email, nil
}

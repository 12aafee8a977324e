package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/logger"
	"github.com/fsdevblog/groph-checkout/internal/repository/memrepo"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PayFlowTestSuite проверяет сервисы на хранилище в памяти: без моков репозиториев и uow.
type PayFlowTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *mocks.MockPaymentGateway
	services    *AppServices
}

func TestPayFlowSuite(t *testing.T) {
	suite.Run(t, new(PayFlowTestSuite))
}

func (s *PayFlowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = mocks.NewMockPaymentGateway(s.mockCtrl)

	services, err := Factory(memrepo.NewUnitOfWork(), s.mockGateway, DefaultTransactionOptions(), logger.New(io.Discard))
	s.Require().NoError(err)
	s.services = services
}

func (s *PayFlowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PayFlowTestSuite) seedProduct(price int64, stock int) domain.Product {
	created, err := s.services.ProductService.SeedCatalog(s.T().Context(), []repoargs.CreateProduct{{
		Name:  gofakeit.ProductName(),
		Price: price,
		Stock: stock,
	}})
	s.Require().NoError(err)
	s.Require().Equal(1, created)

	products, err := s.services.ProductService.GetAll(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	return products[0]
}

func (s *PayFlowTestSuite) createTransaction(productID uuid.UUID) *domain.Transaction {
	tr, err := s.services.TransactionService.Create(s.T().Context(), CreateTransactionArgs{ProductID: productID})
	s.Require().NoError(err)
	return tr
}

func (s *PayFlowTestSuite) approveAll() {
	s.mockGateway.EXPECT().Pay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.PaymentRequest) (*domain.PaymentResult, error) {
			return &domain.PaymentResult{ExternalID: uuid.NewString(), Status: "APPROVED"}, nil
		}).AnyTimes()
}

func (s *PayFlowTestSuite) TestApproveDecrementsStock() {
	product := s.seedProduct(100000, 3)
	tr := s.createTransaction(product.ID)
	s.Equal(int64(113000), tr.TotalAmount)

	s.mockGateway.EXPECT().Pay(gomock.Any(), gomock.Any()).
		Return(&domain.PaymentResult{ExternalID: "ext-approved", Status: "APPROVED"}, nil)

	paid, err := s.services.TransactionService.Pay(s.T().Context(), tr.ID, "tok_test")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusApproved, paid.Status)
	s.Equal("ext-approved", paid.ExternalTransactionID)

	after, err := s.services.ProductService.GetByID(s.T().Context(), product.ID)
	s.Require().NoError(err)
	s.Equal(2, after.Stock)
}

func (s *PayFlowTestSuite) TestDeclineKeepsStock() {
	product := s.seedProduct(50000, 1)
	tr := s.createTransaction(product.ID)

	s.mockGateway.EXPECT().Pay(gomock.Any(), gomock.Any()).
		Return(nil, &domain.PaymentFailedError{ExternalID: "ext-declined", Status: "DECLINED", Message: "Payment declined"})

	_, err := s.services.TransactionService.Pay(s.T().Context(), tr.ID, "tok_test")
	s.Require().ErrorIs(err, domain.ErrPaymentFailed)
	s.Equal("Payment declined", err.Error())

	stored, err := s.services.TransactionService.Get(s.T().Context(), tr.ID)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusDeclined, stored.Status)
	s.Equal("ext-declined", stored.ExternalTransactionID)

	after, err := s.services.ProductService.GetByID(s.T().Context(), product.ID)
	s.Require().NoError(err)
	s.Equal(1, after.Stock)

	// повторная оплата отклоненной транзакции не доходит до шлюза.
	_, err = s.services.TransactionService.Pay(s.T().Context(), tr.ID, "tok_test")
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *PayFlowTestSuite) TestDoublePayChargesOnce() {
	product := s.seedProduct(100000, 5)
	tr := s.createTransaction(product.ID)

	s.mockGateway.EXPECT().Pay(gomock.Any(), gomock.Any()).
		Return(&domain.PaymentResult{ExternalID: "ext-once", Status: "APPROVED"}, nil).
		Times(1)

	const workers = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		processed int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.TransactionService.Pay(context.Background(), tr.ID, "tok_test")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrAlreadyProcessed):
				processed++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(workers-1, processed)

	after, err := s.services.ProductService.GetByID(s.T().Context(), product.ID)
	s.Require().NoError(err)
	s.Equal(4, after.Stock)
}

func (s *PayFlowTestSuite) TestLastUnitRace() {
	product := s.seedProduct(100000, 1)
	first := s.createTransaction(product.ID)
	second := s.createTransaction(product.ID)
	s.approveAll()

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, id := range []uuid.UUID{first.ID, second.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = s.services.TransactionService.Pay(context.Background(), id, "tok_test")
		}()
	}
	wg.Wait()

	var approved, outOfStock int
	for _, err := range results {
		var failed *domain.PaymentFailedError
		switch {
		case err == nil:
			approved++
		case errors.As(err, &failed) && failed.Message == "Product out of stock":
			outOfStock++
		}
	}
	s.Equal(1, approved)
	s.Equal(1, outOfStock)

	after, err := s.services.ProductService.GetByID(s.T().Context(), product.ID)
	s.Require().NoError(err)
	s.Equal(0, after.Stock)

	statuses := make(map[domain.TransactionStatusType]int)
	for _, id := range []uuid.UUID{first.ID, second.ID} {
		tr, getErr := s.services.TransactionService.Get(s.T().Context(), id)
		s.Require().NoError(getErr)
		statuses[tr.Status]++
	}
	s.Equal(map[domain.TransactionStatusType]int{
		domain.TransactionStatusApproved: 1,
		domain.TransactionStatusDeclined: 1,
	}, statuses)
}

func (s *PayFlowTestSuite) TestCreateRequiresStock() {
	product := s.seedProduct(100000, 0)

	_, err := s.services.TransactionService.Create(s.T().Context(), CreateTransactionArgs{ProductID: product.ID})
	s.Require().ErrorIs(err, domain.ErrInsufficientStock)

	_, err = s.services.TransactionService.Create(s.T().Context(), CreateTransactionArgs{ProductID: uuid.New()})
	var notFound *domain.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("product", notFound.Entity)
}

func (s *PayFlowTestSuite) TestCustomerEmailSentToGateway() {
	product := s.seedProduct(100000, 1)
	customer, err := s.services.CustomerService.Create(s.T().Context(), CreateCustomerArgs{
		Email:    " Buyer@Example.com ",
		FullName: gofakeit.Name(),
		Phone:    gofakeit.Phone(),
	})
	s.Require().NoError(err)

	tr, err := s.services.TransactionService.Create(s.T().Context(), CreateTransactionArgs{
		ProductID:  product.ID,
		CustomerID: &customer.ID,
	})
	s.Require().NoError(err)

	s.mockGateway.EXPECT().Pay(gomock.Any(), domain.PaymentRequest{
		AmountInCents: 113000,
		CardToken:     "tok_test",
		CustomerEmail: "buyer@example.com",
	}).Return(&domain.PaymentResult{ExternalID: "ext-email", Status: "APPROVED"}, nil)

	_, err = s.services.TransactionService.Pay(s.T().Context(), tr.ID, "tok_test")
	s.Require().NoError(err)
}

func (s *PayFlowTestSuite) TestCustomerCreateIdempotent() {
	args := CreateCustomerArgs{
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
		Phone:    gofakeit.Phone(),
	}
	first, err := s.services.CustomerService.Create(s.T().Context(), args)
	s.Require().NoError(err)

	args.FullName = "Another Name"
	second, err := s.services.CustomerService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(first.FullName, second.FullName)

	got, err := s.services.CustomerService.Get(s.T().Context(), first.ID)
	s.Require().NoError(err)
	s.Equal(first.Email, got.Email)

	_, err = s.services.CustomerService.Get(s.T().Context(), uuid.New())
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PayFlowTestSuite) TestDeliveryCreateIdempotent() {
	product := s.seedProduct(100000, 1)
	tr := s.createTransaction(product.ID)
	customer, err := s.services.CustomerService.Create(s.T().Context(), CreateCustomerArgs{
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
	})
	s.Require().NoError(err)

	args := CreateDeliveryArgs{
		TransactionID: tr.ID,
		CustomerID:    customer.ID,
		Address:       gofakeit.Street(),
		City:          gofakeit.City(),
		Department:    gofakeit.State(),
		ZipCode:       gofakeit.Zip(),
	}
	first, err := s.services.DeliveryService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(domain.DeliveryStatusPending, first.Status)

	second, err := s.services.DeliveryService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	byTr, err := s.services.DeliveryService.GetByTransaction(s.T().Context(), tr.ID)
	s.Require().NoError(err)
	s.Equal(first.ID, byTr.ID)

	args.TransactionID = uuid.New()
	_, err = s.services.DeliveryService.Create(s.T().Context(), args)
	var notFound *domain.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("transaction", notFound.Entity)
}

func (s *PayFlowTestSuite) TestDeliveryLifecycle() {
	product := s.seedProduct(100000, 1)
	tr := s.createTransaction(product.ID)
	customer, err := s.services.CustomerService.Create(s.T().Context(), CreateCustomerArgs{
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
	})
	s.Require().NoError(err)

	delivery, err := s.services.DeliveryService.Create(s.T().Context(), CreateDeliveryArgs{
		TransactionID: tr.ID,
		CustomerID:    customer.ID,
		Address:       gofakeit.Street(),
		City:          gofakeit.City(),
		Department:    gofakeit.State(),
		ZipCode:       gofakeit.Zip(),
	})
	s.Require().NoError(err)

	_, err = s.services.DeliveryService.MarkDelivered(s.T().Context(), delivery.ID)
	s.Require().ErrorIs(err, domain.ErrInvalidDeliveryStatus)

	shipped, err := s.services.DeliveryService.Ship(s.T().Context(), delivery.ID)
	s.Require().NoError(err)
	s.Equal(domain.DeliveryStatusShipped, shipped.Status)

	_, err = s.services.DeliveryService.Ship(s.T().Context(), delivery.ID)
	s.Require().ErrorIs(err, domain.ErrInvalidDeliveryStatus)

	delivered, err := s.services.DeliveryService.MarkDelivered(s.T().Context(), delivery.ID)
	s.Require().NoError(err)
	s.Equal(domain.DeliveryStatusDelivered, delivered.Status)

	stored, err := s.services.DeliveryService.Get(s.T().Context(), delivery.ID)
	s.Require().NoError(err)
	s.Equal(domain.DeliveryStatusDelivered, stored.Status)

	_, err = s.services.DeliveryService.Ship(s.T().Context(), uuid.New())
	var notFound *domain.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("delivery", notFound.Entity)
}

func (s *PayFlowTestSuite) TestSeedCatalogOnlyOnce() {
	catalog := DefaultCatalog()
	created, err := s.services.ProductService.SeedCatalog(s.T().Context(), catalog)
	s.Require().NoError(err)
	s.Equal(len(catalog), created)

	created, err = s.services.ProductService.SeedCatalog(s.T().Context(), catalog)
	s.Require().NoError(err)
	s.Zero(created)

	products, err := s.services.ProductService.GetAll(s.T().Context())
	s.Require().NoError(err)
	s.Len(products, len(catalog))
}

func (s *PayFlowTestSuite) TestRestock() {
	product := s.seedProduct(100000, 0)

	restocked, err := s.services.ProductService.Restock(s.T().Context(), product.ID, 4)
	s.Require().NoError(err)
	s.Equal(4, restocked.Stock)

	_, err = s.services.ProductService.Restock(s.T().Context(), product.ID, 0)
	s.Require().ErrorIs(err, domain.ErrInvalidQuantity)

	_, err = s.services.ProductService.Restock(s.T().Context(), uuid.New(), 1)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

package wompi

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/logger"
	"github.com/fsdevblog/groph-checkout/internal/transport/wompi/client"
	"github.com/fsdevblog/groph-checkout/internal/transport/wompi/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test_integrity_secret"

type GatewayTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *mocks.MockClient
	gateway    *Gateway
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(s.mockCtrl)
	s.gateway = New(s.mockClient, testSecret, logger.New(io.Discard)).
		SetPollInterval(time.Millisecond)
	s.gateway.now = func() time.Time { return time.UnixMilli(1700000000000) }
}

func (s *GatewayTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GatewayTestSuite) expectAcceptance() {
	s.mockClient.EXPECT().GetMerchant(gomock.Any()).Return(&client.Merchant{
		PresignedAcceptance: client.PresignedAcceptance{AcceptanceToken: "acc_token"},
	}, nil)
}

func (s *GatewayTestSuite) TestIntegritySignature() {
	// sha256("order_1_a" + "113000" + "COP" + "secret")
	s.Equal(
		"e9957e05b3bcaebf4fc7293e659b9b1a3f9d97b91c8897ee1d73b7d165437e6b",
		IntegritySignature("order_1_a", 113000, "COP", "secret"),
	)
	s.NotEqual(
		IntegritySignature("order_1_a", 113000, "COP", "secret"),
		IntegritySignature("order_1_a", 113001, "COP", "secret"),
	)
}

func (s *GatewayTestSuite) TestGetAcceptanceToken() {
	s.mockClient.EXPECT().GetMerchant(gomock.Any()).Return(&client.Merchant{
		PresignedAcceptance: client.PresignedAcceptance{
			AcceptanceToken: "acc_token",
			Permalink:       "https://example.com/terms.pdf",
			Type:            "END_USER_POLICY",
		},
	}, nil)

	token, err := s.gateway.GetAcceptanceToken(s.T().Context())
	s.Require().NoError(err)
	s.Equal(&domain.AcceptanceToken{
		Token:     "acc_token",
		Permalink: "https://example.com/terms.pdf",
		Type:      "END_USER_POLICY",
	}, token)

	s.mockClient.EXPECT().GetMerchant(gomock.Any()).Return(nil, client.NewStatusCodeError(500))
	_, err = s.gateway.GetAcceptanceToken(s.T().Context())
	s.Require().ErrorIs(err, domain.ErrGatewayUnavailable)
}

func (s *GatewayTestSuite) TestTokenizeCard() {
	args := domain.TokenizeCardArgs{
		Number:     "4242424242424242",
		CVC:        "123",
		ExpMonth:   "08",
		ExpYear:    "28",
		CardHolder: "Jose Perez",
	}

	cases := []struct {
		name        string
		clientErr   error
		wantMessage string
	}{
		{name: "success"},
		{
			name:        "gateway messages",
			clientErr:   &client.StatusCodeError{Code: 422, Messages: []string{"Invalid number", "Invalid cvc"}},
			wantMessage: "Invalid number, Invalid cvc",
		}, {
			name:        "transport error",
			clientErr:   errors.New("connection reset"),
			wantMessage: "Card tokenization failed",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			call := s.mockClient.EXPECT().TokenizeCard(gomock.Any(), client.CardTokenRequest{
				Number:     args.Number,
				CVC:        args.CVC,
				ExpMonth:   args.ExpMonth,
				ExpYear:    args.ExpYear,
				CardHolder: args.CardHolder,
			})
			if t.clientErr != nil {
				call.Return(nil, t.clientErr)
			} else {
				call.Return(&client.CardToken{ID: "tok_1", Brand: "VISA", LastFour: "4242"}, nil)
			}

			token, err := s.gateway.TokenizeCard(s.T().Context(), args)
			if t.clientErr == nil {
				s.Require().NoError(err)
				s.Equal("tok_1", token.ID)
				s.Equal("4242", token.LastFour)
				return
			}
			var tokenErr *domain.CardTokenizationError
			s.Require().ErrorAs(err, &tokenErr)
			s.Equal(t.wantMessage, tokenErr.Message)
		})
	}
}

func (s *GatewayTestSuite) TestPayApprovedImmediately() {
	s.expectAcceptance()
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req client.TransactionRequest) (*client.Transaction, error) {
			s.Equal(int64(113000), req.AmountInCents)
			s.Equal("COP", req.Currency)
			s.Equal("customer@test.com", req.CustomerEmail)
			s.Equal(client.PaymentMethod{Type: "CARD", Token: "tok_1", Installments: 1}, req.PaymentMethod)
			s.Equal("acc_token", req.AcceptanceToken)
			s.True(strings.HasPrefix(req.Reference, "order_1700000000000_"))
			s.Equal(IntegritySignature(req.Reference, 113000, "COP", testSecret), req.Signature)
			return &client.Transaction{ID: "ext-1", Status: client.StatusApproved}, nil
		})
	s.mockClient.EXPECT().GetTransaction(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 113000, CardToken: "tok_1"})
	s.Require().NoError(err)
	s.Equal(&domain.PaymentResult{ExternalID: "ext-1", Status: "APPROVED"}, result)
}

func (s *GatewayTestSuite) TestPayUsesCustomerEmail() {
	s.gateway.SetDefaultEmail("fallback@example.com")
	s.expectAcceptance()
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req client.TransactionRequest) (*client.Transaction, error) {
			s.Equal("buyer@example.com", req.CustomerEmail)
			return &client.Transaction{ID: "ext-1", Status: client.StatusApproved}, nil
		})

	_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{
		AmountInCents: 1000,
		CardToken:     "tok_1",
		CustomerEmail: "buyer@example.com",
	})
	s.Require().NoError(err)
}

func (s *GatewayTestSuite) TestPayDeclined() {
	cases := []struct {
		name        string
		tr          *client.Transaction
		wantMessage string
	}{
		{
			name:        "with status message",
			tr:          &client.Transaction{ID: "ext-2", Status: client.StatusDeclined, StatusMessage: "Fondos insuficientes"},
			wantMessage: "Fondos insuficientes",
		}, {
			name:        "without status message",
			tr:          &client.Transaction{ID: "ext-3", Status: client.StatusError},
			wantMessage: "Payment declined",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.expectAcceptance()
			s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(t.tr, nil)

			_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
			var failed *domain.PaymentFailedError
			s.Require().ErrorAs(err, &failed)
			s.Equal(t.tr.ID, failed.ExternalID)
			s.Equal(string(t.tr.Status), failed.Status)
			s.Equal(t.wantMessage, failed.Message)
		})
	}
}

func (s *GatewayTestSuite) TestPayPollsPending() {
	s.expectAcceptance()
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&client.Transaction{ID: "ext-4", Status: client.StatusPending}, nil)
	gomock.InOrder(
		s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-4").
			Return(&client.Transaction{ID: "ext-4", Status: client.StatusPending}, nil),
		s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-4").
			Return(nil, errors.New("timeout")),
		s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-4").
			Return(&client.Transaction{ID: "ext-4", Status: client.StatusApproved}, nil),
	)

	result, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
	s.Require().NoError(err)
	s.Equal("ext-4", result.ExternalID)
}

func (s *GatewayTestSuite) TestPayPendingDeclinedAfterPoll() {
	s.expectAcceptance()
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&client.Transaction{ID: "ext-5", Status: client.StatusPending}, nil)
	s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-5").
		Return(&client.Transaction{ID: "ext-5", Status: client.StatusDeclined, StatusMessage: "Tarjeta rechazada"}, nil)

	_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
	var failed *domain.PaymentFailedError
	s.Require().ErrorAs(err, &failed)
	s.Equal("Tarjeta rechazada", failed.Message)
	s.Equal("DECLINED", failed.Status)
}

func (s *GatewayTestSuite) TestPayPollingExhausted() {
	s.expectAcceptance()
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&client.Transaction{ID: "ext-6", Status: client.StatusPending}, nil)
	s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-6").
		Return(&client.Transaction{ID: "ext-6", Status: client.StatusPending}, nil).
		Times(10)

	_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
	var failed *domain.PaymentFailedError
	s.Require().ErrorAs(err, &failed)
	s.Equal("ext-6", failed.ExternalID)
	s.Equal("PENDING", failed.Status)
	s.Equal("Transaction status could not be confirmed", failed.Message)
}

func (s *GatewayTestSuite) TestPayPollingStopsOnCancel() {
	s.gateway.SetPollInterval(time.Hour)
	ctx, cancel := context.WithCancel(s.T().Context())

	s.expectAcceptance()
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ client.TransactionRequest) (*client.Transaction, error) {
			cancel()
			return &client.Transaction{ID: "ext-7", Status: client.StatusPending}, nil
		})
	s.mockClient.EXPECT().GetTransaction(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.gateway.Pay(ctx, domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
	var failed *domain.PaymentFailedError
	s.Require().ErrorAs(err, &failed)
	s.Equal("Transaction status could not be confirmed", failed.Message)
}

func (s *GatewayTestSuite) TestPayTransportErrors() {
	cases := []struct {
		name        string
		clientErr   error
		wantMessage string
	}{
		{
			name:        "validation messages",
			clientErr:   &client.StatusCodeError{Code: 422, Messages: []string{"Token expired", "Invalid signature"}},
			wantMessage: "Token expired, Invalid signature",
		}, {
			name:        "network",
			clientErr:   errors.New("dial tcp: refused"),
			wantMessage: "Payment processing failed",
		}, {
			name:        "throttled",
			clientErr:   client.NewTooManyRequestError(time.Minute),
			wantMessage: "Payment processing failed",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.expectAcceptance()
			s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, t.clientErr)

			_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
			var failed *domain.PaymentFailedError
			s.Require().ErrorAs(err, &failed)
			s.Empty(failed.ExternalID)
			s.Equal(t.wantMessage, failed.Message)
		})
	}
}

func (s *GatewayTestSuite) TestPayAcceptanceUnavailable() {
	s.mockClient.EXPECT().GetMerchant(gomock.Any()).Return(nil, errors.New("no route to host"))
	s.mockClient.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 1000, CardToken: "tok_1"})
	s.Require().ErrorIs(err, domain.ErrPaymentFailed)
	s.Equal("Payment processing failed", err.Error())
}

func (s *GatewayTestSuite) TestPayInvalidAmount() {
	s.mockClient.EXPECT().GetMerchant(gomock.Any()).Times(0)

	_, err := s.gateway.Pay(s.T().Context(), domain.PaymentRequest{AmountInCents: 0, CardToken: "tok_1"})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *GatewayTestSuite) TestGetTransactionStatus() {
	s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-8").Return(&client.Transaction{
		ID:            "ext-8",
		Status:        client.StatusApproved,
		Reference:     "order_1_a",
		AmountInCents: 1000,
		Currency:      "COP",
	}, nil)
	s.mockClient.EXPECT().GetTransaction(gomock.Any(), "ext-9").Return(nil, client.NewStatusCodeError(404))

	tr := s.gateway.GetTransactionStatus(s.T().Context(), "ext-8")
	s.Require().NotNil(tr)
	s.Equal("APPROVED", tr.Status)
	s.Equal("order_1_a", tr.Reference)

	s.Nil(s.gateway.GetTransactionStatus(s.T().Context(), "ext-9"))
}

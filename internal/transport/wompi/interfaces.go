package wompi

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-checkout/internal/transport/wompi/client"
)

type Client interface {
	GetMerchant(ctx context.Context) (*client.Merchant, error)
	TokenizeCard(ctx context.Context, card client.CardTokenRequest) (*client.CardToken, error)
	CreateTransaction(ctx context.Context, tr client.TransactionRequest) (*client.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*client.Transaction, error)
}

package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// DefaultPayTimeout больше времени опроса шлюза по умолчанию (10 попыток по 2 секунды) вместе с запросами к нему.
	DefaultPayTimeout = 45 * time.Second
	// GatewayTimeout для одиночных запросов к шлюзу.
	GatewayTimeout = 15 * time.Second
)

const (
	ProductsRoute           = "/products"
	ProductRoute            = "/products/:id"
	CustomersRoute          = "/customers"
	CustomerRoute           = "/customers/:id"
	DeliveriesRoute         = "/deliveries"
	DeliveryRoute           = "/deliveries/:id"
	DeliveryByTxRoute       = "/deliveries/transaction/:transactionId"
	TransactionsRoute       = "/transactions"
	TransactionRoute        = "/transactions/:id"
	TransactionPayRoute     = "/transactions/:id/pay"
	WompiAcceptanceRoute    = "/wompi/acceptance-token"
	WompiTokenizeCardRoute  = "/wompi/tokenize-card"
	AdminRouteGroup         = "/admin"
	AdminRestockRoute       = "/products/:id/restock"
	AdminGatewayStatusRoute = "/transactions/:id/gateway-status"

	AdminShipDeliveryRoute     = "/deliveries/:id/ship"
	AdminCompleteDeliveryRoute = "/deliveries/:id/deliver"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	ProductService     ProductServicer
	CustomerService    CustomerServicer
	DeliveryService    DeliveryServicer
	TransactionService TransactionServicer
	WompiService       WompiServicer
	AdminJWTSecret     []byte
	// PayTimeout должен превышать время опроса шлюза. Если не задан, DefaultPayTimeout.
	PayTimeout time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	productsHandler := NewProductsHandler(args.ProductService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	deliveriesHandler := NewDeliveriesHandler(args.DeliveryService)
	transactionsHandler := NewTransactionsHandler(args.TransactionService, args.PayTimeout)
	wompiHandler := NewWompiHandler(args.WompiService)
	adminHandler := NewAdminHandler(args.ProductService, args.TransactionService, args.DeliveryService)

	r.GET(ProductsRoute, productsHandler.Index)
	r.GET(ProductRoute, productsHandler.Show)

	r.POST(CustomersRoute, customersHandler.Create)
	r.GET(CustomerRoute, customersHandler.Show)

	r.POST(DeliveriesRoute, deliveriesHandler.Create)
	r.GET(DeliveryRoute, deliveriesHandler.Show)
	r.GET(DeliveryByTxRoute, deliveriesHandler.ShowByTransaction)

	r.POST(TransactionsRoute, transactionsHandler.Create)
	r.GET(TransactionRoute, transactionsHandler.Show)
	r.POST(TransactionPayRoute, transactionsHandler.Pay)

	r.GET(WompiAcceptanceRoute, wompiHandler.AcceptanceToken)
	r.POST(WompiTokenizeCardRoute, wompiHandler.TokenizeCard)

	admin := r.Group(AdminRouteGroup)
	admin.Use(middlewares.AdminRequired(args.AdminJWTSecret))
	// ниже все роуты группы требуют токен администратора.
	admin.POST(AdminRestockRoute, adminHandler.Restock)
	admin.GET(AdminGatewayStatusRoute, adminHandler.GatewayStatus)
	admin.POST(AdminShipDeliveryRoute, adminHandler.ShipDelivery)
	admin.POST(AdminCompleteDeliveryRoute, adminHandler.CompleteDelivery)
	return r, nil
}

package service

import (
	"fmt"

	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	ProductService     *ProductService
	CustomerService    *CustomerService
	DeliveryService    *DeliveryService
	TransactionService *TransactionService
}

func Factory(
	unitOfWork uow.UOW,
	gateway PaymentGateway,
	opts TransactionOptions,
	l *logrus.Logger,
) (*AppServices, error) {
	productService, productServiceErr := NewProductService(unitOfWork, l)
	if productServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", productServiceErr.Error())
	}

	customerService, customerServiceErr := NewCustomerService(unitOfWork)
	if customerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", customerServiceErr.Error())
	}

	deliveryService, deliveryServiceErr := NewDeliveryService(unitOfWork)
	if deliveryServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", deliveryServiceErr.Error())
	}

	transactionService, transactionServiceErr := NewTransactionService(unitOfWork, gateway, opts, l)
	if transactionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionServiceErr.Error())
	}

	return &AppServices{
		ProductService:     productService,
		CustomerService:    customerService,
		DeliveryService:    deliveryService,
		TransactionService: transactionService,
	}, nil
}

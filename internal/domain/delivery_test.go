package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatusFlow(t *testing.T) {
	d := NewDelivery(NewDeliveryArgs{
		TransactionID: uuid.New(),
		CustomerID:    uuid.New(),
		Address:       "Calle 10 # 20-30",
		City:          "Bogota",
		Department:    "Cundinamarca",
		ZipCode:       "110111",
	}, time.Now())

	assert.Equal(t, DeliveryStatusPending, d.Status)
	require.ErrorIs(t, d.MarkDelivered(), ErrInvalidDeliveryStatus)

	require.NoError(t, d.Ship())
	assert.Equal(t, DeliveryStatusShipped, d.Status)
	require.ErrorIs(t, d.Ship(), ErrInvalidDeliveryStatus)

	require.NoError(t, d.MarkDelivered())
	assert.Equal(t, DeliveryStatusDelivered, d.Status)
}

func TestNewCustomerNormalizesEmail(t *testing.T) {
	c := NewCustomer("  John.Doe@Example.COM ", " John Doe ", " 3001234567", time.Now())
	assert.Equal(t, "john.doe@example.com", c.Email)
	assert.Equal(t, "John Doe", c.FullName)
	assert.Equal(t, "3001234567", c.Phone)
}

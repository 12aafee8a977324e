package repoargs

import (
	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/google/uuid"
)

// UpdateDeliveryStatus переход доставки From -> To. Применяется, только если текущий статус равен From.
type UpdateDeliveryStatus struct {
	ID   uuid.UUID
	From domain.DeliveryStatusType
	To   domain.DeliveryStatusType
}

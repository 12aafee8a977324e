package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/google/uuid"
)

// UpdateTransactionStatus финальный переход транзакции. Применяется только к транзакции в статусе PENDING.
type UpdateTransactionStatus struct {
	ID         uuid.UUID
	Status     domain.TransactionStatusType
	ExternalID string
	// UpdatedAt время перехода. Нулевое значение означает текущее время хранилища.
	UpdatedAt time.Time
}

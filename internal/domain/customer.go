package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewCustomer создает покупателя. Email приводится к нижнему регистру, по нему проверяется уникальность.
func NewCustomer(email, fullName, phone string, now time.Time) *Customer {
	return &Customer{
		ID:        uuid.New(),
		CreatedAt: now,
		Email:     NormalizeEmail(email),
		FullName:  strings.TrimSpace(fullName),
		Phone:     strings.TrimSpace(phone),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package domain

import "math"

// Суммы хранятся в целых минимальных единицах (центах COP).
const (
	DefaultBaseCharge   int64 = 5000
	DefaultShippingCost int64 = 8000
	Currency                  = "COP"
)

// TotalAmount итоговая сумма к оплате. Отрицательные слагаемые и переполнение int64 дают ErrInvalidAmount.
func TotalAmount(productPrice, baseCharge, shippingCost int64) (int64, error) {
	if productPrice < 0 || baseCharge < 0 || shippingCost < 0 {
		return 0, ErrInvalidAmount
	}
	if baseCharge > math.MaxInt64-productPrice || shippingCost > math.MaxInt64-productPrice-baseCharge {
		return 0, ErrInvalidAmount
	}
	return productPrice + baseCharge + shippingCost, nil
}

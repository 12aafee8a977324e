package domain

// DecreaseStock списывает quantity единиц со склада.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// IncreaseStock возвращает quantity единиц на склад.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	return nil
}

func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

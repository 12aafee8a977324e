package domain

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProductStockTestSuite struct {
	suite.Suite
}

func TestProductStockSuite(t *testing.T) {
	suite.Run(t, new(ProductStockTestSuite))
}

func (s *ProductStockTestSuite) TestDecreaseStock() {
	cases := []struct {
		name      string
		stock     int
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "partial", stock: 5, quantity: 2, wantStock: 3},
		{name: "whole stock", stock: 1, quantity: 1, wantStock: 0},
		{name: "over stock", stock: 1, quantity: 2, wantStock: 1, wantErr: ErrInsufficientStock},
		{name: "empty stock", stock: 0, quantity: 1, wantStock: 0, wantErr: ErrInsufficientStock},
		{name: "zero quantity", stock: 5, quantity: 0, wantStock: 5, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", stock: 5, quantity: -1, wantStock: 5, wantErr: ErrInvalidQuantity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			p := Product{Stock: t.stock}
			err := p.DecreaseStock(t.quantity)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
			} else {
				s.Require().NoError(err)
			}
			s.Equal(t.wantStock, p.Stock)
			s.GreaterOrEqual(p.Stock, 0)
		})
	}
}

func (s *ProductStockTestSuite) TestIncreaseStock() {
	p := Product{Stock: 3}
	s.Require().NoError(p.IncreaseStock(4))
	s.Equal(7, p.Stock)

	s.Require().ErrorIs(p.IncreaseStock(0), ErrInvalidQuantity)
	s.Require().ErrorIs(p.IncreaseStock(-3), ErrInvalidQuantity)
	s.Equal(7, p.Stock)
}

func (s *ProductStockTestSuite) TestHasStock() {
	p := Product{Stock: 2}
	s.True(p.HasStock(1))
	s.True(p.HasStock(2))
	s.False(p.HasStock(3))

	empty := Product{}
	s.False(empty.HasStock(1))
}

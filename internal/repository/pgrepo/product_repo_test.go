package pgrepo

import (
	"reflect"
	"testing"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

// fakeRow отдает заранее заданные значения в Scan.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

type ProductRepositoryTestSuite struct {
	suite.Suite
	mockDB *mocks.MockDBTX
	repo   *ProductRepository
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}

func (s *ProductRepositoryTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockDB = mocks.NewMockDBTX(ctrl)
	s.repo = NewProductRepository(s.mockDB)
}

func (s *ProductRepositoryTestSuite) productRow(id uuid.UUID, stock int) fakeRow {
	now := time.Now()
	return fakeRow{values: []any{id, now, now, "PlayStation 5", "Disc Edition", int64(269900000), stock, ""}}
}

func (s *ProductRepositoryTestSuite) TestDecreaseStockSuccess() {
	id := uuid.New()
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id, 1).Return(s.productRow(id, 4))

	product, err := s.repo.DecreaseStock(s.T().Context(), id, 1)
	s.Require().NoError(err)
	s.Equal(id, product.ID)
	s.Equal(4, product.Stock)
}

func (s *ProductRepositoryTestSuite) TestDecreaseStockInsufficient() {
	id := uuid.New()
	gomock.InOrder(
		s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id, 1).Return(fakeRow{err: pgx.ErrNoRows}),
		s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id).Return(fakeRow{values: []any{true}}),
	)

	_, err := s.repo.DecreaseStock(s.T().Context(), id, 1)
	s.Require().ErrorIs(err, domain.ErrInsufficientStock)
}

func (s *ProductRepositoryTestSuite) TestDecreaseStockMissingProduct() {
	id := uuid.New()
	gomock.InOrder(
		s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id, 2).Return(fakeRow{err: pgx.ErrNoRows}),
		s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id).Return(fakeRow{values: []any{false}}),
	)

	_, err := s.repo.DecreaseStock(s.T().Context(), id, 2)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ProductRepositoryTestSuite) TestStockInvalidQuantity() {
	// в базу не ходим.
	_, err := s.repo.DecreaseStock(s.T().Context(), uuid.New(), 0)
	s.Require().ErrorIs(err, domain.ErrInvalidQuantity)

	_, err = s.repo.IncreaseStock(s.T().Context(), uuid.New(), -1)
	s.Require().ErrorIs(err, domain.ErrInvalidQuantity)
}

func (s *ProductRepositoryTestSuite) TestFindByIDNotFound() {
	id := uuid.New()
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id).Return(fakeRow{err: pgx.ErrNoRows})

	_, err := s.repo.FindByID(s.T().Context(), id)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *ProductRepositoryTestSuite) TestCount() {
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any()).Return(fakeRow{values: []any{int64(10)}})

	count, err := s.repo.Count(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(10), count)
}

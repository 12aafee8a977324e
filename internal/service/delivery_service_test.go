package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/domain"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/internal/service/mocks"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-checkout/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DeliveryServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockDeliveryRepo *mocks.MockDeliveryRepository
	deliveryService  *DeliveryService
}

func TestDeliveryServiceSuite(t *testing.T) {
	suite.Run(t, new(DeliveryServiceTestSuite))
}

func (s *DeliveryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(s.mockCtrl)
	s.mockDeliveryRepo = mocks.NewMockDeliveryRepository(s.mockCtrl)

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.DeliveryRepoName)).
		Return(s.mockDeliveryRepo, nil).AnyTimes()
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(mocks.NewMockTransactionRepository(s.mockCtrl), nil).AnyTimes()
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(mocks.NewMockCustomerRepository(s.mockCtrl), nil).AnyTimes()

	deliveryService, err := NewDeliveryService(mockUOW)
	s.Require().NoError(err)
	s.deliveryService = deliveryService
}

func (s *DeliveryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *DeliveryServiceTestSuite) delivery(status domain.DeliveryStatusType) *domain.Delivery {
	d := domain.NewDelivery(domain.NewDeliveryArgs{
		TransactionID: uuid.New(),
		CustomerID:    uuid.New(),
		Address:       "Calle 10 # 43-12",
		City:          "Medellin",
		Department:    "Antioquia",
		ZipCode:       "050021",
	}, time.Now())
	d.Status = status
	return d
}

func (s *DeliveryServiceTestSuite) TestShip() {
	repoErr := errors.New("connection reset")

	cases := []struct {
		name      string
		status    domain.DeliveryStatusType
		expectUpd bool
		updErr    error
		wantErr   error
	}{
		{name: "pending", status: domain.DeliveryStatusPending, expectUpd: true},
		{name: "already shipped", status: domain.DeliveryStatusShipped, wantErr: domain.ErrInvalidDeliveryStatus},
		{name: "delivered", status: domain.DeliveryStatusDelivered, wantErr: domain.ErrInvalidDeliveryStatus},
		{
			name:      "changed between read and write",
			status:    domain.DeliveryStatusPending,
			expectUpd: true,
			updErr:    domain.ErrRecordNotFound,
			wantErr:   domain.ErrInvalidDeliveryStatus,
		},
		{
			name:      "storage error",
			status:    domain.DeliveryStatusPending,
			expectUpd: true,
			updErr:    repoErr,
			wantErr:   repoErr,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			d := s.delivery(t.status)
			s.mockDeliveryRepo.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)
			if t.expectUpd {
				shipped := *d
				shipped.Status = domain.DeliveryStatusShipped
				ret := &shipped
				if t.updErr != nil {
					ret = nil
				}
				s.mockDeliveryRepo.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateDeliveryStatus{
					ID:   d.ID,
					From: domain.DeliveryStatusPending,
					To:   domain.DeliveryStatusShipped,
				}).Return(ret, t.updErr)
			}

			got, err := s.deliveryService.Ship(s.T().Context(), d.ID)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				s.Nil(got)
				return
			}
			s.Require().NoError(err)
			s.Equal(domain.DeliveryStatusShipped, got.Status)
		})
	}
}

func (s *DeliveryServiceTestSuite) TestMarkDelivered() {
	d := s.delivery(domain.DeliveryStatusShipped)
	delivered := *d
	delivered.Status = domain.DeliveryStatusDelivered

	s.mockDeliveryRepo.EXPECT().FindByID(gomock.Any(), d.ID).Return(d, nil)
	s.mockDeliveryRepo.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateDeliveryStatus{
		ID:   d.ID,
		From: domain.DeliveryStatusShipped,
		To:   domain.DeliveryStatusDelivered,
	}).Return(&delivered, nil)

	got, err := s.deliveryService.MarkDelivered(s.T().Context(), d.ID)
	s.Require().NoError(err)
	s.Equal(domain.DeliveryStatusDelivered, got.Status)

	missingID := uuid.New()
	s.mockDeliveryRepo.EXPECT().FindByID(gomock.Any(), missingID).Return(nil, domain.ErrRecordNotFound)
	_, err = s.deliveryService.MarkDelivered(s.T().Context(), missingID)
	var notFound *domain.NotFoundError
	s.Require().ErrorAs(err, &notFound)
}

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/logger"
	"github.com/fsdevblog/groph-checkout/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-checkout/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// handlerSuite общая часть тестов обработчиков: роутер на моках сервисов.
type handlerSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockProductService  *mocks.MockProductServicer
	mockCustomerService *mocks.MockCustomerServicer
	mockDeliveryService *mocks.MockDeliveryServicer
	mockTrService       *mocks.MockTransactionServicer
	mockWompiService    *mocks.MockWompiServicer
	jwtSecret           []byte
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())

	s.mockProductService = mocks.NewMockProductServicer(s.mockCtrl)
	s.mockCustomerService = mocks.NewMockCustomerServicer(s.mockCtrl)
	s.mockDeliveryService = mocks.NewMockDeliveryServicer(s.mockCtrl)
	s.mockTrService = mocks.NewMockTransactionServicer(s.mockCtrl)
	s.mockWompiService = mocks.NewMockWompiServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.buildRouter(0)
}

// buildRouter пересобирает роутер на тех же моках. payTimeout 0 означает таймаут оплаты по умолчанию.
func (s *handlerSuite) buildRouter(payTimeout time.Duration) {
	router, err := New(RouterArgs{
		Logger:             logger.New(io.Discard),
		ProductService:     s.mockProductService,
		CustomerService:    s.mockCustomerService,
		DeliveryService:    s.mockDeliveryService,
		TransactionService: s.mockTrService,
		WompiService:       s.mockWompiService,
		AdminJWTSecret:     s.jwtSecret,
		PayTimeout:         payTimeout,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// request выполняет запрос к роутеру. payload сериализуется в json, если не nil.
func (s *handlerSuite) request(
	method, url string,
	payload any,
	opts ...func(*testutils.RequestOptions),
) (int, []byte) {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		s.Require().NoError(err)
		args.Body = bytes.NewReader(body)
		opts = append(opts, testutils.WithHeader("Content-Type", "application/json"))
	}

	res, err := testutils.MakeRequest(args, opts...)
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, body
}

func (s *handlerSuite) decode(body []byte, v any) {
	s.Require().NoError(json.Unmarshal(body, v), string(body))
}

// errorMessage поле error из тела ответа.
func (s *handlerSuite) errorMessage(body []byte) string {
	var resp struct {
		Error string `json:"error"`
	}
	s.decode(body, &resp)
	return resp.Error
}


package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/refitlab/refitmarket/internal/core/port"
	"github.com/refitlab/refitmarket/internal/core/port/mock"
	"github.com/refitlab/refitmarket/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_CreateReview(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type reviewTest struct {
		name     string
		req      port.ReviewRequest
		mock     prepareMocks
		expError error
	}

	tests := []reviewTest{
		{
			name: "plain review earns the base reward",
			req: port.ReviewRequest{
				MemberID: 1, OrderID: 7, ProductID: 100,
				Content: "fits true to size", Rating: 5,
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						return r, nil
					})
				repo.EXPECT().AccrueCredit(gomock.Any(), uint64(1), int64(1000)).Return(nil)
			},
		},
		{
			name: "body info and photo raise the reward",
			req: port.ReviewRequest{
				MemberID: 1, OrderID: 7, ProductID: 100,
				Content: "fits true to size", Rating: 5,
				Height: 178, Weight: 72,
				ImageURL: "https://cdn.example.com/r/7.jpg",
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						return r, nil
					})
				repo.EXPECT().AccrueCredit(gomock.Any(), uint64(1), int64(2500)).Return(nil)
			},
		},
		{
			name: "duplicate review earns nothing",
			req: port.ReviewRequest{
				MemberID: 1, OrderID: 7, ProductID: 100,
				Content: "fits true to size", Rating: 5,
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrReviewAlreadyRewarded,
		},
		{
			name: "empty content",
			req: port.ReviewRequest{
				MemberID: 1, OrderID: 7, ProductID: 100, Rating: 5,
			},
			mock:     func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {},
			expError: domain.ErrBadRequest,
		},
		{
			name: "rating out of range",
			req: port.ReviewRequest{
				MemberID: 1, OrderID: 7, ProductID: 100,
				Content: "fits true to size", Rating: 6,
			},
			mock:     func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			m := mock.NewMockMetrics(mockCtrl)
			test.mock(repo, gateway, m)

			s, err := service.NewService(repo, gateway, m, logger, false)
			assert.NoError(t, err)

			result, err := s.CreateReview(context.Background(), &test.req)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotNil(t, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

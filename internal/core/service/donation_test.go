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

// runRewardUpdate applies the captured update fn to progression and
// returns what the repository would.
func runRewardUpdate(progression *domain.RewardProgression) func(context.Context, uint64, port.UpdateRewardFn) (*domain.RewardProgression, error) {
	return func(_ context.Context, _ uint64, fn port.UpdateRewardFn) (*domain.RewardProgression, error) {
		if err := fn(progression); err != nil {
			return nil, err
		}
		return progression, nil
	}
}

func TestService_SubmitDonation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	member := domain.Member{ID: 1, Email: "donor@example.com", Nickname: "donor"}
	product := domain.Product{ID: 100, Name: "denim jacket", BasePrice: 2000}

	type submitTest struct {
		name        string
		req         port.DonationRequest
		progression domain.RewardProgression
		mock        prepareMocks
		expError    error
		expLevel    int64
		expExp      int64
	}

	tests := []submitTest{
		{
			name: "credit reward and experience accrued",
			req: port.DonationRequest{
				DonorID:      1,
				ProductID:    100,
				Size:         "M",
				RewardMethod: domain.RewardMethodCredit,
			},
			progression: domain.RewardProgression{MemberID: 1, Level: 1, Experience: 50},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(100)).Return(&product, nil)
				repo.EXPECT().ReadMember(gomock.Any(), uint64(1)).Return(&member, nil)
				repo.EXPECT().CreateDonationProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dp *domain.DonationProduct) (*domain.DonationProduct, error) {
						assert.Equal(t, domain.DonationStatusInspecting, dp.Status)
						assert.Equal(t, int64(1), dp.Stock)
						return dp, nil
					})
				repo.EXPECT().AccrueCredit(gomock.Any(), uint64(1), int64(300)).Return(nil)
			},
			expLevel: 21,
			expExp:   50,
		},
		{
			name: "point reward skips credit accrual",
			req: port.DonationRequest{
				DonorID:      1,
				ProductID:    100,
				Size:         "M",
				RewardMethod: domain.RewardMethodPoint,
			},
			progression: domain.RewardProgression{MemberID: 1, Level: 1},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(100)).Return(&product, nil)
				repo.EXPECT().ReadMember(gomock.Any(), uint64(1)).Return(&member, nil)
				repo.EXPECT().CreateDonationProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dp *domain.DonationProduct) (*domain.DonationProduct, error) {
						return dp, nil
					})
			},
			expLevel: 21,
			expExp:   0,
		},
		{
			name: "unknown product",
			req: port.DonationRequest{
				DonorID:      1,
				ProductID:    999,
				RewardMethod: domain.RewardMethodCredit,
			},
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(999)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			m := mock.NewMockMetrics(mockCtrl)
			test.mock(repo, gateway, m)

			progression := test.progression
			if test.expError == nil {
				repo.EXPECT().UpdateRewardProgression(gomock.Any(), test.req.DonorID, gomock.Any()).
					DoAndReturn(runRewardUpdate(&progression))
			}

			s, err := service.NewService(repo, gateway, m, logger, false)
			assert.NoError(t, err)

			result, err := s.SubmitDonation(context.Background(), &test.req)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotNil(t, result)
				assert.Equal(t, test.expLevel, progression.Level)
				assert.Equal(t, test.expExp, progression.Experience)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_ReceiveDonation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	member := domain.Member{ID: 2, Email: "receiver@example.com", Nickname: "receiver"}
	approved := domain.DonationProduct{ID: 5, ProductID: 100, DonorID: 1, Status: domain.DonationStatusApproved, Stock: 1}

	type receiveTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []receiveTest{
		{
			name: "receive within quota",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().ReadDonationProduct(gomock.Any(), uint64(5)).Return(&approved, nil)
				repo.EXPECT().ReadMember(gomock.Any(), uint64(2)).Return(&member, nil)
				repo.EXPECT().UpdateRewardProgression(gomock.Any(), uint64(2), gomock.Any()).
					DoAndReturn(runRewardUpdate(&domain.RewardProgression{MemberID: 2, Level: 1}))
				repo.EXPECT().ReserveDonationStock(gomock.Any(), uint64(5)).Return(nil)
			},
		},
		{
			name: "quota exhausted",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				repo.EXPECT().ReadDonationProduct(gomock.Any(), uint64(5)).Return(&approved, nil)
				repo.EXPECT().ReadMember(gomock.Any(), uint64(2)).Return(&member, nil)
				repo.EXPECT().UpdateRewardProgression(gomock.Any(), uint64(2), gomock.Any()).
					DoAndReturn(runRewardUpdate(&domain.RewardProgression{MemberID: 2, Level: 1, UsedDonationCount: 1}))
			},
			expError: domain.ErrDonationQuotaExceeded,
		},
		{
			name: "not approved yet",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				inspecting := approved
				inspecting.Status = domain.DonationStatusInspecting
				repo.EXPECT().ReadDonationProduct(gomock.Any(), uint64(5)).Return(&inspecting, nil)
			},
			expError: domain.ErrDonationNotAvailable,
		},
		{
			name: "out of stock",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				gone := approved
				gone.Stock = 0
				repo.EXPECT().ReadDonationProduct(gomock.Any(), uint64(5)).Return(&gone, nil)
			},
			expError: domain.ErrDonationNotAvailable,
		},
		{
			name: "lost the stock race refunds the quota unit",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				progression := domain.RewardProgression{MemberID: 2, Level: 1}
				repo.EXPECT().ReadDonationProduct(gomock.Any(), uint64(5)).Return(&approved, nil)
				repo.EXPECT().ReadMember(gomock.Any(), uint64(2)).Return(&member, nil)
				repo.EXPECT().UpdateRewardProgression(gomock.Any(), uint64(2), gomock.Any()).
					DoAndReturn(runRewardUpdate(&progression))
				repo.EXPECT().ReserveDonationStock(gomock.Any(), uint64(5)).Return(domain.ErrInsufficientStock)
				repo.EXPECT().UpdateRewardProgression(gomock.Any(), uint64(2), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdateRewardFn) (*domain.RewardProgression, error) {
						err := fn(&progression)
						assert.NoError(t, err)
						assert.Equal(t, int64(0), progression.UsedDonationCount)
						return &progression, nil
					})
			},
			expError: domain.ErrDonationNotAvailable,
		},
		{
			name: "unrestricted receiver skips the quota",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway, m *mock.MockMetrics) {
				unrestricted := member
				unrestricted.UnrestrictedReceiver = true
				repo.EXPECT().ReadDonationProduct(gomock.Any(), uint64(5)).Return(&approved, nil)
				repo.EXPECT().ReadMember(gomock.Any(), uint64(2)).Return(&unrestricted, nil)
				repo.EXPECT().ReserveDonationStock(gomock.Any(), uint64(5)).Return(nil)
			},
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

			err = s.ReceiveDonation(context.Background(), 2, 5)
			assert.Equal(t, test.expError, err)
		})
	}
}

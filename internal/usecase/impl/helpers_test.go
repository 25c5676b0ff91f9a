package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wallet/config"
	"wallet/internal/domain/repository"
	mockRepo "wallet/internal/mocks/repository"
	mockSvc "wallet/internal/mocks/service"
	"wallet/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// engineMocks bundles every collaborator of the reconciliation engine so a
// test can wire expectations against one fixture.
type engineMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	paymentRepo    *mockRepo.MockPaymentAccountRepository
	loyaltyRepo    *mockRepo.MockLoyaltyAccountRepository
	baseLinkRepo   *mockRepo.MockBaseLinkRepository
	linkViewRepo   *mockRepo.MockLinkViewRepository
	gateway        *mockSvc.MockActivationGateway
	retryPublisher *mockSvc.MockRetryPublisher
}

func newEngineMocks(t *testing.T) *engineMocks {
	m := &engineMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		paymentRepo:    mockRepo.NewMockPaymentAccountRepository(t),
		loyaltyRepo:    mockRepo.NewMockLoyaltyAccountRepository(t),
		baseLinkRepo:   mockRepo.NewMockBaseLinkRepository(t),
		linkViewRepo:   mockRepo.NewMockLinkViewRepository(t),
		gateway:        mockSvc.NewMockActivationGateway(t),
		retryPublisher: mockSvc.NewMockRetryPublisher(t),
	}

	// The same repository mocks back both the direct fields and the
	// transaction-bound factory, mirroring how the production factory hands
	// out repositories sharing one connection.
	m.factory.EXPECT().PaymentAccountRepo().Return(m.paymentRepo).Maybe()
	m.factory.EXPECT().LoyaltyAccountRepo().Return(m.loyaltyRepo).Maybe()
	m.factory.EXPECT().BaseLinkRepo().Return(m.baseLinkRepo).Maybe()
	m.factory.EXPECT().LinkViewRepo().Return(m.linkViewRepo).Maybe()

	return m
}

// passthroughTx makes every Execute call run its body against the mock
// factory, as if the transaction committed.
func (m *engineMocks) passthroughTx(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func newTestEngine(m *engineMocks) usecase.PLLUsecase {
	return NewReconciliationService(ReconciliationServiceParams{
		TxManager:      m.txManager,
		PaymentRepo:    m.paymentRepo,
		LoyaltyRepo:    m.loyaltyRepo,
		BaseLinkRepo:   m.baseLinkRepo,
		LinkViewRepo:   m.linkViewRepo,
		Gateway:        m.gateway,
		RetryPublisher: m.retryPublisher,
		Config:         &config.Config{PLL: &config.PLLConfig{ConflictRetries: 1}},
		Logger:         testLogger(),
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package impl

import (
	"context"
	"testing"

	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	mockRepo "wallet/internal/mocks/repository"
	mockUC "wallet/internal/mocks/usecase"
	"wallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletMocks struct {
	paymentRepo *mockRepo.MockPaymentAccountRepository
	loyaltyRepo *mockRepo.MockLoyaltyAccountRepository
	pll         *mockUC.MockPLLUsecase
}

func newWalletService(t *testing.T) (usecase.WalletUsecase, *walletMocks) {
	m := &walletMocks{
		paymentRepo: mockRepo.NewMockPaymentAccountRepository(t),
		loyaltyRepo: mockRepo.NewMockLoyaltyAccountRepository(t),
		pll:         mockUC.NewMockPLLUsecase(t),
	}
	srv := NewWalletService(WalletServiceParams{
		PaymentRepo: m.paymentRepo,
		LoyaltyRepo: m.loyaltyRepo,
		PLL:         m.pll,
		Logger:      testLogger(),
	})

	return srv, m
}

func TestWalletService_AddPaymentAccount_NewCard(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: uuid.New(), Status: entity.MembershipActive}

	m.paymentRepo.EXPECT().FindByToken(ctx, "tok-new").Return(nil, repository.ErrPaymentAccountNotFound)
	m.paymentRepo.EXPECT().CreateAccount(ctx, mock.AnythingOfType("*entity.PaymentAccount")).Return(nil)
	m.paymentRepo.EXPECT().AddToWallet(ctx, userID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByUser(ctx, userID).Return([]*entity.LoyaltyMembership{membership}, nil)
	m.pll.EXPECT().
		Link(ctx, mock.MatchedBy(func(input *usecase.LinkInput) bool {
			return input.UserID == userID &&
				input.LoyaltyAccountID == membership.LoyaltyAccountID &&
				len(input.PaymentAccountIDs) == 1
		})).
		Return(&usecase.LinkOutput{}, nil)

	account, err := srv.AddPaymentAccount(ctx, &usecase.AddPaymentAccountInput{UserID: userID, Token: "tok-new"})
	require.NoError(t, err)
	assert.Equal(t, "tok-new", account.Token)
	assert.Equal(t, entity.PaymentAccountPending, account.Status)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestWalletService_AddPaymentAccount_DeduplicatesByToken(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-shared", Status: entity.PaymentAccountActive}

	m.paymentRepo.EXPECT().FindByToken(ctx, "tok-shared").Return(existing, nil)
	m.paymentRepo.EXPECT().AddToWallet(ctx, userID, existing.ID).Return(nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByUser(ctx, userID).Return(nil, nil)

	account, err := srv.AddPaymentAccount(ctx, &usecase.AddPaymentAccountInput{UserID: userID, Token: "tok-shared"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, account.ID)
	m.paymentRepo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestWalletService_RemovePaymentAccount_LastWalletDeletesRow(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-1", Status: entity.PaymentAccountActive}

	m.paymentRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.pll.EXPECT().UnlinkPaymentAccount(ctx, userID, account.ID).Return(nil)
	m.paymentRepo.EXPECT().RemoveFromWallet(ctx, userID, account.ID).Return(nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, account.ID).Return(nil, nil)
	m.paymentRepo.EXPECT().DeleteAccount(ctx, account.ID).Return(nil)

	err := srv.RemovePaymentAccount(ctx, userID, account.ID)
	require.NoError(t, err)
}

func TestWalletService_RemovePaymentAccount_OtherWalletsKeepRow(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherUserID := uuid.New()
	account := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-2", Status: entity.PaymentAccountActive}

	m.paymentRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	m.pll.EXPECT().UnlinkPaymentAccount(ctx, userID, account.ID).Return(nil)
	m.paymentRepo.EXPECT().RemoveFromWallet(ctx, userID, account.ID).Return(nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, account.ID).Return([]uuid.UUID{otherUserID}, nil)

	err := srv.RemovePaymentAccount(ctx, userID, account.ID)
	require.NoError(t, err)
	m.paymentRepo.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}

func TestWalletService_UpdatePaymentAccountStatus_TriggersReconciliation(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	accountID := uuid.New()

	m.paymentRepo.EXPECT().UpdateStatus(ctx, accountID, entity.PaymentAccountActive).Return(nil)
	m.pll.EXPECT().OnPaymentAccountChanged(ctx, accountID).Return(nil)

	err := srv.UpdatePaymentAccountStatus(ctx, accountID, entity.PaymentAccountActive)
	require.NoError(t, err)
}

func TestWalletService_AddLoyaltyCard_NewAccountAutoLinks(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-3", Status: entity.PaymentAccountActive}

	m.loyaltyRepo.EXPECT().CreateAccount(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).Return(nil)
	m.loyaltyRepo.EXPECT().
		UpsertMembership(ctx, mock.MatchedBy(func(membership *entity.LoyaltyMembership) bool {
			return membership.UserID == userID && membership.Status == entity.MembershipPending
		})).
		Return(nil)
	m.paymentRepo.EXPECT().FindWalletAccounts(ctx, userID).Return([]*entity.PaymentAccount{payment}, nil)
	m.pll.EXPECT().
		Link(ctx, mock.MatchedBy(func(input *usecase.LinkInput) bool {
			return input.UserID == userID &&
				len(input.PaymentAccountIDs) == 1 &&
				input.PaymentAccountIDs[0] == payment.ID
		})).
		Return(&usecase.LinkOutput{}, nil)

	account, err := srv.AddLoyaltyCard(ctx, &usecase.AddLoyaltyCardInput{
		UserID:   userID,
		PlanID:   planID,
		PlanSlug: "coffee-club",
	})
	require.NoError(t, err)
	assert.Equal(t, planID, account.PlanID)
	assert.Equal(t, "coffee-club", account.PlanSlug)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestWalletService_AddLoyaltyCard_JoinsExistingAccount(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, existing.ID).Return(existing, nil)
	m.loyaltyRepo.EXPECT().
		UpsertMembership(ctx, mock.MatchedBy(func(membership *entity.LoyaltyMembership) bool {
			return membership.UserID == userID && membership.LoyaltyAccountID == existing.ID
		})).
		Return(nil)
	m.paymentRepo.EXPECT().FindWalletAccounts(ctx, userID).Return(nil, nil)

	account, err := srv.AddLoyaltyCard(ctx, &usecase.AddLoyaltyCardInput{
		UserID:           userID,
		LoyaltyAccountID: existing.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, account.ID)
	m.loyaltyRepo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	m.pll.AssertNotCalled(t, "Link", mock.Anything, mock.Anything)
}

func TestWalletService_RemoveLoyaltyCard(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	loyaltyID := uuid.New()
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyaltyID, Status: entity.MembershipActive}

	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyaltyID).Return(membership, nil)
	m.pll.EXPECT().UnlinkLoyaltyAccount(ctx, userID, loyaltyID).Return(nil)
	m.loyaltyRepo.EXPECT().DeleteMembership(ctx, userID, loyaltyID).Return(nil)

	err := srv.RemoveLoyaltyCard(ctx, userID, loyaltyID)
	require.NoError(t, err)
}

func TestWalletService_RemoveLoyaltyCard_NoMembership(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	loyaltyID := uuid.New()

	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyaltyID).Return(nil, repository.ErrMembershipNotFound)

	err := srv.RemoveLoyaltyCard(ctx, userID, loyaltyID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMembershipNotFound))
	m.pll.AssertNotCalled(t, "UnlinkLoyaltyAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletService_UpdateMembershipStatus_TriggersReconciliation(t *testing.T) {
	srv, m := newWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	loyaltyID := uuid.New()
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyaltyID, Status: entity.MembershipPending}

	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyaltyID).Return(membership, nil)
	m.loyaltyRepo.EXPECT().
		UpsertMembership(ctx, mock.MatchedBy(func(updated *entity.LoyaltyMembership) bool {
			return updated.UserID == userID && updated.Status == entity.MembershipActive
		})).
		Return(nil)
	m.pll.EXPECT().OnLoyaltyMembershipChanged(ctx, userID, loyaltyID).Return(nil)

	err := srv.UpdateMembershipStatus(ctx, userID, loyaltyID, entity.MembershipActive)
	require.NoError(t, err)
}

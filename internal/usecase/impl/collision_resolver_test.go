package impl

import (
	"context"
	"testing"

	"wallet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionResolver_EarliestCreatedLinkWins(t *testing.T) {
	m := newEngineMocks(t)
	resolver := newCollisionResolver()

	ctx := context.Background()
	userID := uuid.New()
	paymentID := uuid.New()
	planID := uuid.New()
	firstLoyaltyID := uuid.New()
	secondLoyaltyID := uuid.New()

	links := []*entity.BaseLink{
		{ID: uuid.New(), PaymentAccountID: paymentID, LoyaltyAccountID: firstLoyaltyID, CreatedSeq: 10},
		{ID: uuid.New(), PaymentAccountID: paymentID, LoyaltyAccountID: secondLoyaltyID, CreatedSeq: 20},
	}

	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, paymentID, planID).Return(links, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, paymentID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, firstLoyaltyID).
		Return([]*entity.LoyaltyMembership{
			{UserID: userID, LoyaltyAccountID: firstLoyaltyID, Status: entity.MembershipActive},
		}, nil)

	winner, ok, err := resolver.Resolve(ctx, m.factory, paymentID, planID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, firstLoyaltyID, winner)
}

func TestCollisionResolver_PendingMembershipIsEligible(t *testing.T) {
	m := newEngineMocks(t)
	resolver := newCollisionResolver()

	ctx := context.Background()
	userID := uuid.New()
	paymentID := uuid.New()
	planID := uuid.New()
	loyaltyID := uuid.New()

	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, paymentID, planID).
		Return([]*entity.BaseLink{
			{ID: uuid.New(), PaymentAccountID: paymentID, LoyaltyAccountID: loyaltyID, CreatedSeq: 1},
		}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, paymentID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyaltyID).
		Return([]*entity.LoyaltyMembership{
			{UserID: userID, LoyaltyAccountID: loyaltyID, Status: entity.MembershipAuthInProgress},
		}, nil)

	winner, ok, err := resolver.Resolve(ctx, m.factory, paymentID, planID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, loyaltyID, winner)
}

func TestCollisionResolver_SkipsIneligibleCandidates(t *testing.T) {
	m := newEngineMocks(t)
	resolver := newCollisionResolver()

	ctx := context.Background()
	holderID := uuid.New()
	strangerID := uuid.New()
	paymentID := uuid.New()
	planID := uuid.New()
	firstLoyaltyID := uuid.New()
	secondLoyaltyID := uuid.New()

	links := []*entity.BaseLink{
		{ID: uuid.New(), PaymentAccountID: paymentID, LoyaltyAccountID: firstLoyaltyID, CreatedSeq: 1},
		{ID: uuid.New(), PaymentAccountID: paymentID, LoyaltyAccountID: secondLoyaltyID, CreatedSeq: 2},
	}

	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, paymentID, planID).Return(links, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, paymentID).Return([]uuid.UUID{holderID}, nil)

	// The older candidate only has a membership from a wallet that does not
	// hold the card, plus a rejected one from the holder. Neither counts.
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, firstLoyaltyID).
		Return([]*entity.LoyaltyMembership{
			{UserID: strangerID, LoyaltyAccountID: firstLoyaltyID, Status: entity.MembershipActive},
			{UserID: holderID, LoyaltyAccountID: firstLoyaltyID, Status: entity.MembershipInvalidCredentials},
		}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, secondLoyaltyID).
		Return([]*entity.LoyaltyMembership{
			{UserID: holderID, LoyaltyAccountID: secondLoyaltyID, Status: entity.MembershipActive},
		}, nil)

	winner, ok, err := resolver.Resolve(ctx, m.factory, paymentID, planID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, secondLoyaltyID, winner)
}

func TestCollisionResolver_NoEligibleCandidate(t *testing.T) {
	m := newEngineMocks(t)
	resolver := newCollisionResolver()

	ctx := context.Background()
	holderID := uuid.New()
	paymentID := uuid.New()
	planID := uuid.New()
	loyaltyID := uuid.New()

	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, paymentID, planID).
		Return([]*entity.BaseLink{
			{ID: uuid.New(), PaymentAccountID: paymentID, LoyaltyAccountID: loyaltyID, CreatedSeq: 1},
		}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, paymentID).Return([]uuid.UUID{holderID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyaltyID).
		Return([]*entity.LoyaltyMembership{
			{UserID: holderID, LoyaltyAccountID: loyaltyID, Status: entity.MembershipUnauthorised},
		}, nil)

	winner, ok, err := resolver.Resolve(ctx, m.factory, paymentID, planID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, winner)
}

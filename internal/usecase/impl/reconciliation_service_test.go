package impl

import (
	"context"
	"net/http"
	"testing"

	domainerrors "wallet/internal/domain/errors"

	"wallet/internal/domain/entity"
	"wallet/internal/domain/repository"
	"wallet/internal/domain/service"
	"wallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassifyPairing(t *testing.T) {
	tests := []struct {
		name       string
		payment    entity.PaymentAccountStatus
		membership entity.MembershipStatus
		wantState  entity.LinkState
		wantReason entity.ReasonSlug
	}{
		{
			name:       "both active",
			payment:    entity.PaymentAccountActive,
			membership: entity.MembershipActive,
			wantState:  entity.LinkStateActive,
			wantReason: entity.ReasonNone,
		},
		{
			name:       "payment pending outranks active membership",
			payment:    entity.PaymentAccountPending,
			membership: entity.MembershipActive,
			wantState:  entity.LinkStatePending,
			wantReason: entity.ReasonPaymentAccountPending,
		},
		{
			name:       "payment pending outranks rejected membership",
			payment:    entity.PaymentAccountPending,
			membership: entity.MembershipInvalidCredentials,
			wantState:  entity.LinkStatePending,
			wantReason: entity.ReasonPaymentAccountPending,
		},
		{
			name:       "payment invalid",
			payment:    entity.PaymentAccountInvalid,
			membership: entity.MembershipActive,
			wantState:  entity.LinkStateInactive,
			wantReason: entity.ReasonPaymentAccountInactive,
		},
		{
			name:       "payment inactive",
			payment:    entity.PaymentAccountInactive,
			membership: entity.MembershipActive,
			wantState:  entity.LinkStateInactive,
			wantReason: entity.ReasonPaymentAccountInactive,
		},
		{
			name:       "membership pending",
			payment:    entity.PaymentAccountActive,
			membership: entity.MembershipPending,
			wantState:  entity.LinkStatePending,
			wantReason: entity.ReasonLoyaltyCardPending,
		},
		{
			name:       "membership auth in progress",
			payment:    entity.PaymentAccountActive,
			membership: entity.MembershipAuthInProgress,
			wantState:  entity.LinkStatePending,
			wantReason: entity.ReasonLoyaltyCardPending,
		},
		{
			name:       "membership invalid credentials",
			payment:    entity.PaymentAccountActive,
			membership: entity.MembershipInvalidCredentials,
			wantState:  entity.LinkStateInactive,
			wantReason: entity.ReasonLoyaltyCardUnauthorised,
		},
		{
			name:       "membership unauthorised",
			payment:    entity.PaymentAccountActive,
			membership: entity.MembershipUnauthorised,
			wantState:  entity.LinkStateInactive,
			wantReason: entity.ReasonLoyaltyCardUnauthorised,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, reason := classifyPairing(tt.payment, tt.membership)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantReason, reason)

			view := &entity.UserLinkView{State: state, ReasonSlug: reason}
			assert.True(t, view.Consistent())
		})
	}
}

func TestReconciliationService_Link_ActivatesWinningPairing(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-4242", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, CreatedSeq: 1}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStatePending, ReasonSlug: entity.ReasonLoyaltyCardPending}, nil)
	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, payment.ID, loyalty.PlanID).Return([]*entity.BaseLink{baseLink}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, payment.ID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyalty.ID).Return([]*entity.LoyaltyMembership{membership}, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateActive, entity.ReasonNone).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(true, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, true).Return(nil)

	m.gateway.EXPECT().
		Activate(mock.Anything, mock.MatchedBy(func(req *service.ActivationRequest) bool {
			return req.BaseLinkID == baseLink.ID && req.PaymentToken == "tok-4242" && req.PlanSlug == "coffee-club"
		})).
		Return(nil)

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)

	result := output.Results[0]
	require.NoError(t, result.Failed)
	assert.Equal(t, entity.LinkStateActive, result.View.State)
	assert.Equal(t, entity.ReasonNone, result.View.ReasonSlug)
	assert.True(t, result.BaseLink.ActiveLink)
}

func TestReconciliationService_Link_PendingPaymentAccount(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-1", Status: entity.PaymentAccountPending}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, CreatedSeq: 1}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStatePending, ReasonSlug: entity.ReasonLoyaltyCardPending}, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStatePending, entity.ReasonPaymentAccountPending).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(false, nil)

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)

	result := output.Results[0]
	require.NoError(t, result.Failed)
	assert.Equal(t, entity.LinkStatePending, result.View.State)
	assert.Equal(t, entity.ReasonPaymentAccountPending, result.View.ReasonSlug)
	assert.False(t, result.BaseLink.ActiveLink)
}

func TestReconciliationService_Link_CollisionLoserForcedInactive(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	rivalUserID := uuid.New()
	planID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-9", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: planID, PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}

	rivalLoyaltyID := uuid.New()
	rivalLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: rivalLoyaltyID, ActiveLink: true, CreatedSeq: 1}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, CreatedSeq: 2}
	rivalMembership := &entity.LoyaltyMembership{UserID: rivalUserID, LoyaltyAccountID: rivalLoyaltyID, Status: entity.MembershipActive}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStatePending, ReasonSlug: entity.ReasonLoyaltyCardPending}, nil)

	// The rival's base link was created first and its membership is held by a
	// wallet that also holds the payment card, so the rival keeps the slot.
	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, payment.ID, planID).Return([]*entity.BaseLink{rivalLink, baseLink}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, payment.ID).Return([]uuid.UUID{userID, rivalUserID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, rivalLoyaltyID).Return([]*entity.LoyaltyMembership{rivalMembership}, nil)

	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateInactive, entity.ReasonUbiquityCollision).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(false, nil)

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)

	result := output.Results[0]
	require.NoError(t, result.Failed)
	assert.Equal(t, entity.LinkStateInactive, result.View.State)
	assert.Equal(t, entity.ReasonUbiquityCollision, result.View.ReasonSlug)
}

func TestReconciliationService_Link_NoDispatchWhenActiveFlagUnchanged(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-7", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, ActiveLink: true, CreatedSeq: 1}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStateActive, ReasonSlug: entity.ReasonNone}, nil)
	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, payment.ID, loyalty.PlanID).Return([]*entity.BaseLink{baseLink}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, payment.ID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyalty.ID).Return([]*entity.LoyaltyMembership{membership}, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateActive, entity.ReasonNone).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(true, nil)

	// ActiveLink was already true, so neither SetActive nor the gateway is
	// touched: the network hears about each transition exactly once.
	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	require.NoError(t, output.Results[0].Failed)
	assert.True(t, output.Results[0].BaseLink.ActiveLink)
	m.gateway.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestReconciliationService_Link_RetryableGatewayFailureQueuesJob(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-5", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, CreatedSeq: 1}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStatePending, ReasonSlug: entity.ReasonLoyaltyCardPending}, nil)
	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, payment.ID, loyalty.PlanID).Return([]*entity.BaseLink{baseLink}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, payment.ID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyalty.ID).Return([]*entity.LoyaltyMembership{membership}, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateActive, entity.ReasonNone).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(true, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, true).Return(nil)

	m.gateway.EXPECT().
		Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).
		Return(&service.GatewayError{StatusCode: 503, Retryable: true, Err: errors.New("upstream overloaded")})

	m.retryPublisher.EXPECT().
		PublishRetryJob(mock.Anything, mock.MatchedBy(func(job *service.RetryJob) bool {
			return job.BaseLinkID == baseLink.ID.String() &&
				job.Action == service.RetryActionActivate &&
				job.PaymentToken == "tok-5" &&
				job.Attempt == 1
		})).
		Return(nil)

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	// The gateway failure does not fail the pairing: local state stays
	// authoritative and the call is replayed later.
	require.NoError(t, output.Results[0].Failed)
	assert.True(t, output.Results[0].BaseLink.ActiveLink)
}

func TestReconciliationService_Link_FatalGatewayFailureKeepsLocalState(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-6", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, CreatedSeq: 1}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStatePending, ReasonSlug: entity.ReasonLoyaltyCardPending}, nil)
	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, payment.ID, loyalty.PlanID).Return([]*entity.BaseLink{baseLink}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, payment.ID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyalty.ID).Return([]*entity.LoyaltyMembership{membership}, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateActive, entity.ReasonNone).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(true, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, true).Return(nil)

	m.gateway.EXPECT().
		Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).
		Return(&service.GatewayError{StatusCode: 422, Retryable: false, Err: errors.New("unknown plan")})

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	require.NoError(t, output.Results[0].Failed)
	m.retryPublisher.AssertNotCalled(t, "PublishRetryJob", mock.Anything, mock.Anything)
}

func TestReconciliationService_Link_ConflictRetriesExhausted(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-8", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrTxConflict)

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{payment.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	require.Error(t, output.Results[0].Failed)
	assert.True(t, errors.Is(output.Results[0].Failed, domainerrors.ErrLinkConflict))
	m.txManager.AssertNumberOfCalls(t, "Execute", 2)
}

func TestReconciliationService_Link_BatchContinuesAfterPairingFailure(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	broken := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-a", Status: entity.PaymentAccountActive}
	healthy := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-b", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: healthy.ID, LoyaltyAccountID: loyalty.ID, CreatedSeq: 1}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, broken.ID).Return(broken, nil)
	m.paymentRepo.EXPECT().FindByID(ctx, healthy.ID).Return(healthy, nil)

	m.passthroughTx(ctx)

	// First pairing dies inside its transaction; the second must still run.
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, broken.ID).Return(nil, repository.ErrPaymentAccountNotFound)

	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, healthy.ID).Return(healthy, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, healthy.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).
		Return(&entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStatePending, ReasonSlug: entity.ReasonLoyaltyCardPending}, nil)
	m.baseLinkRepo.EXPECT().FindPlanLinks(ctx, healthy.ID, loyalty.PlanID).Return([]*entity.BaseLink{baseLink}, nil)
	m.paymentRepo.EXPECT().FindWalletHolders(ctx, healthy.ID).Return([]uuid.UUID{userID}, nil)
	m.loyaltyRepo.EXPECT().FindMembershipsByAccount(ctx, loyalty.ID).Return([]*entity.LoyaltyMembership{membership}, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateActive, entity.ReasonNone).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(true, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, true).Return(nil)
	m.gateway.EXPECT().Activate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).Return(nil)

	output, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            userID,
		LoyaltyAccountID:  loyalty.ID,
		PaymentAccountIDs: []uuid.UUID{broken.ID, healthy.ID},
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 2)
	assert.Error(t, output.Results[0].Failed)
	require.NoError(t, output.Results[1].Failed)
	assert.Equal(t, entity.LinkStateActive, output.Results[1].View.State)
}

func TestReconciliationService_UnlinkPaymentAccount_DeactivatesAndDeletesOrphan(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-z", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, ActiveLink: true, CreatedSeq: 1}
	view := &entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStateActive, ReasonSlug: entity.ReasonNone}

	m.baseLinkRepo.EXPECT().FindByPayment(ctx, payment.ID).Return([]*entity.BaseLink{baseLink}, nil)

	m.passthroughTx(ctx)
	m.baseLinkRepo.EXPECT().FindByID(ctx, baseLink.ID).Return(baseLink, nil)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.linkViewRepo.EXPECT().FindByUserAndBaseLink(ctx, userID, baseLink.ID).Return(view, nil)
	m.linkViewRepo.EXPECT().Delete(ctx, userID, baseLink.ID).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(false, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, false).Return(nil)
	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.linkViewRepo.EXPECT().CountByBaseLink(ctx, baseLink.ID).Return(int64(0), nil)
	m.baseLinkRepo.EXPECT().Delete(ctx, baseLink.ID).Return(nil)

	m.gateway.EXPECT().
		Deactivate(mock.Anything, mock.MatchedBy(func(req *service.ActivationRequest) bool {
			return req.BaseLinkID == baseLink.ID && req.PaymentToken == "tok-z"
		})).
		Return(nil)

	err := engine.UnlinkPaymentAccount(ctx, userID, payment.ID)
	require.NoError(t, err)
}

func TestReconciliationService_UnlinkPaymentAccount_ViewAlreadyGone(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-y", Status: entity.PaymentAccountActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: uuid.New(), CreatedSeq: 1}

	m.baseLinkRepo.EXPECT().FindByPayment(ctx, payment.ID).Return([]*entity.BaseLink{baseLink}, nil)

	m.passthroughTx(ctx)
	m.baseLinkRepo.EXPECT().FindByID(ctx, baseLink.ID).Return(baseLink, nil)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.linkViewRepo.EXPECT().FindByUserAndBaseLink(ctx, userID, baseLink.ID).Return(nil, repository.ErrLinkViewNotFound)

	// Unlinking a pairing the user never had is a no-op, not an error.
	err := engine.UnlinkPaymentAccount(ctx, userID, payment.ID)
	require.NoError(t, err)
	m.linkViewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciliationService_OnPaymentAccountChanged_FansOutToAllViews(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-c", Status: entity.PaymentAccountInactive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipActive}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, ActiveLink: true, CreatedSeq: 1}
	view := &entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStateActive, ReasonSlug: entity.ReasonNone}

	m.paymentRepo.EXPECT().FindByID(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().FindByPayment(ctx, payment.ID).Return([]*entity.BaseLink{baseLink}, nil)
	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.linkViewRepo.EXPECT().FindByBaseLink(ctx, baseLink.ID).Return([]*entity.UserLinkView{view}, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).Return(view, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateInactive, entity.ReasonPaymentAccountInactive).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(false, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, false).Return(nil)
	m.gateway.EXPECT().Deactivate(mock.Anything, mock.AnythingOfType("*service.ActivationRequest")).Return(nil)

	err := engine.OnPaymentAccountChanged(ctx, payment.ID)
	require.NoError(t, err)
}

func TestReconciliationService_GetUserLinkViews(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	loyaltyID := uuid.New()
	views := []*entity.UserLinkView{
		{UserID: userID, BaseLinkID: uuid.New(), State: entity.LinkStateActive, ReasonSlug: entity.ReasonNone},
		{UserID: userID, BaseLinkID: uuid.New(), State: entity.LinkStateInactive, ReasonSlug: entity.ReasonUbiquityCollision},
	}

	m.linkViewRepo.EXPECT().FindByUserAndLoyalty(ctx, userID, loyaltyID).Return(views, nil)

	got, err := engine.GetUserLinkViews(ctx, userID, loyaltyID)
	require.NoError(t, err)
	assert.Equal(t, views, got)
}

func TestReconciliationService_OnLoyaltyMembershipChanged_DegradesUserViews(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	userID := uuid.New()
	payment := &entity.PaymentAccount{ID: uuid.New(), Token: "tok-d", Status: entity.PaymentAccountActive}
	loyalty := &entity.LoyaltyAccount{ID: uuid.New(), PlanID: uuid.New(), PlanSlug: "coffee-club"}
	membership := &entity.LoyaltyMembership{UserID: userID, LoyaltyAccountID: loyalty.ID, Status: entity.MembershipInvalidCredentials}
	baseLink := &entity.BaseLink{ID: uuid.New(), PaymentAccountID: payment.ID, LoyaltyAccountID: loyalty.ID, ActiveLink: true, CreatedSeq: 1}
	view := &entity.UserLinkView{UserID: userID, BaseLinkID: baseLink.ID, State: entity.LinkStateActive, ReasonSlug: entity.ReasonNone}

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyalty.ID).Return(loyalty, nil)
	m.loyaltyRepo.EXPECT().FindMembership(ctx, userID, loyalty.ID).Return(membership, nil)
	m.linkViewRepo.EXPECT().FindByUserAndLoyalty(ctx, userID, loyalty.ID).Return([]*entity.UserLinkView{view}, nil)
	m.baseLinkRepo.EXPECT().FindByID(ctx, baseLink.ID).Return(baseLink, nil)

	m.passthroughTx(ctx)
	m.paymentRepo.EXPECT().FindByIDForUpdate(ctx, payment.ID).Return(payment, nil)
	m.baseLinkRepo.EXPECT().GetOrCreate(ctx, payment.ID, loyalty.ID).Return(baseLink, nil)
	m.linkViewRepo.EXPECT().GetOrCreate(ctx, userID, baseLink.ID).Return(view, nil)
	m.linkViewRepo.EXPECT().SetState(ctx, userID, baseLink.ID, entity.LinkStateInactive, entity.ReasonLoyaltyCardUnauthorised).Return(nil)
	m.linkViewRepo.EXPECT().AnyActive(ctx, baseLink.ID).Return(false, nil)
	m.baseLinkRepo.EXPECT().SetActive(ctx, baseLink.ID, false).Return(nil)
	m.gateway.EXPECT().
		Deactivate(mock.Anything, mock.MatchedBy(func(req *service.ActivationRequest) bool {
			return req.BaseLinkID == baseLink.ID && req.PaymentToken == payment.Token
		})).
		Return(nil)

	err := engine.OnLoyaltyMembershipChanged(ctx, userID, loyalty.ID)
	require.NoError(t, err)
	m.gateway.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}

func TestReconciliationService_Link_UnknownLoyaltyAccountIsNotFound(t *testing.T) {
	m := newEngineMocks(t)
	engine := newTestEngine(m)

	ctx := context.Background()
	loyaltyID := uuid.New()

	m.loyaltyRepo.EXPECT().FindAccountByID(ctx, loyaltyID).Return(nil, repository.ErrLoyaltyAccountNotFound)

	out, err := engine.Link(ctx, &usecase.LinkInput{
		UserID:            uuid.New(),
		LoyaltyAccountID:  loyaltyID,
		PaymentAccountIDs: []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrLoyaltyAccountNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

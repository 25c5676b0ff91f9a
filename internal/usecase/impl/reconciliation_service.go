// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"wallet/config"
	deliverycontext "wallet/internal/delivery/context"
	"wallet/internal/domain/entity"
	domainerrors "wallet/internal/domain/errors"
	"wallet/internal/domain/repository"
	"wallet/internal/domain/service"
	"wallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultConflictRetries = 3

// reconciliationService implements the PLLUsecase interface. All link state
// mutations funnel through reconcilePairing, which serializes on the payment
// account row and recomputes the base link's active flag from committed view
// state on every pass.
type reconciliationService struct {
	txManager       repository.TransactionManager
	paymentRepo     repository.PaymentAccountRepository
	loyaltyRepo     repository.LoyaltyAccountRepository
	baseLinkRepo    repository.BaseLinkRepository
	linkViewRepo    repository.LinkViewRepository
	gateway         service.ActivationGateway
	retryPublisher  service.RetryPublisher
	resolver        *collisionResolver
	conflictRetries int
	logger          *slog.Logger
}

// activationDispatch records a committed ActiveLink transition that still
// needs to be told to the card network. It is built inside the transaction
// and dispatched after commit, so a gateway failure never rolls back local
// state.
type activationDispatch struct {
	baseLinkID   uuid.UUID
	activate     bool
	paymentToken string
	planSlug     string
}

// ReconciliationServiceParams holds dependencies for the reconciliation
// engine, injected by Fx.
type ReconciliationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PaymentRepo    repository.PaymentAccountRepository
	LoyaltyRepo    repository.LoyaltyAccountRepository
	BaseLinkRepo   repository.BaseLinkRepository
	LinkViewRepo   repository.LinkViewRepository
	Gateway        service.ActivationGateway
	RetryPublisher service.RetryPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewReconciliationService is the constructor for the reconciliation engine.
func NewReconciliationService(params ReconciliationServiceParams) usecase.PLLUsecase {
	conflictRetries := defaultConflictRetries
	if params.Config != nil && params.Config.PLL != nil && params.Config.PLL.ConflictRetries > 0 {
		conflictRetries = params.Config.PLL.ConflictRetries
	}

	return &reconciliationService{
		txManager:       params.TxManager,
		paymentRepo:     params.PaymentRepo,
		loyaltyRepo:     params.LoyaltyRepo,
		baseLinkRepo:    params.BaseLinkRepo,
		linkViewRepo:    params.LinkViewRepo,
		gateway:         params.Gateway,
		retryPublisher:  params.RetryPublisher,
		resolver:        newCollisionResolver(),
		conflictRetries: conflictRetries,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *reconciliationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Link processes an explicit or automatic link request.
func (srv *reconciliationService) Link(ctx context.Context, input *usecase.LinkInput) (*usecase.LinkOutput, error) {
	loyalty, err := srv.loyaltyRepo.FindAccountByID(ctx, input.LoyaltyAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrLoyaltyAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLoyaltyAccountNotFound, input.LoyaltyAccountID.String())
		}

		return nil, errors.Wrap(err, "failed to find loyalty account")
	}
	if _, err := srv.loyaltyRepo.FindMembership(ctx, input.UserID, input.LoyaltyAccountID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMembershipNotFound, input.LoyaltyAccountID.String())
		}

		return nil, errors.Wrap(err, "failed to find loyalty membership")
	}
	// Validate the whole batch up front: an unknown ID fails the call
	// before any pairing is touched.
	for _, paymentAccountID := range input.PaymentAccountIDs {
		if _, err := srv.paymentRepo.FindByID(ctx, paymentAccountID); err != nil {
			if errors.Is(err, repository.ErrPaymentAccountNotFound) {
				return nil, errors.Wrap(domainerrors.ErrPaymentAccountNotFound, paymentAccountID.String())
			}

			return nil, errors.Wrapf(err, "failed to find payment account %s", paymentAccountID)
		}
	}

	output := &usecase.LinkOutput{Results: make([]*usecase.PairingResult, 0, len(input.PaymentAccountIDs))}
	for _, paymentAccountID := range input.PaymentAccountIDs {
		result, dispatch, err := srv.reconcilePairing(ctx, input.UserID, paymentAccountID, loyalty)
		if err != nil {
			srv.log(ctx).Error("Failed to reconcile pairing",
				slog.Any("paymentAccountID", paymentAccountID),
				slog.Any("loyaltyAccountID", loyalty.ID),
				slog.Any("error", err),
			)
			output.Results = append(output.Results, &usecase.PairingResult{Failed: err})

			continue
		}
		srv.dispatchActivation(ctx, dispatch)
		output.Results = append(output.Results, result)
	}

	return output, nil
}

// OnLoyaltyMembershipChanged re-runs classification for every payment
// account already linked to the membership in that wallet.
func (srv *reconciliationService) OnLoyaltyMembershipChanged(ctx context.Context, userID, loyaltyAccountID uuid.UUID) error {
	loyalty, err := srv.loyaltyRepo.FindAccountByID(ctx, loyaltyAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrLoyaltyAccountNotFound) {
			return errors.Wrap(domainerrors.ErrLoyaltyAccountNotFound, loyaltyAccountID.String())
		}

		return errors.Wrap(err, "failed to find loyalty account")
	}
	if _, err := srv.loyaltyRepo.FindMembership(ctx, userID, loyaltyAccountID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.Wrap(domainerrors.ErrMembershipNotFound, loyaltyAccountID.String())
		}

		return errors.Wrap(err, "failed to find loyalty membership")
	}

	views, err := srv.linkViewRepo.FindByUserAndLoyalty(ctx, userID, loyaltyAccountID)
	if err != nil {
		return errors.Wrap(err, "failed to find link views for membership")
	}

	for _, view := range views {
		baseLink, err := srv.baseLinkRepo.FindByID(ctx, view.BaseLinkID)
		if err != nil {
			srv.log(ctx).Error("Failed to load base link for view, skipping",
				slog.Any("baseLinkID", view.BaseLinkID),
				slog.Any("error", err),
			)

			continue
		}

		_, dispatch, err := srv.reconcilePairing(ctx, userID, baseLink.PaymentAccountID, loyalty)
		if err != nil {
			srv.log(ctx).Error("Failed to reconcile pairing after membership change, skipping",
				slog.Any("paymentAccountID", baseLink.PaymentAccountID),
				slog.Any("loyaltyAccountID", loyaltyAccountID),
				slog.Any("error", err),
			)

			continue
		}
		srv.dispatchActivation(ctx, dispatch)
	}

	return nil
}

// OnPaymentAccountChanged re-runs classification for every view attached to
// base links containing the payment account, across all wallets.
func (srv *reconciliationService) OnPaymentAccountChanged(ctx context.Context, paymentAccountID uuid.UUID) error {
	if _, err := srv.paymentRepo.FindByID(ctx, paymentAccountID); err != nil {
		if errors.Is(err, repository.ErrPaymentAccountNotFound) {
			return errors.Wrap(domainerrors.ErrPaymentAccountNotFound, paymentAccountID.String())
		}

		return errors.Wrap(err, "failed to find payment account")
	}

	links, err := srv.baseLinkRepo.FindByPayment(ctx, paymentAccountID)
	if err != nil {
		return errors.Wrap(err, "failed to find base links for payment account")
	}

	for _, link := range links {
		loyalty, err := srv.loyaltyRepo.FindAccountByID(ctx, link.LoyaltyAccountID)
		if err != nil {
			srv.log(ctx).Error("Failed to load loyalty account for base link, skipping",
				slog.Any("baseLinkID", link.ID),
				slog.Any("error", err),
			)

			continue
		}

		views, err := srv.linkViewRepo.FindByBaseLink(ctx, link.ID)
		if err != nil {
			srv.log(ctx).Error("Failed to load views for base link, skipping",
				slog.Any("baseLinkID", link.ID),
				slog.Any("error", err),
			)

			continue
		}

		for _, view := range views {
			_, dispatch, err := srv.reconcilePairing(ctx, view.UserID, paymentAccountID, loyalty)
			if err != nil {
				srv.log(ctx).Error("Failed to reconcile pairing after payment status change, skipping",
					slog.Any("userID", view.UserID),
					slog.Any("paymentAccountID", paymentAccountID),
					slog.Any("error", err),
				)

				continue
			}
			srv.dispatchActivation(ctx, dispatch)
		}
	}

	return nil
}

// UnlinkPaymentAccount removes the user's views across all base links of the
// payment account.
func (srv *reconciliationService) UnlinkPaymentAccount(ctx context.Context, userID, paymentAccountID uuid.UUID) error {
	links, err := srv.baseLinkRepo.FindByPayment(ctx, paymentAccountID)
	if err != nil {
		return errors.Wrap(err, "failed to find base links for payment account")
	}

	for _, link := range links {
		dispatch, err := srv.unlinkView(ctx, userID, link.ID)
		if err != nil {
			srv.log(ctx).Error("Failed to unlink view, skipping",
				slog.Any("userID", userID),
				slog.Any("baseLinkID", link.ID),
				slog.Any("error", err),
			)

			continue
		}
		srv.dispatchActivation(ctx, dispatch)
	}

	return nil
}

// UnlinkLoyaltyAccount removes the user's views across all base links of the
// loyalty account.
func (srv *reconciliationService) UnlinkLoyaltyAccount(ctx context.Context, userID, loyaltyAccountID uuid.UUID) error {
	views, err := srv.linkViewRepo.FindByUserAndLoyalty(ctx, userID, loyaltyAccountID)
	if err != nil {
		return errors.Wrap(err, "failed to find link views for loyalty account")
	}

	for _, view := range views {
		dispatch, err := srv.unlinkView(ctx, userID, view.BaseLinkID)
		if err != nil {
			srv.log(ctx).Error("Failed to unlink view, skipping",
				slog.Any("userID", userID),
				slog.Any("baseLinkID", view.BaseLinkID),
				slog.Any("error", err),
			)

			continue
		}
		srv.dispatchActivation(ctx, dispatch)
	}

	return nil
}

// GetUserLinkViews returns the user's views across all base links of one
// loyalty card.
func (srv *reconciliationService) GetUserLinkViews(ctx context.Context, userID, loyaltyAccountID uuid.UUID) ([]*entity.UserLinkView, error) {
	views, err := srv.linkViewRepo.FindByUserAndLoyalty(ctx, userID, loyaltyAccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find link views")
	}

	return views, nil
}

// GetBaseLink returns the wallet-independent link record for a pairing.
func (srv *reconciliationService) GetBaseLink(ctx context.Context, paymentAccountID, loyaltyAccountID uuid.UUID) (*entity.BaseLink, error) {
	baseLink, err := srv.baseLinkRepo.FindByPaymentAndLoyalty(ctx, paymentAccountID, loyaltyAccountID)
	if err != nil {
		if errors.Is(err, repository.ErrBaseLinkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBaseLinkNotFound, paymentAccountID.String())
		}

		return nil, errors.Wrap(err, "failed to find base link")
	}

	return baseLink, nil
}

// reconcilePairing is the single read-modify-write sequence behind every
// entry point. It runs inside one transaction holding a row lock on the
// payment account, which serializes concurrent reconciliations for every
// pairing and plan scope of that card.
func (srv *reconciliationService) reconcilePairing(ctx context.Context, userID, paymentAccountID uuid.UUID, loyalty *entity.LoyaltyAccount) (*usecase.PairingResult, *activationDispatch, error) {
	var (
		result   *usecase.PairingResult
		dispatch *activationDispatch
	)

	err := srv.withConflictRetry(ctx, func() error {
		result, dispatch = nil, nil

		return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			payment, err := repos.PaymentAccountRepo().FindByIDForUpdate(ctx, paymentAccountID)
			if err != nil {
				return errors.Wrap(err, "failed to lock payment account")
			}

			membership, err := repos.LoyaltyAccountRepo().FindMembership(ctx, userID, loyalty.ID)
			if err != nil {
				return errors.Wrap(err, "failed to find loyalty membership")
			}

			baseLink, err := repos.BaseLinkRepo().GetOrCreate(ctx, payment.ID, loyalty.ID)
			if err != nil {
				return errors.Wrap(err, "failed to get or create base link")
			}

			if _, err := repos.LinkViewRepo().GetOrCreate(ctx, userID, baseLink.ID); err != nil {
				return errors.Wrap(err, "failed to get or create link view")
			}

			state, reason := classifyPairing(payment.Status, membership.Status)
			if state == entity.LinkStateActive {
				winner, ok, err := srv.resolver.Resolve(ctx, repos, payment.ID, loyalty.PlanID)
				if err != nil {
					return errors.Wrap(err, "failed to resolve plan collision")
				}
				if !ok || winner != loyalty.ID {
					state, reason = entity.LinkStateInactive, entity.ReasonUbiquityCollision
				}
			}

			if err := repos.LinkViewRepo().SetState(ctx, userID, baseLink.ID, state, reason); err != nil {
				return errors.Wrap(err, "failed to set link view state")
			}

			// ActiveLink is the OR of all views, recomputed rather than
			// set true-once.
			active, err := repos.LinkViewRepo().AnyActive(ctx, baseLink.ID)
			if err != nil {
				return errors.Wrap(err, "failed to aggregate link views")
			}
			if active != baseLink.ActiveLink {
				if err := repos.BaseLinkRepo().SetActive(ctx, baseLink.ID, active); err != nil {
					return errors.Wrap(err, "failed to set base link active flag")
				}
				dispatch = &activationDispatch{
					baseLinkID:   baseLink.ID,
					activate:     active,
					paymentToken: payment.Token,
					planSlug:     loyalty.PlanSlug,
				}
			}

			baseLink.ActiveLink = active
			result = &usecase.PairingResult{
				BaseLink: baseLink,
				View: &entity.UserLinkView{
					UserID:     userID,
					BaseLinkID: baseLink.ID,
					State:      state,
					ReasonSlug: reason,
				},
			}

			return nil
		})
	})
	if err != nil {
		return nil, nil, err
	}

	return result, dispatch, nil
}

// unlinkView deletes one user's view of a base link, recomputes the active
// flag and deletes the base link once nobody references it.
func (srv *reconciliationService) unlinkView(ctx context.Context, userID, baseLinkID uuid.UUID) (*activationDispatch, error) {
	var dispatch *activationDispatch

	err := srv.withConflictRetry(ctx, func() error {
		dispatch = nil

		return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			baseLink, err := repos.BaseLinkRepo().FindByID(ctx, baseLinkID)
			if err != nil {
				return errors.Wrap(err, "failed to find base link")
			}

			payment, err := repos.PaymentAccountRepo().FindByIDForUpdate(ctx, baseLink.PaymentAccountID)
			if err != nil {
				return errors.Wrap(err, "failed to lock payment account")
			}

			if _, err := repos.LinkViewRepo().FindByUserAndBaseLink(ctx, userID, baseLinkID); err != nil {
				if errors.Is(err, repository.ErrLinkViewNotFound) {
					return nil
				}

				return errors.Wrap(err, "failed to find link view")
			}

			if err := repos.LinkViewRepo().Delete(ctx, userID, baseLinkID); err != nil {
				return errors.Wrap(err, "failed to delete link view")
			}

			active, err := repos.LinkViewRepo().AnyActive(ctx, baseLinkID)
			if err != nil {
				return errors.Wrap(err, "failed to aggregate link views")
			}
			if active != baseLink.ActiveLink {
				if err := repos.BaseLinkRepo().SetActive(ctx, baseLinkID, active); err != nil {
					return errors.Wrap(err, "failed to set base link active flag")
				}

				loyalty, err := repos.LoyaltyAccountRepo().FindAccountByID(ctx, baseLink.LoyaltyAccountID)
				if err != nil {
					return errors.Wrap(err, "failed to find loyalty account")
				}
				dispatch = &activationDispatch{
					baseLinkID:   baseLinkID,
					activate:     active,
					paymentToken: payment.Token,
					planSlug:     loyalty.PlanSlug,
				}
			}

			count, err := repos.LinkViewRepo().CountByBaseLink(ctx, baseLinkID)
			if err != nil {
				return errors.Wrap(err, "failed to count link views")
			}
			if count == 0 {
				if err := repos.BaseLinkRepo().Delete(ctx, baseLinkID); err != nil {
					return errors.Wrap(err, "failed to delete orphaned base link")
				}
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return dispatch, nil
}

// withConflictRetry re-runs fn on transaction conflicts a bounded number of
// times before surfacing a transient error.
func (srv *reconciliationService) withConflictRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= srv.conflictRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrTxConflict) && !errors.Is(err, repository.ErrDuplicateBaseLink) {
			return err
		}
		srv.log(ctx).Debug("Transaction conflict, retrying reconciliation",
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)
	}

	return domainerrors.ErrLinkConflict.WrapMessage(err.Error())
}

// dispatchActivation tells the card network about a committed transition.
// The local decision is authoritative: failures are handed to the retry
// queue (retryable) or logged (fatal), never rolled back.
func (srv *reconciliationService) dispatchActivation(ctx context.Context, dispatch *activationDispatch) {
	if dispatch == nil {
		return
	}

	// Local state is already committed; a caller abort must not cut the
	// gateway call short.
	callCtx := context.WithoutCancel(ctx)
	req := &service.ActivationRequest{
		BaseLinkID:   dispatch.baseLinkID,
		PaymentToken: dispatch.paymentToken,
		PlanSlug:     dispatch.planSlug,
	}

	action := service.RetryActionActivate
	var err error
	if dispatch.activate {
		err = srv.gateway.Activate(callCtx, req)
	} else {
		action = service.RetryActionDeactivate
		err = srv.gateway.Deactivate(callCtx, req)
	}
	if err == nil {
		srv.log(ctx).Debug("Activation gateway call succeeded",
			slog.Any("baseLinkID", dispatch.baseLinkID),
			slog.Any("action", action),
		)

		return
	}

	if service.IsRetryableGatewayError(err) {
		job := &service.RetryJob{
			RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
			BaseLinkID:   dispatch.baseLinkID.String(),
			Action:       action,
			PaymentToken: dispatch.paymentToken,
			PlanSlug:     dispatch.planSlug,
			Attempt:      1,
		}
		if pubErr := srv.retryPublisher.PublishRetryJob(callCtx, job); pubErr != nil {
			srv.log(ctx).Error("Failed to hand activation call to retry queue",
				slog.Any("baseLinkID", dispatch.baseLinkID),
				slog.Any("action", action),
				slog.Any("error", pubErr),
			)
		}

		return
	}

	srv.log(ctx).Warn("Activation gateway fatal error, keeping local state",
		slog.Any("baseLinkID", dispatch.baseLinkID),
		slog.Any("action", action),
		slog.String("planSlug", dispatch.planSlug),
		slog.Any("error", err),
	)
}

// classifyPairing maps upstream card statuses to the target view state,
// before collision resolution. Payment status outranks loyalty status.
func classifyPairing(payment entity.PaymentAccountStatus, membership entity.MembershipStatus) (entity.LinkState, entity.ReasonSlug) {
	switch {
	case payment.IsPending():
		return entity.LinkStatePending, entity.ReasonPaymentAccountPending
	case !payment.IsActive():
		return entity.LinkStateInactive, entity.ReasonPaymentAccountInactive
	case membership.IsPending():
		return entity.LinkStatePending, entity.ReasonLoyaltyCardPending
	case !membership.IsActive():
		return entity.LinkStateInactive, entity.ReasonLoyaltyCardUnauthorised
	default:
		return entity.LinkStateActive, entity.ReasonNone
	}
}

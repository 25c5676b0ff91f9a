package impl

import (
	"context"

	"wallet/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// collisionResolver decides which loyalty account of a plan may hold the
// live link on a payment card. A scheme permits one active pairing per plan
// per payment card; everyone else is forced into collision state.
type collisionResolver struct{}

func newCollisionResolver() *collisionResolver {
	return &collisionResolver{}
}

// Resolve returns the loyalty account ID of the sole pairing permitted to be
// active for (payment account, plan), or ok=false when no candidate is
// eligible.
//
// The winner is the eligible candidate whose base link was created earliest.
// Eligibility requires (a) a wallet that holds the payment account also
// holds a membership for the candidate, and (b) that membership is active or
// still pending. Ordering is strictly by base link creation sequence, never
// by loyalty account ID or event arrival order, so re-running resolution
// with the same pairings always picks the same winner.
//
// A winner whose membership later degrades does not hand the slot to the
// next-oldest candidate here; the collided pairing only recovers on its own
// next reconciliation event.
func (r *collisionResolver) Resolve(ctx context.Context, repos repository.RepositoryFactory, paymentAccountID, planID uuid.UUID) (uuid.UUID, bool, error) {
	links, err := repos.BaseLinkRepo().FindPlanLinks(ctx, paymentAccountID, planID)
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "failed to find plan links")
	}

	holders, err := repos.PaymentAccountRepo().FindWalletHolders(ctx, paymentAccountID)
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "failed to find wallet holders")
	}

	holderSet := make(map[uuid.UUID]struct{}, len(holders))
	for _, userID := range holders {
		holderSet[userID] = struct{}{}
	}

	// links arrive ordered by creation sequence ascending, so the first
	// eligible candidate is the winner.
	for _, link := range links {
		memberships, err := repos.LoyaltyAccountRepo().FindMembershipsByAccount(ctx, link.LoyaltyAccountID)
		if err != nil {
			return uuid.Nil, false, errors.Wrap(err, "failed to find memberships for candidate")
		}

		for _, membership := range memberships {
			if _, held := holderSet[membership.UserID]; !held {
				continue
			}
			if membership.Status.IsActive() || membership.Status.IsPending() {
				return link.LoyaltyAccountID, true, nil
			}
		}
	}

	return uuid.Nil, false, nil
}

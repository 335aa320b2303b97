package match

import (
	"context"
	"errors"

	"github.com/Abdukarim17/fluentia/internal/store"
)

// RegisteredValidator treats any user present in the credential store as
// validated. A moderation/compliance system would replace this.
type RegisteredValidator struct {
	Users store.Users
}

func (v RegisteredValidator) Validated(ctx context.Context, userID uint) (bool, error) {
	_, err := v.Users.ByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ThresholdSkillChecker gates matchmaking on the stored skill level.
type ThresholdSkillChecker struct {
	Users     store.Users
	Threshold int
}

func (s ThresholdSkillChecker) Skilled(ctx context.Context, userID uint) (bool, error) {
	u, err := s.Users.ByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.SkillLevel >= s.Threshold, nil
}

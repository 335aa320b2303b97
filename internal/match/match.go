// Package match implements the call matchmaking flow: eligibility checks,
// candidate lookup, mutual acceptance and room allocation. The collaborators
// are one-method interfaces; real implementations are injected at wiring time.
package match

import (
	"context"
	"errors"
)

var (
	// ErrNotValidated: the requester is skilled but has not passed validation.
	ErrNotValidated = errors.New("user is not validated")
	// ErrNotSkilled: the requester has not reached the skill threshold.
	ErrNotSkilled = errors.New("user has not progressed enough")
	// ErrNoCandidate: no matchable user is currently available.
	ErrNoCandidate = errors.New("no candidate available")
	// ErrPending: no mutually accepted pairing could be formed this attempt.
	ErrPending = errors.New("match pending")
)

// Validator reports whether a user has passed identity validation.
type Validator interface {
	Validated(ctx context.Context, userID uint) (bool, error)
}

// SkillChecker reports whether a user meets the proficiency threshold.
type SkillChecker interface {
	Skilled(ctx context.Context, userID uint) (bool, error)
}

// AcceptanceTracker reports whether a user has confirmed the proposed call.
type AcceptanceTracker interface {
	Accepted(userID uint) bool
}

// Matchmaker returns an eligible, currently unmatched user other than the
// requester and anyone in skip. It returns ErrNoCandidate when nobody fits.
type Matchmaker interface {
	NextCandidate(userID uint, skip []uint) (uint, error)
}

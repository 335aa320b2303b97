package match

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Abdukarim17/fluentia/internal/models"
)

const roomURLBase = "https://meet.jitsi.si/"

// RoomNotifier is told about every allocated room so participants can be
// pushed the descriptor and marked busy.
type RoomNotifier interface {
	NotifyRoom(room models.Room)
}

type Service struct {
	Validator  Validator
	Skill      SkillChecker
	Acceptance AcceptanceTracker
	Matchmaker Matchmaker
	Notifier   RoomNotifier

	pairs pairLocks
}

// CreateRoom runs the matching flow for userID. The failure branches are
// checked in a fixed order: not skilled, skilled-but-not-validated, then the
// acceptance/candidate outcomes. A candidate that has not accepted triggers
// exactly one rematch attempt; if that also fails the result is ErrPending
// and the caller is expected to retry.
func (s *Service) CreateRoom(ctx context.Context, userID uint) (*models.Room, error) {
	skilled, err := s.Skill.Skilled(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !skilled {
		return nil, ErrNotSkilled
	}

	validated, err := s.Validator.Validated(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !validated {
		return nil, ErrNotValidated
	}

	candidate, err := s.Matchmaker.NextCandidate(userID, nil)
	if err != nil {
		if errors.Is(err, ErrNoCandidate) {
			return nil, ErrPending
		}
		return nil, err
	}

	room, candidateDeclined := s.tryAllocate(userID, candidate)
	if room != nil {
		return room, nil
	}
	if !candidateDeclined {
		// The requester has not accepted; rematching would not help.
		return nil, ErrPending
	}

	// The candidate declined: one rematch attempt, never re-offering the
	// user that just declined.
	second, err := s.Matchmaker.NextCandidate(userID, []uint{candidate})
	if err != nil {
		if errors.Is(err, ErrNoCandidate) {
			return nil, ErrPending
		}
		return nil, err
	}
	if room, _ := s.tryAllocate(userID, second); room != nil {
		return room, nil
	}
	return nil, ErrPending
}

// tryAllocate checks mutual acceptance and allocates a room under the
// per-pair lock. A nil room means one side has not accepted; the second
// return reports whether that side was the candidate.
func (s *Service) tryAllocate(userID, candidate uint) (*models.Room, bool) {
	unlock := s.pairs.lock(userID, candidate)
	defer unlock()

	if !s.Acceptance.Accepted(candidate) {
		return nil, true
	}
	if !s.Acceptance.Accepted(userID) {
		return nil, false
	}

	roomName := "room-" + uuid.NewString()
	room := models.Room{
		RoomURL: roomURLBase + roomName,
		Config: models.RoomConfig{
			ConfigOverwrite: models.MediaOverrides{
				StartWithAudioMuted: false,
				DisableVideo:        true,
			},
		},
		Users: []uint{userID, candidate},
	}

	if s.Notifier != nil {
		s.Notifier.NotifyRoom(room)
	}
	return &room, false
}

package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Abdukarim17/fluentia/internal/models"
)

type fakeValidator map[uint]bool

func (f fakeValidator) Validated(_ context.Context, id uint) (bool, error) { return f[id], nil }

type fakeSkill map[uint]bool

func (f fakeSkill) Skilled(_ context.Context, id uint) (bool, error) { return f[id], nil }

type fakeAcceptance map[uint]bool

func (f fakeAcceptance) Accepted(id uint) bool { return f[id] }

type fakeMatchmaker struct {
	queue    []uint
	lastSkip []uint
	calls    int
}

func (f *fakeMatchmaker) NextCandidate(userID uint, skip []uint) (uint, error) {
	f.calls++
	f.lastSkip = skip
	for len(f.queue) > 0 {
		c := f.queue[0]
		f.queue = f.queue[1:]
		skipped := false
		for _, s := range skip {
			if s == c {
				skipped = true
			}
		}
		if !skipped {
			return c, nil
		}
	}
	return 0, ErrNoCandidate
}

type fakeNotifier struct {
	rooms []models.Room
}

func (f *fakeNotifier) NotifyRoom(room models.Room) { f.rooms = append(f.rooms, room) }

func TestCreateRoom_BothAccepted(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	svc := &Service{
		Validator:  fakeValidator{1: true},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{1: true, 2: true},
		Matchmaker: &fakeMatchmaker{queue: []uint{2}},
		Notifier:   notifier,
	}

	room, err := svc.CreateRoom(context.Background(), 1)
	if err != nil {
		t.Fatalf("CreateRoom error: %v", err)
	}

	if !strings.HasPrefix(room.RoomURL, "https://meet.jitsi.si/room-") {
		t.Fatalf("unexpected room URL: %q", room.RoomURL)
	}
	if len(room.Users) != 2 || room.Users[0] != 1 || room.Users[1] != 2 {
		t.Fatalf("participants: got %v want [1 2]", room.Users)
	}
	if !room.Config.ConfigOverwrite.DisableVideo {
		t.Fatal("room config must disable video")
	}
	if room.Config.ConfigOverwrite.StartWithAudioMuted {
		t.Fatal("room config must start with audio unmuted")
	}
	if len(notifier.rooms) != 1 {
		t.Fatalf("notifier saw %d rooms, want 1", len(notifier.rooms))
	}
}

func TestCreateRoom_FreshTokenPerRoom(t *testing.T) {
	t.Parallel()

	svc := &Service{
		Validator:  fakeValidator{1: true},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{1: true, 2: true, 3: true},
		Matchmaker: &fakeMatchmaker{queue: []uint{2, 3}},
	}

	first, err := svc.CreateRoom(context.Background(), 1)
	if err != nil {
		t.Fatalf("first CreateRoom error: %v", err)
	}
	second, err := svc.CreateRoom(context.Background(), 1)
	if err != nil {
		t.Fatalf("second CreateRoom error: %v", err)
	}
	if first.RoomURL == second.RoomURL {
		t.Fatalf("room tokens must be unique, both were %q", first.RoomURL)
	}
}

func TestCreateRoom_SkilledButNotValidated(t *testing.T) {
	t.Parallel()

	svc := &Service{
		Validator:  fakeValidator{},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{},
		Matchmaker: &fakeMatchmaker{},
	}

	_, err := svc.CreateRoom(context.Background(), 1)
	if !errors.Is(err, ErrNotValidated) {
		t.Fatalf("expected ErrNotValidated, got %v", err)
	}
}

func TestCreateRoom_NotSkilled(t *testing.T) {
	t.Parallel()

	// Not skilled wins over not validated; the two errors stay distinct.
	svc := &Service{
		Validator:  fakeValidator{},
		Skill:      fakeSkill{},
		Acceptance: fakeAcceptance{},
		Matchmaker: &fakeMatchmaker{},
	}

	_, err := svc.CreateRoom(context.Background(), 1)
	if !errors.Is(err, ErrNotSkilled) {
		t.Fatalf("expected ErrNotSkilled, got %v", err)
	}
	if errors.Is(ErrNotSkilled, ErrNotValidated) {
		t.Fatal("eligibility errors must be distinguishable")
	}
}

func TestCreateRoom_IneligibleNeverAllocates(t *testing.T) {
	t.Parallel()

	mm := &fakeMatchmaker{queue: []uint{2}}
	notifier := &fakeNotifier{}
	svc := &Service{
		Validator:  fakeValidator{},
		Skill:      fakeSkill{},
		Acceptance: fakeAcceptance{1: true, 2: true},
		Matchmaker: mm,
		Notifier:   notifier,
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateRoom(context.Background(), 1); err == nil {
			t.Fatal("expected an eligibility error")
		}
	}
	if mm.calls != 0 {
		t.Fatalf("matchmaker consulted %d times for an ineligible user", mm.calls)
	}
	if len(notifier.rooms) != 0 {
		t.Fatalf("allocated %d rooms for an ineligible user", len(notifier.rooms))
	}
}

func TestCreateRoom_CandidateDeclinedRematchesOnce(t *testing.T) {
	t.Parallel()

	mm := &fakeMatchmaker{queue: []uint{2, 3}}
	svc := &Service{
		Validator:  fakeValidator{1: true},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{1: true, 3: true}, // 2 declined
		Matchmaker: mm,
	}

	room, err := svc.CreateRoom(context.Background(), 1)
	if err != nil {
		t.Fatalf("CreateRoom error: %v", err)
	}
	if room.Users[1] != 3 {
		t.Fatalf("rematch partner: got %d want 3", room.Users[1])
	}
	if mm.calls != 2 {
		t.Fatalf("matchmaker calls: got %d want 2", mm.calls)
	}
	if len(mm.lastSkip) != 1 || mm.lastSkip[0] != 2 {
		t.Fatalf("rematch must skip the decliner: skip=%v", mm.lastSkip)
	}
}

func TestCreateRoom_AllDeclinedPending(t *testing.T) {
	t.Parallel()

	svc := &Service{
		Validator:  fakeValidator{1: true},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{1: true},
		Matchmaker: &fakeMatchmaker{queue: []uint{2, 3}},
	}

	_, err := svc.CreateRoom(context.Background(), 1)
	if !errors.Is(err, ErrPending) {
		t.Fatalf("expected ErrPending, got %v", err)
	}
}

func TestCreateRoom_RequesterNotAcceptedNoRematch(t *testing.T) {
	t.Parallel()

	mm := &fakeMatchmaker{queue: []uint{2, 3}}
	svc := &Service{
		Validator:  fakeValidator{1: true},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{2: true}, // candidate yes, requester no
		Matchmaker: mm,
	}

	_, err := svc.CreateRoom(context.Background(), 1)
	if !errors.Is(err, ErrPending) {
		t.Fatalf("expected ErrPending, got %v", err)
	}
	if mm.calls != 1 {
		t.Fatalf("matchmaker calls: got %d want 1 (no rematch when the requester declined)", mm.calls)
	}
}

func TestCreateRoom_NoCandidatePending(t *testing.T) {
	t.Parallel()

	svc := &Service{
		Validator:  fakeValidator{1: true},
		Skill:      fakeSkill{1: true},
		Acceptance: fakeAcceptance{1: true},
		Matchmaker: &fakeMatchmaker{},
	}

	_, err := svc.CreateRoom(context.Background(), 1)
	if !errors.Is(err, ErrPending) {
		t.Fatalf("expected ErrPending, got %v", err)
	}
}

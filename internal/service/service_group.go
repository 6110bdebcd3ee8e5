package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/validators"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// groupService implements the per-group lock state machine. Failed group
// unlocks are reported as Warning notices and do not feed the login
// lockout.
type groupService struct {
	groups     store.GroupRepository
	accounts   store.AccountRepository
	sessions   SessionService
	challenges ChallengeService
	totp       TotpService
	notices    NoticeService
	validator  validators.Validator

	logger *logger.Logger
}

func NewGroupService(
	groups store.GroupRepository,
	accounts store.AccountRepository,
	sessions SessionService,
	challenges ChallengeService,
	totp TotpService,
	notices NoticeService,
	validator validators.Validator,
	logger *logger.Logger,
) GroupService {
	return &groupService{
		groups:     groups,
		accounts:   accounts,
		sessions:   sessions,
		challenges: challenges,
		totp:       totp,
		notices:    notices,
		validator:  validator,
		logger:     logger,
	}
}

func (s *groupService) List(ctx context.Context, sessionID string) ([]models.GroupView, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing groups failed: %w", err)
	}

	views := make([]models.GroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, s.view(sessionID, g))
	}
	return views, nil
}

func (s *groupService) Create(ctx context.Context, name string) (models.GroupView, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.CreateGroupRequest{Name: name}); err != nil {
		return models.GroupView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	group, err := s.groups.Create(ctx, name, models.NoLock())
	if err != nil {
		return models.GroupView{}, fmt.Errorf("creating group failed: %w", err)
	}
	return s.view("", group), nil
}

// UpdateLock replaces the lock of group id. The caller's session must have
// the group unlocked. Every session loses its unlock of the group, so the
// new gate applies immediately.
func (s *groupService) UpdateLock(ctx context.Context, sessionID string, id int64, lock models.GroupLock) error {
	if err := lock.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if _, err := s.EnsureUnlocked(ctx, sessionID, id); err != nil {
		return err
	}

	if lock.Type == models.LockTotp {
		account, err := loadAccount(ctx, s.accounts)
		if err != nil {
			return err
		}
		if !account.HasTotp() {
			return ErrNoTotpBound
		}
	}

	if err := s.groups.UpdateLock(ctx, id, lock); err != nil {
		return fmt.Errorf("updating group lock failed: %w", err)
	}
	s.sessions.Forget(id)

	logger.FromContext(ctx).Info().Int64("group_id", id).Str("lock_type", string(lock.Type)).Msg("group lock updated")
	return nil
}

func (s *groupService) SetDefault(ctx context.Context, id int64) error {
	if _, err := s.groups.Get(ctx, id); err != nil {
		return fmt.Errorf("loading group failed: %w", err)
	}
	if err := s.accounts.SetDefaultGroup(ctx, id); err != nil {
		return fmt.Errorf("setting default group failed: %w", err)
	}
	return nil
}

// Delete removes group id together with its certificates. The caller's
// session must have the group unlocked.
func (s *groupService) Delete(ctx context.Context, sessionID string, id int64) (int64, error) {
	if _, err := s.EnsureUnlocked(ctx, sessionID, id); err != nil {
		return 0, err
	}

	newDefault, err := s.groups.Delete(ctx, id)
	if errors.Is(err, store.ErrLastGroup) {
		return 0, ErrCantDelete
	}
	if err != nil {
		return 0, fmt.Errorf("deleting group failed: %w", err)
	}

	s.sessions.Forget(id)
	return newDefault, nil
}

func (s *groupService) RequireUnlock(ctx context.Context, id int64) (models.GroupChallenge, error) {
	group, err := s.groups.Get(ctx, id)
	if err != nil {
		return models.GroupChallenge{}, fmt.Errorf("loading group failed: %w", err)
	}
	if group.Lock.Type != models.LockPassword {
		return models.GroupChallenge{}, fmt.Errorf("%w: group is not password locked", ErrInvalidDataProvided)
	}

	challenge, err := s.challenges.Issue(PurposeGroupUnlock(id))
	if err != nil {
		return models.GroupChallenge{}, err
	}
	return models.GroupChallenge{Salt: group.Lock.Password.Salt, Challenge: challenge}, nil
}

// Unlock verifies proof against the group's gate and, on success, records
// the unlock in sessionID. For password groups proof is
// hash(groupHash + challenge); for TOTP groups it is the current code.
func (s *groupService) Unlock(ctx context.Context, sessionID string, id int64, proof string) error {
	group, err := s.groups.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading group failed: %w", err)
	}

	switch group.Lock.Type {
	case models.LockNone:
		return nil

	case models.LockPassword:
		challenge, ok := s.challenges.Pop(PurposeGroupUnlock(id))
		if !ok {
			s.notices.Report(ctx, models.Notice{
				Level:   models.NoticeDanger,
				Content: fmt.Sprintf("unlock of group %q with missing or reused challenge", group.Name),
			})
			return ErrChallenge
		}
		if !crypto.Equal(proof, crypto.ProofFor(group.Lock.Password.Hash, challenge)) {
			s.notices.Report(ctx, models.Notice{
				Level:   models.NoticeWarning,
				Content: fmt.Sprintf("wrong password for group %q", group.Name),
			})
			return ErrGroupPassword
		}

	case models.LockTotp:
		account, err := loadAccount(ctx, s.accounts)
		if err != nil {
			return err
		}
		if !account.HasTotp() {
			return ErrNoTotpBound
		}
		if proof == "" {
			return ErrNeedCode
		}
		if err = s.totp.Verify(ctx, account, proof); err != nil {
			if errors.Is(err, ErrInvalidCode) {
				s.notices.Report(ctx, models.Notice{
					Level:   models.NoticeWarning,
					Content: fmt.Sprintf("wrong totp code for group %q", group.Name),
				})
			}
			return err
		}

	default:
		return fmt.Errorf("%w: unknown lock type %q", ErrInvalidDataProvided, group.Lock.Type)
	}

	if err = s.sessions.Unlock(sessionID, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Int64("group_id", id).Msg("group unlocked")
	return nil
}

func (s *groupService) EnsureUnlocked(ctx context.Context, sessionID string, groupID int64) (models.Group, error) {
	group, err := s.groups.Get(ctx, groupID)
	if err != nil {
		return models.Group{}, fmt.Errorf("loading group failed: %w", err)
	}
	if !s.sessions.IsGroupUnlocked(sessionID, group) {
		return models.Group{}, ErrGroupLocked
	}
	return group, nil
}

func (s *groupService) view(sessionID string, g models.Group) models.GroupView {
	return models.GroupView{
		ID:       g.ID,
		Name:     g.Name,
		LockType: g.Lock.Type,
		Unlocked: s.sessions.IsGroupUnlocked(sessionID, g),
	}
}

package progress

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HasPassword reports whether an admin password has been set.
func (s *Store) HasPassword() bool {
	return s.state.AdminPassword != ""
}

// SetPassword stores the admin password, first use only. The stored value is
// a bcrypt hash; it cannot be decoded back to the password.
func (s *Store) SetPassword(ctx context.Context, password string) error {
	if s.state.AdminPassword != "" {
		return validationf("an admin password is already set")
	}
	if len(password) < 4 {
		return validationf("password must be at least 4 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.state.AdminPassword = string(hash)
	s.log.Debug("admin password set")
	return s.save(ctx)
}

// VerifyPassword checks a candidate against the stored hash. False when no
// password has been set yet.
func (s *Store) VerifyPassword(password string) bool {
	if s.state.AdminPassword == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.state.AdminPassword), []byte(password)) == nil
}

// AdjustTotalStars overwrites the cumulative star total, bypassing the
// task-derived accounting. Negative values are clamped to zero. Only the
// cumulative star ladder is re-evaluated; day-scoped rules are not.
func (s *Store) AdjustTotalStars(ctx context.Context, newValue int) ([]Achievement, error) {
	newValue = clampStars(newValue)
	s.state.TotalStars = newValue
	unlocked := evaluateStarLadder(s.state.Achievements, newValue, s.now())

	s.log.Debug("total stars adjusted", zap.Int("totalStars", newValue))

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	s.notify(unlocked)
	return unlocked, nil
}

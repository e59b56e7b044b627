package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// ChangePassword replaces the password after checking the current one and
// signs out every other session by revoking all refresh tokens.
// Accounts without a password (Google only) get a validation error.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	am, err := s.authMethods.GetByUserAndMethod(ctx, userID, domain.AuthMethodPassword)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("currentPassword", "account has no password")
		}
		return fmt.Errorf("user.ChangePassword: %w", err)
	}
	if am.PasswordHash == nil {
		return domain.NewValidationError("currentPassword", "account has no password")
	}

	if err := s.hasher.Compare(*am.PasswordHash, input.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return domain.NewValidationError("currentPassword", "incorrect password")
		}
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.authMethods.UpdatePasswordHash(txCtx, userID, hash); err != nil {
			return err
		}
		return s.tokens.RevokeAllByUser(txCtx, userID)
	})
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return nil
}

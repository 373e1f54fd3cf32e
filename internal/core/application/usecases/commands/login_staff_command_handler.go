package commands

import (
	"context"
	"errors"
	"fmt"

	"catering/internal/core/application/auth"
	"catering/internal/pkg/errs"
)

// LoginStaffCommandHandler authenticates back-office accounts against the
// staff table. An unknown email and a wrong password both surface as
// errs.ErrUnauthenticated; callers cannot tell which it was.
type LoginStaffCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     PasswordHasher
	tokens     TokenIssuer
}

// NewLoginStaffCommandHandler creates a handler for staff logins.
func NewLoginStaffCommandHandler(
	uowFactory StaffUoWFactory,
	hasher PasswordHasher,
	tokens TokenIssuer,
) LoginStaffCommandHandler {
	return LoginStaffCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle checks the credentials and issues a staff session.
func (h LoginStaffCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.StaffRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
	}
	if err != nil {
		return Session{}, err
	}

	if err = h.hasher.Compare(account.PasswordHash(), cmd.Password()); err != nil {
		return Session{}, err
	}

	principal, err := auth.NewPrincipal(account.ID(), account.Email(), account.Role())
	if err != nil {
		return Session{}, err
	}

	token, err := h.tokens.Issue(principal, auth.StaffTokenTTL)
	if err != nil {
		return Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, err
	}

	return Session{Principal: principal, Name: account.Name(), Token: token}, nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"
)

// LoginCustomerCommandHandler authenticates storefront customers. Customer
// sessions live longer than staff sessions and always carry the customer role.
type LoginCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     PasswordHasher
	tokens     TokenIssuer
}

// NewLoginCustomerCommandHandler creates a handler for customer logins.
func NewLoginCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	hasher PasswordHasher,
	tokens TokenIssuer,
) LoginCustomerCommandHandler {
	return LoginCustomerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle checks the credentials and issues a customer session.
func (h LoginCustomerCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
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

	account, err := uow.CustomerRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Session{}, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
	}
	if err != nil {
		return Session{}, err
	}

	if err = h.hasher.Compare(account.PasswordHash(), cmd.Password()); err != nil {
		return Session{}, err
	}

	principal, err := auth.NewPrincipal(account.ID(), account.Email(), role.Customer)
	if err != nil {
		return Session{}, err
	}

	token, err := h.tokens.Issue(principal, auth.CustomerTokenTTL)
	if err != nil {
		return Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Session{}, err
	}

	return Session{Principal: principal, Name: account.Name(), Token: token}, nil
}

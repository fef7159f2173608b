package mocks

import (
	"context"

	"github.com/phrazzld/taskdeck-api/internal/service"
)

// MockAccountService implements service.AccountService for testing
type MockAccountService struct {
	RegisterFn func(ctx context.Context, username, email, password string) (*service.AuthResult, error)
	LoginFn    func(ctx context.Context, email, password string) (*service.AuthResult, error)

	// Default values used when functions aren't explicitly defined
	Result *service.AuthResult
	Err    error
}

var _ service.AccountService = (*MockAccountService)(nil)

// Register implements the service.AccountService interface
func (m *MockAccountService) Register(
	ctx context.Context,
	username, email, password string,
) (*service.AuthResult, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, email, password)
	}
	return m.Result, m.Err
}

// Login implements the service.AccountService interface
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return m.Result, m.Err
}

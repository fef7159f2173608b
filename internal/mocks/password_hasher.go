package mocks

import (
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// With no functions set, Hash prefixes the password with "hashed:" and
// Compare accepts exactly that form.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(digest, password string) error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(digest, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(digest, password)
	}
	if digest != "hashed:"+password {
		return auth.ErrPasswordMismatch
	}
	return nil
}

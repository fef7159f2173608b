// Package mocks provides function-field mocks of the service interfaces for
// handler and middleware tests.
//
// Each mock calls its Fn field when set and otherwise returns the default
// values stored on the struct:
//
//	tokens := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return nil, auth.ErrExpiredToken
//	    },
//	}
package mocks

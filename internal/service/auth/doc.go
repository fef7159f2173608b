// Package auth provides credential primitives: bcrypt password hashing and
// stateless HS256 bearer tokens. Tokens cannot be revoked before they expire.
package auth

// Package domain contains the core business entities, value objects, and
// validation rules of the application: users and the tasks they own.
// It is independent of any specific storage technology or delivery mechanism;
// defaults and field rules live here as plain functions rather than in a
// schema declaration.
package domain

// Package store defines the persistence contracts for users and tasks.
// The interfaces keep the service layer independent of the database; the
// PostgreSQL implementations live in internal/platform/postgres.
//
// Every task operation takes the owner's ID explicitly so that an
// implementation can scope its statements to that owner.
package store

// Package service contains the application use cases: account registration
// and login, and the task lifecycle. It coordinates the domain types with
// the repository interfaces from internal/store and never depends on a
// concrete database.
//
// Every task operation receives the authenticated caller's ID as an explicit
// parameter. Ownership is checked here, not in the HTTP layer:
//
//   - a task that does not exist yields store.ErrTaskNotFound
//   - a task owned by someone else yields ErrNotOwned
//
// Updates run in a transaction that locks the row first, so concurrent
// updates of the same task are serialized.
package service

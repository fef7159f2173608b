//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can share one database and run in parallel:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.Open(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
//
// # Environment Variables
//
// The database URL is read from TASKDECK_TEST_DB_URL, then DATABASE_URL.
// When neither is set, Open skips the test.
//
// These helpers are compiled only with the integration build tag:
//
//	go test -tags=integration ./...
package testdb

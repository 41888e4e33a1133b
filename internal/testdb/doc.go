// Package testdb provides utilities for database integration tests.
//
// Tests run against the database named by DATABASE_URL (or ETM_TEST_DB_URL)
// and are skipped when neither is set. Each test runs inside a transaction
// that is rolled back when the test finishes, so tests can run in parallel
// without cleaning up after themselves:
//
//	func TestEmployeeStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	        s := postgres.NewPostgresEmployeeStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb

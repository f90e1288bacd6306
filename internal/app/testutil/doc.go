// Package testutil provides shared test helpers for voice-notes.
//
//  1. Database helpers (db_helpers.go): SetupTestSQLite, WithTestDAO and
//     SeedTranslations open a throwaway SQLite-backed DAO that is removed
//     when the test completes.
//  2. Fixtures (fixtures.go): sample translations covering the edge cases
//     exports care about (apostrophes, zero and fractional durations,
//     missing audio) plus a fixed clock.
//  3. Mocks (mock_*.go): testify mocks for the DAO, the translation client
//     and the HTTP service layer.
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    testutil.WithTestDAO(t, func(t *testing.T, dao *sqlite.SQLiteDB) {
//	        ids := testutil.SeedTranslations(t, dao, testutil.TestTranslations)
//	        // ...
//	    })
//	}
package testutil

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoStoredSession is returned when the secret store holds no
	// session to restore, either because none was ever saved or because
	// it was cleared on logout.
	ErrNoStoredSession = errors.New("no stored session")

	// ErrKnownAccountNotFound is returned when a query expected to match
	// a remembered account produces an empty result set.
	ErrKnownAccountNotFound = errors.New("known account was not found")

	// ErrEmailAlreadyRegistered is returned when an attempt to create an
	// account fails because a record with the same email already exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrAccountNotFound is returned when a lookup targets an account
	// record that does not exist.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrChallengeNotFound is returned when a login submission references
	// a challenge that was never issued, already spent, or expired.
	ErrChallengeNotFound = errors.New("challenge was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan known account row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan known account rows")
)

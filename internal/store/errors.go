package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned by the bootstrap insert when an
	// administrator account is already present.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when the singleton account row is
	// missing, i.e. the vault has not been bootstrapped yet.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrGroupNotFound is returned when no group matches the given ID.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrGroupNameTaken is returned when a group with the same name exists.
	ErrGroupNameTaken = errors.New("group name already taken")

	// ErrLastGroup is returned when deleting the only remaining group.
	ErrLastGroup = errors.New("cannot delete the last group")

	// ErrCertificateNotFound is returned when no certificate matches the
	// given ID, or when a rotation targets a certificate that vanished
	// mid-transaction.
	ErrCertificateNotFound = errors.New("certificate was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

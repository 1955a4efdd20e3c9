package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may be
// retried.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] using the SQLSTATE
// code of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that do not come
// from the postgres driver.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// retryablePgCodes are the SQLSTATE codes of transient failures: lost
// connections, transaction rollbacks and lock waits that gave up. A merge
// into the remote document row may hit the last two under contention.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.TransactionRollback:    {}, // 40000
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.LockNotAvailable:       {}, // 55P03
	pgerrcode.CannotConnectNow:       {}, // 57P03
}

// ClassifyPgError maps a SQLSTATE code to an [ErrorClassification]. Data,
// constraint and syntax errors, like every unlisted code, are not retried.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}

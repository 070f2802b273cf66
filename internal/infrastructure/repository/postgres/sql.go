package postgres

import (
	"context"
	"strings"
)

// Poolers in transaction mode can drop the unnamed prepared statement between
// parse and bind; such reads are safe to retry once.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "prepared statement")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unnamed prepared statement does not exist") ||
		(strings.Contains(msg, "prepared statement") && strings.Contains(msg, "(26000)"))
}

func retryOnStalePreparedStatement(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
		return fn(ctx)
	}
	return err
}

package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"quiz-topics/internal/topic"
)

// mapError wraps a driver error into a *topic.StoreError carrying its kind.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *topic.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	return &topic.StoreError{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) topic.Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return topic.KindCanceled
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return topic.KindConnectivity
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return topic.KindConstraint
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return topic.KindConnectivity
		}
		return topic.KindUnknown
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return topic.KindConnectivity
	}

	return topic.KindUnknown
}

func classifySQLState(code string) topic.Kind {
	switch {
	case strings.HasPrefix(code, "23"): // integrity_constraint_violation
		return topic.KindConstraint
	case code == "57014": // query_canceled
		return topic.KindCanceled
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P"): // connection_exception, operator_intervention
		return topic.KindConnectivity
	}
	return topic.KindUnknown
}

package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain"

	"github.com/go-sql-driver/mysql"
)

var errNoDB = errors.New("database not connected")

const (
	mysqlDuplicateEntry = 1062
	mysqlRowReferenced  = 1451
	mysqlMissingParent  = 1452
)

type rowScanner interface {
	Scan(dest ...any) error
}

// conn resolves the handle a repository should use, falling back to the
// shared pool when none was injected.
func conn(d intdb.DBTX) (intdb.DBTX, error) {
	if d != nil {
		return d, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

// storeErr translates driver errors into domain errors.
func storeErr(resource, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, ID: id, Err: err}
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlDuplicateEntry:
			return domain.ConflictError{Resource: resource, Msg: me.Message, Err: err}
		case mysqlRowReferenced:
			return domain.ConflictError{Resource: resource, Msg: "still referenced by other records", Err: err}
		case mysqlMissingParent:
			// referenced trip or user row does not exist
			return domain.ValidationError{Field: resource, Msg: "references a missing record", Err: err}
		}
	}
	return domain.PersistenceError{Op: op + " " + resource, Err: err}
}

// expectOne turns a zero-row UPDATE/DELETE into NotFoundError.
func expectOne(resource, op string, id int64, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr(resource, op, id, err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

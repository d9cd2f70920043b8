// Package sqlerr classifies MySQL driver errors so the application layer can
// tell a uniqueness conflict from a broken reference without parsing message
// strings at every call site.
package sqlerr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers.
const (
	codeDuplicateEntry   = 1062
	codeForeignKeyChild  = 1452
	codeForeignKeyParent = 1451
)

// IsDuplicate reports whether err is a unique-key violation.
func IsDuplicate(err error) bool {
	return hasNumber(err, codeDuplicateEntry)
}

// IsForeignKey reports whether err is a referential-integrity violation on
// either side of the relationship.
func IsForeignKey(err error) bool {
	return hasNumber(err, codeForeignKeyChild) || hasNumber(err, codeForeignKeyParent)
}

func hasNumber(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == number
	}
	return false
}

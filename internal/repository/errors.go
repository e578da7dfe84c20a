package repository

import (
	"database/sql"
	"errors"

	"github.com/tanziljws/tanipintar-website/internal/utils"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// notFound maps the "nothing matched" errors of database/sql and
// utils.ExecWithCheck onto ErrNotFound and passes everything else through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, utils.ErrNoRowsAffected) {
		return ErrNotFound
	}
	return err
}

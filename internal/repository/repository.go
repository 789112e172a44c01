// Package repository holds the Postgres data access layer. Lookups that miss
// return (nil, nil) rather than an error, callers decide what a miss means.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// ErrUniqueViolation é devolvido quando um índice único rejeita a escrita
var ErrUniqueViolation = errors.New("registro duplicado")

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrUniqueViolation
	}
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

package sqlutil

import (
	"database/sql"

	"github.com/courtside/teams/go/internal/models"
)

// Helper functions for converting between Go types and sql.Null* types

// ToSqlInt32 converts a Go int pointer to sql.NullInt32
func ToSqlInt32(val *int) sql.NullInt32 {
	if val == nil {
		return sql.NullInt32{Valid: false}
	}
	return sql.NullInt32{Int32: int32(*val), Valid: true}
}

// ToSqlString converts a Go string pointer to sql.NullString
func ToSqlString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *val, Valid: true}
}

// FromSqlInt32 converts sql.NullInt32 to Go int pointer
func FromSqlInt32(val sql.NullInt32) *int {
	if !val.Valid {
		return nil
	}
	i := int(val.Int32)
	return &i
}

// FromSqlStringPtr converts sql.NullString to Go string pointer
func FromSqlStringPtr(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	return &val.String
}

// OptString converts an Optional to sql.NullString; absent becomes NULL.
func OptString(val models.Optional[string]) sql.NullString {
	s, ok := val.Get()
	return sql.NullString{String: s, Valid: ok}
}

// OptInt32 converts an Optional int to sql.NullInt32; absent becomes NULL.
func OptInt32(val models.Optional[int]) sql.NullInt32 {
	i, ok := val.Get()
	return sql.NullInt32{Int32: int32(i), Valid: ok}
}

// OptBool converts an Optional to sql.NullBool; absent becomes NULL.
func OptBool(val models.Optional[bool]) sql.NullBool {
	b, ok := val.Get()
	return sql.NullBool{Bool: b, Valid: ok}
}

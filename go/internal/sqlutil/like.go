package sqlutil

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally under
// Postgres' default backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/courtside/teams/go/internal/sqlutil"
)

// Hand-written: sqlc cannot express optional predicates with a caller-chosen ORDER BY.

var teamColumns = []string{
	"id", "name", "city", "logo_url", "primary_color", "secondary_color", "active",
	"description", "coach", "founded_year", "stadium", "created_at", "updated_at",
}

// SortColumns lists the columns a filtered page may be ordered by.
var SortColumns = map[string]bool{
	"id":           true,
	"name":         true,
	"city":         true,
	"founded_year": true,
	"created_at":   true,
	"updated_at":   true,
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// FilteredTeamsParams narrows a page of teams. Nil fields impose no constraint;
// Name, City and Term are case-insensitive substrings, Term matching name OR city.
type FilteredTeamsParams struct {
	Name       *string
	City       *string
	Active     *bool
	Term       *string
	SortColumn string
	SortDesc   bool
	Limit      uint64
	Offset     uint64
}

func containsPattern(s string) string {
	return "%" + sqlutil.EscapeLike(strings.ToLower(s)) + "%"
}

func (p FilteredTeamsParams) predicates() squirrel.And {
	where := squirrel.And{}
	if p.Term != nil {
		pattern := containsPattern(*p.Term)
		where = append(where, squirrel.Or{
			squirrel.Expr("lower(name) LIKE ?", pattern),
			squirrel.Expr("lower(city) LIKE ?", pattern),
		})
	}
	if p.Name != nil {
		where = append(where, squirrel.Expr("lower(name) LIKE ?", containsPattern(*p.Name)))
	}
	if p.City != nil {
		where = append(where, squirrel.Expr("lower(city) LIKE ?", containsPattern(*p.City)))
	}
	if p.Active != nil {
		where = append(where, squirrel.Eq{"active": *p.Active})
	}
	return where
}

func (p FilteredTeamsParams) orderBy() ([]string, error) {
	column := p.SortColumn
	if column == "" {
		column = "id"
	}
	if !SortColumns[column] {
		return nil, fmt.Errorf("unsupported sort column %q", column)
	}
	direction := "ASC"
	if p.SortDesc {
		direction = "DESC"
	}
	order := []string{column + " " + direction}
	if column != "id" {
		order = append(order, "id ASC")
	}
	return order, nil
}

// BuildListFilteredTeams renders the page query.
func BuildListFilteredTeams(p FilteredTeamsParams) (string, []interface{}, error) {
	order, err := p.orderBy()
	if err != nil {
		return "", nil, err
	}

	builder := psql.Select(teamColumns...).From("teams")
	if where := p.predicates(); len(where) > 0 {
		builder = builder.Where(where)
	}
	return builder.OrderBy(order...).Limit(p.Limit).Offset(p.Offset).ToSql()
}

// BuildCountFilteredTeams renders the total-count query for the same predicates.
func BuildCountFilteredTeams(p FilteredTeamsParams) (string, []interface{}, error) {
	builder := psql.Select("count(*)").From("teams")
	if where := p.predicates(); len(where) > 0 {
		builder = builder.Where(where)
	}
	return builder.ToSql()
}

func (q *Queries) ListFilteredTeams(ctx context.Context, arg FilteredTeamsParams) ([]Team, error) {
	query, args, err := BuildListFilteredTeams(arg)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Team
	for rows.Next() {
		var i Team
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.City,
			&i.LogoUrl,
			&i.PrimaryColor,
			&i.SecondaryColor,
			&i.Active,
			&i.Description,
			&i.Coach,
			&i.FoundedYear,
			&i.Stadium,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (q *Queries) CountFilteredTeams(ctx context.Context, arg FilteredTeamsParams) (int64, error) {
	query, args, err := BuildCountFilteredTeams(arg)
	if err != nil {
		return 0, err
	}

	var count int64
	err = q.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

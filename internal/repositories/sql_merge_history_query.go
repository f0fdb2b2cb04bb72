package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/transitops/cardledger/internal/models"
)

var (
	queryMergeHistoryCreate = `
		INSERT INTO merge_history(
			"cardIdm", "snapshot", "undone", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, false, NOW(), NOW()
		)
		RETURNING
			"id", "createdAt", "updatedAt";
	`

	queryMergeHistoryGetByID = `SELECT
		  "id",
		  "cardIdm",
		  "snapshot",
		  "undone",
		  "createdAt",
		  "updatedAt"
		FROM "merge_history"
		WHERE id = $1;`

	queryMergeHistoryMarkUndone = `UPDATE merge_history
		SET
		  "undone" = true,
		  "updatedAt" = NOW()
		WHERE
		  id = $1 AND "undone" = false`
)

func buildFilteredMergeHistoryQuery(cols []string, opts models.MergeHistoryFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("merge_history")

	if opts.CardIDm != "" {
		query = query.Where(sq.Eq{`"cardIdm"`: opts.CardIDm})
	}

	return query
}

func buildListMergeHistoryQuery(opts models.MergeHistoryFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"cardIdm"`,
		`"snapshot"`,
		`"undone"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredMergeHistoryQuery(columns, opts)

	query = query.OrderBy(`"createdAt" DESC`, `"id" DESC`)

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	if opts.Offset > 0 {
		query = query.Offset(uint64(opts.Offset))
	}

	return query.ToSql()
}

func buildCountMergeHistoryQuery(opts models.MergeHistoryFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredMergeHistoryQuery(columns, opts)

	return query.ToSql()
}

package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/transitops/cardledger/internal/models"
)

var (
	ledgerColumns = []string{
		`"id"`,
		`"cardIdm"`,
		`"entryDate"`,
		`COALESCE("summary", '') as "summary"`,
		`"income"`,
		`"expense"`,
		`"balance"`,
		`COALESCE("staffIdm", '') as "staffIdm"`,
		`COALESCE("staffName", '') as "staffName"`,
		`COALESCE("note", '') as "note"`,
		`"isLent"`,
		`"lentAt"`,
		`"returnedAt"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	queryLedgerGetByID = `SELECT
		  "id",
		  "cardIdm",
		  "entryDate",
		  COALESCE("summary", '') as "summary",
		  "income",
		  "expense",
		  "balance",
		  COALESCE("staffIdm", '') as "staffIdm",
		  COALESCE("staffName", '') as "staffName",
		  COALESCE("note", '') as "note",
		  "isLent",
		  "lentAt",
		  "returnedAt",
		  "createdAt",
		  "updatedAt"
		FROM "ledger"
		WHERE id = $1;`

	queryLedgerGetLatestBefore = `SELECT
		  "id",
		  "cardIdm",
		  "entryDate",
		  COALESCE("summary", '') as "summary",
		  "income",
		  "expense",
		  "balance",
		  COALESCE("staffIdm", '') as "staffIdm",
		  COALESCE("staffName", '') as "staffName",
		  COALESCE("note", '') as "note",
		  "isLent",
		  "lentAt",
		  "returnedAt",
		  "createdAt",
		  "updatedAt"
		FROM "ledger"
		WHERE "cardIdm" = $1 AND "entryDate" < $2
		ORDER BY "entryDate" DESC, "id" DESC
		LIMIT 1;`

	queryLedgerInsert = `
		INSERT INTO ledger(
			"cardIdm", "entryDate", "summary", "income", "expense", "balance", "staffIdm", "staffName", "note", "isLent", "lentAt", "returnedAt", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		)
		RETURNING
			"id", "createdAt", "updatedAt";
	`

	queryLedgerRestore = `
		INSERT INTO ledger(
			"id", "cardIdm", "entryDate", "summary", "income", "expense", "balance", "staffIdm", "staffName", "note", "isLent", "lentAt", "returnedAt", "createdAt", "updatedAt"
		)
		OVERRIDING SYSTEM VALUE
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW()
		);
	`

	queryLedgerUpdate = `UPDATE ledger
		SET
		  "entryDate" = $2,
		  "summary" = $3,
		  "income" = $4,
		  "expense" = $5,
		  "balance" = $6,
		  "note" = $7,
		  "updatedAt" = NOW()
		WHERE
		  id = $1`

	queryLedgerUpdateBalance = `UPDATE ledger
		SET
		  "balance" = $2,
		  "updatedAt" = NOW()
		WHERE
		  id = $1`

	queryLedgerDeleteByID = "DELETE FROM ledger WHERE id = $1"

	queryLedgerGetByIDs = `SELECT
		  "id",
		  "cardIdm",
		  "entryDate",
		  COALESCE("summary", '') as "summary",
		  "income",
		  "expense",
		  "balance",
		  COALESCE("staffIdm", '') as "staffIdm",
		  COALESCE("staffName", '') as "staffName",
		  COALESCE("note", '') as "note",
		  "isLent",
		  "lentAt",
		  "returnedAt",
		  "createdAt",
		  "updatedAt"
		FROM "ledger"
		WHERE "id" = ANY($1)
		ORDER BY "entryDate" ASC, "id" ASC;`
)

func buildFilteredLedgerQuery(cols []string, opts models.LedgerFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("ledger")

	if opts.CardIDm != "" {
		query = query.Where(sq.Eq{`"cardIdm"`: opts.CardIDm})
	}

	if opts.DateFrom != nil {
		query = query.Where(sq.GtOrEq{`DATE("entryDate")`: opts.DateFrom})
	}

	if opts.DateTo != nil {
		query = query.Where(sq.LtOrEq{`DATE("entryDate")`: opts.DateTo})
	}

	if opts.Month != nil {
		query = query.Where(`DATE_TRUNC('month', "entryDate") = DATE_TRUNC('month', ?::timestamp)`, opts.Month)
	}

	return query
}

func buildListLedgerQuery(opts models.LedgerFilterOptions) (sql string, args []interface{}, err error) {
	query := buildFilteredLedgerQuery(ledgerColumns, opts)

	query = query.OrderBy(`"entryDate" ASC`, `"id" ASC`)

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	if opts.Offset > 0 {
		query = query.Offset(uint64(opts.Offset))
	}

	return query.ToSql()
}

func buildCountLedgerQuery(opts models.LedgerFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredLedgerQuery(columns, opts)

	return query.ToSql()
}

package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	detailColumns = []string{
		`"id"`,
		`"ledgerId"`,
		`"seqNo"`,
		`"tappedAt"`,
		`COALESCE("entryStationCode", 0) as "entryStationCode"`,
		`COALESCE("exitStationCode", 0) as "exitStationCode"`,
		`COALESCE("entryStation", '') as "entryStation"`,
		`COALESCE("exitStation", '') as "exitStation"`,
		`"isBus"`,
		`"isCharge"`,
		`"isPointRedemption"`,
		`"amount"`,
		`"balanceAfter"`,
		`COALESCE("busStop", '') as "busStop"`,
		`COALESCE("groupTag", 0) as "groupTag"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	queryDetailReparent = `UPDATE ledger_detail
		SET
		  "ledgerId" = $2,
		  "updatedAt" = NOW()
		WHERE
		  "ledgerId" = $1`

	queryDetailClearGroupTags = `UPDATE ledger_detail
		SET
		  "groupTag" = 0,
		  "updatedAt" = NOW()
		WHERE
		  "ledgerId" = $1`
)

func buildGetDetailByLedgerIDsQuery(ledgerIDs []uint64) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(detailColumns...).
		From("ledger_detail").
		Where(sq.Eq{`"ledgerId"`: ledgerIDs}).
		OrderBy(`"seqNo" ASC`, `"id" ASC`).
		ToSql()
}

func buildSetDetailOwnerQuery(detailIDs []uint64, ledgerID uint64) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Update("ledger_detail").
		Set(`"ledgerId"`, ledgerID).
		Set(`"updatedAt"`, sq.Expr("NOW()")).
		Where(sq.Eq{`"id"`: detailIDs}).
		ToSql()
}

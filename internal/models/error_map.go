package models

import "errors"

const (
	ErrKeyDataNotFound         = "CL-4004"
	ErrKeyDatabaseError        = "CL-5001"
	ErrKeyInternalError        = "CL-5000"
	ErrKeyTooFewEntries        = "CL-4201"
	ErrKeyCrossCardSelection   = "CL-4202"
	ErrKeyOpenLoanSelected     = "CL-4203"
	ErrKeyMixedMergeEntries    = "CL-4204"
	ErrKeyTooFewGroups         = "CL-4205"
	ErrKeyHistoryAlreadyUndone = "CL-4206"
	ErrKeyHistoryNotFound      = "CL-4207"
	ErrKeyInvalidDateRange     = "CL-4001"
)

var MapErrors = MapErrs{
	ErrKeyDataNotFound: {
		Code:         ErrKeyDataNotFound,
		ErrorMessage: errors.New("data not found"),
	},
	ErrKeyDatabaseError: {
		Code:         ErrKeyDatabaseError,
		ErrorMessage: errors.New("database error"),
	},
	ErrKeyInternalError: {
		Code:         ErrKeyInternalError,
		ErrorMessage: errors.New("internal server error"),
	},
	ErrKeyTooFewEntries: {
		Code:         ErrKeyTooFewEntries,
		ErrorMessage: errors.New("select at least two ledger entries to merge"),
	},
	ErrKeyCrossCardSelection: {
		Code:         ErrKeyCrossCardSelection,
		ErrorMessage: errors.New("entries from different cards cannot be merged"),
	},
	ErrKeyOpenLoanSelected: {
		Code:         ErrKeyOpenLoanSelected,
		ErrorMessage: errors.New("an entry for a card still on loan cannot be merged"),
	},
	ErrKeyMixedMergeEntries: {
		Code:         ErrKeyMixedMergeEntries,
		ErrorMessage: errors.New("income and expense entries cannot be merged together"),
	},
	ErrKeyTooFewGroups: {
		Code:         ErrKeyTooFewGroups,
		ErrorMessage: errors.New("assign at least two distinct groups before splitting"),
	},
	ErrKeyHistoryAlreadyUndone: {
		Code:         ErrKeyHistoryAlreadyUndone,
		ErrorMessage: errors.New("this merge has already been undone"),
	},
	ErrKeyHistoryNotFound: {
		Code:         ErrKeyHistoryNotFound,
		ErrorMessage: errors.New("merge history not found"),
	},
	ErrKeyInvalidDateRange: {
		Code:         ErrKeyInvalidDateRange,
		ErrorMessage: errors.New("invalid date range"),
	},
}

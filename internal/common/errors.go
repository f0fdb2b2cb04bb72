package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrInternalServerError   = errors.New("internal server error")
	ErrInvalidFormatDate     = errors.New("invalid format date")
	ErrIDEmpty               = errors.New("ID is empty")
	ErrUnableToCreate        = errors.New("unable to create data")
	ErrUnableToUpdate        = errors.New("unable to update data")
	ErrTooFewEntries         = errors.New("at least two ledger entries must be selected")
	ErrCrossCardSelection    = errors.New("selected entries belong to more than one card")
	ErrOpenLoanEntrySelected = errors.New("selection includes an open loan entry")
	ErrMixedMergeEntries     = errors.New("cannot merge income and expense entries together")
	ErrTooFewGroups          = errors.New("at least two distinct group tags are required")
	ErrHistoryAlreadyUndone  = errors.New("merge history already undone")
	ErrNoRows                = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

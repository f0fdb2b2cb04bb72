package models

import (
	"time"

	"github.com/transitops/cardledger/internal/common/dateutil"
)

type BalanceCheckRequest struct {
	CardIDm          string `param:"cardIDm" validate:"required,cardIDm"`
	DateFrom         string `json:"dateFrom" query:"dateFrom" validate:"omitempty,date"`
	DateTo           string `json:"dateTo" query:"dateTo" validate:"omitempty,date"`
	PrecedingBalance *int64 `json:"precedingBalance,omitempty" query:"-"`
	Operator         string `json:"operator" query:"-"`
}

func (r BalanceCheckRequest) Window() (from, to *time.Time, err error) {
	if r.DateFrom != "" {
		f, perr := dateutil.ParseDate(r.DateFrom)
		if perr != nil {
			return nil, nil, perr
		}
		from = &f
	}
	if r.DateTo != "" {
		t, perr := dateutil.ParseDate(r.DateTo)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

type BalanceCheckOut struct {
	Corrections []BalanceCorrection `json:"corrections"`
}

type UndoRecalculateRequest struct {
	Corrections []BalanceCorrection `json:"corrections" validate:"required,min=1"`
	Operator    string              `json:"operator"`
}

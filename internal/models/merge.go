package models

import (
	"time"
)

// MergeTargetSnapshot is the surviving entry's field values before the merge
// rewrote them.
type MergeTargetSnapshot struct {
	ID      uint64 `json:"id"`
	Summary string `json:"summary"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Balance int64  `json:"balance"`
	Note    string `json:"note"`
}

// MergeUndoSnapshot is everything needed to reverse a merge: the target's
// pre-merge fields, full copies of the deleted source entries, and for every
// detail record its pre-merge owning entry. DetailOwners keeps native integer
// keys; encoding/json stringifies map keys only at the serialization
// boundary.
type MergeUndoSnapshot struct {
	Target         MergeTargetSnapshot `json:"target"`
	RemovedEntries []LedgerEntry       `json:"removedEntries"`
	DetailOwners   map[uint64]uint64   `json:"detailOwners"`
}

// MergeHistory is the persisted undo snapshot plus its lifecycle state. A
// history that is already undone cannot be undone again.
type MergeHistory struct {
	ID        uint64            `json:"id"`
	CardIDm   string            `json:"cardIDm"`
	Snapshot  MergeUndoSnapshot `json:"snapshot"`
	Undone    bool              `json:"undone"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type MergeHistoryFilterOptions struct {
	CardIDm string
	Limit   int
	Offset  int
}

type MergeEntriesRequest struct {
	EntryIDs []uint64 `json:"entryIds" validate:"required,min=2"`
	Operator string   `json:"operator"`
}

type MergeOut struct {
	TargetID  uint64 `json:"targetId"`
	HistoryID uint64 `json:"historyId"`
	Summary   string `json:"summary"`
	Income    int64  `json:"income"`
	Expense   int64  `json:"expense"`
	Balance   int64  `json:"balance"`
}

type UndoMergeRequest struct {
	HistoryID uint64 `json:"historyId" param:"id" validate:"required"`
	Operator  string `json:"operator"`
}

type SplitEntryRequest struct {
	EntryID  uint64 `json:"entryId" param:"id" validate:"required"`
	Operator string `json:"operator"`
}

type SplitOut struct {
	// EntryIDs lists the resulting entries, original first.
	EntryIDs []uint64 `json:"entryIds"`
}

type GetMergeHistoryListRequest struct {
	CardIDm string `query:"cardIDm" validate:"omitempty,cardIDm"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}

func (r GetMergeHistoryListRequest) ToFilterOpts() MergeHistoryFilterOptions {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return MergeHistoryFilterOptions{
		CardIDm: r.CardIDm,
		Limit:   limit,
		Offset:  r.Offset,
	}
}

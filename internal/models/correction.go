package models

// BalanceCorrection records one violation of the running-balance invariant:
// what the entry's balance was and what the chain says it should be. A list
// of corrections doubles as the undo token for Recalculate.
type BalanceCorrection struct {
	LedgerID        uint64 `json:"ledgerId"`
	ActualBalance   int64  `json:"actualBalance"`
	ExpectedBalance int64  `json:"expectedBalance"`
}

package models

import (
	"encoding/json"
	"time"
)

// OperatorSystem is recorded when no human operator is attached to the
// request (the desktop shell performs most edits without sign-in).
const OperatorSystem = "gui"

const (
	AuditActionCreated      = "created"
	AuditActionUpdated      = "updated"
	AuditActionDeleted      = "deleted"
	AuditActionMerged       = "merged"
	AuditActionMergeUndone  = "merge_undone"
	AuditActionSplit        = "split"
	AuditActionRecalculated = "recalculated"
)

type AuditEvent struct {
	ID         string          `json:"id"`
	Operator   string          `json:"operator"`
	Action     string          `json:"action"`
	TargetType string          `json:"targetType"`
	TargetID   uint64          `json:"targetId"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NormalizeOperator substitutes the system sentinel for a blank operator.
func NormalizeOperator(operator string) string {
	if operator == "" {
		return OperatorSystem
	}
	return operator
}

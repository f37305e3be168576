package domain

import "time"

// Status of a roadmap item.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// Source tells whether an item came from an analysis run or was added by hand.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceManual    Source = "manual"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// RoadmapItem is one remediation task. Generated items are keyed by their
// control reference so repeated analysis runs update in place instead of
// duplicating; manual items are never touched by reconciliation.
type RoadmapItem struct {
	ID             string     `db:"id" json:"id"`
	OrganizationID string     `db:"organization_id" json:"organization_id"`
	ControlRef     *string    `db:"control_ref" json:"control_ref,omitempty"`
	Title          string     `db:"title" json:"title"`
	Description    string     `db:"description" json:"description"`
	Priority       string     `db:"priority" json:"priority"`
	Effort         string     `db:"effort" json:"effort"`
	Timeline       string     `db:"timeline" json:"timeline"`
	Category       string     `db:"category" json:"category"`
	Status         Status     `db:"status" json:"status"`
	Source         Source     `db:"source" json:"source"`
	DueDate        *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Key identifies a generated item across analysis runs. Items carrying a
// control reference reconcile on it; ad-hoc recommendations fall back to the
// title.
func (i *RoadmapItem) Key() string {
	if i.ControlRef != nil && *i.ControlRef != "" {
		return *i.ControlRef
	}
	return i.Title
}

package models

// Goal is the full-field record. ParentID is nil for roots of the goal
// forest; Deadline is nil when no deadline is set.
type Goal struct {
	GoalID      int64   `json:"goal_id"`
	ParentID    *int64  `json:"parent_id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Topic       string  `json:"topic"`
	Description string  `json:"description"`
	Deadline    *int64  `json:"deadline"`
	Status      float64 `json:"status"`
}

// GoalSummary is the projection returned by filtered goal listings.
type GoalSummary struct {
	GoalID      int64  `json:"goal_id"`
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// GoalFilter narrows a goal listing. Nil fields leave the corresponding
// predicate out. Before and After are UNIX timestamps and must be
// non-negative when given.
type GoalFilter struct {
	UserID *int64 `json:"user_id"`
	Limit  *int64 `json:"limit"`
	Before *int64 `json:"before" validate:"omitempty,gte=0"`
	After  *int64 `json:"after" validate:"omitempty,gte=0"`
}

// GoalPatch is a partial update. Nil fields keep their stored value. A
// patch with every field nil is a no-op and is reported as not found.
type GoalPatch struct {
	Title       *string  `json:"title"`
	Topic       *string  `json:"topic"`
	Description *string  `json:"description"`
	Deadline    *int64   `json:"deadline"`
	Status      *float64 `json:"status"`
}

package models

// Resource is the full-field record. UserID is nil after the posting user
// has been deleted (the foreign key is SET NULL); Description and
// RequiredTime are optional at creation.
type Resource struct {
	ResourceID   int64   `json:"resource_id"`
	GoalID       int64   `json:"goal_id"`
	UserID       *int64  `json:"user_id"`
	Title        string  `json:"title"`
	Link         string  `json:"link"`
	Topic        string  `json:"topic"`
	Description  *string `json:"description"`
	RequiredTime *int64  `json:"required_time"`
	Rating       float64 `json:"rating"`
}

// ResourceSummary is the projection returned by filtered resource listings.
type ResourceSummary struct {
	ResourceID  int64   `json:"resource_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// ResourceFilter narrows a resource listing. Nil fields leave the
// corresponding predicate out. A negative MaxLength is legal and simply
// matches nothing.
type ResourceFilter struct {
	GoalID    *int64 `json:"goal_id"`
	UserID    *int64 `json:"user_id"`
	Limit     *int64 `json:"limit"`
	MaxLength *int64 `json:"max_length"`
}

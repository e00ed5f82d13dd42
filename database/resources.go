package database

import (
	"database/sql"

	"goalz/models"
)

// ResourceRepository owns all access to the resources table. Resources are
// learning material attached to a goal; only their rating may change after
// creation.
type ResourceRepository struct {
	db    *DB
	goals GoalChecker
	users UserChecker
}

func NewResourceRepository(db *DB, goals GoalChecker, users UserChecker) *ResourceRepository {
	return &ResourceRepository{db: db, goals: goals, users: users}
}

// GetResource retrieves the full-field resource record.
func (r *ResourceRepository) GetResource(resourceID int64) (*models.Resource, error) {
	var resource models.Resource
	var userID, requiredTime sql.NullInt64
	var description sql.NullString

	err := r.db.QueryRow(`
		SELECT resource_id, goal_id, user_id, title, link, topic, description, required_time, rating
		FROM resources
		WHERE resource_id = ?
	`, resourceID).Scan(
		&resource.ResourceID, &resource.GoalID, &userID, &resource.Title,
		&resource.Link, &resource.Topic, &description, &requiredTime, &resource.Rating,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		resource.UserID = &userID.Int64
	}
	if description.Valid {
		resource.Description = &description.String
	}
	if requiredTime.Valid {
		resource.RequiredTime = &requiredTime.Int64
	}

	return &resource, nil
}

// GetResources lists resource summaries matching the filter. Predicates
// are appended in a fixed order (goal, poster, required_time < MaxLength)
// and joined with AND; the row cap renders last. A negative MaxLength is
// legal and matches nothing.
func (r *ResourceRepository) GetResources(filter models.ResourceFilter) ([]models.ResourceSummary, error) {
	q := newSelect(`SELECT resource_id, title, description FROM resources`)
	if filter.GoalID != nil {
		q.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.UserID != nil {
		q.Where("user_id = ?", *filter.UserID)
	}
	if filter.MaxLength != nil {
		q.Where("required_time < ?", *filter.MaxLength)
	}
	if filter.Limit != nil {
		q.Limit(*filter.Limit)
	}

	query, args := q.Build()
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := make([]models.ResourceSummary, 0)
	for rows.Next() {
		var resource models.ResourceSummary
		var description sql.NullString
		if err := rows.Scan(&resource.ResourceID, &resource.Title, &description); err != nil {
			return nil, err
		}
		if description.Valid {
			resource.Description = &description.String
		}
		resources = append(resources, resource)
	}

	return resources, rows.Err()
}

// DeleteResource reports whether a row was actually removed.
func (r *ResourceRepository) DeleteResource(resourceID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM resources WHERE resource_id = ?`, resourceID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ModifyResource overwrites only the rating field. ErrNotFound when the
// resource does not exist.
func (r *ResourceRepository) ModifyResource(resourceID int64, rating float64) (int64, error) {
	res, err := r.db.Exec(`UPDATE resources SET rating = ? WHERE resource_id = ?`, rating, resourceID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected < 1 {
		return 0, ErrNotFound
	}
	return resourceID, nil
}

// CreateResource validates that the referenced goal and user exist, then
// inserts with rating initialized to zero and returns the generated id. A
// missing reference aborts the insert with ErrNotFound.
func (r *ResourceRepository) CreateResource(goalID, userID int64, title, link, topic string, description *string, requiredTime *int64) (int64, error) {
	ok, err := r.goals.Exists(goalID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	ok, err = r.users.Exists(userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	res, err := r.db.Exec(`
		INSERT INTO resources (goal_id, user_id, title, link, topic, description, required_time, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)
	`, goalID, userID, title, link, topic, description, requiredTime)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// Exists reports whether a resource row with the given id is present.
func (r *ResourceRepository) Exists(resourceID int64) (bool, error) {
	var id int64
	err := r.db.QueryRow(`SELECT resource_id FROM resources WHERE resource_id = ?`, resourceID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

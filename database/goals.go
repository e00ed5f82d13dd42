package database

import (
	"database/sql"
	"fmt"

	"goalz/models"
	"goalz/validator"
)

// UserChecker reports whether a user row exists. Satisfied by
// *UserRepository; goal and resource writes use it for their referential
// checks instead of duplicating the users SQL.
type UserChecker interface {
	Exists(userID int64) (bool, error)
}

// GoalChecker reports whether a goal row exists. Satisfied by
// *GoalRepository.
type GoalChecker interface {
	Exists(goalID int64) (bool, error)
}

// GoalRepository owns all access to the goals table. Goals self-reference
// through parent_id, forming a forest of sub-goal trees.
type GoalRepository struct {
	db       *DB
	users    UserChecker
	validate *validator.Validator
}

func NewGoalRepository(db *DB, users UserChecker, v *validator.Validator) *GoalRepository {
	return &GoalRepository{db: db, users: users, validate: v}
}

// GetGoal retrieves the full-field goal record.
func (r *GoalRepository) GetGoal(goalID int64) (*models.Goal, error) {
	var goal models.Goal
	var parentID, deadline sql.NullInt64

	err := r.db.QueryRow(`
		SELECT goal_id, parent_id, user_id, title, topic, description, deadline, status
		FROM goals
		WHERE goal_id = ?
	`, goalID).Scan(
		&goal.GoalID, &parentID, &goal.UserID, &goal.Title,
		&goal.Topic, &goal.Description, &deadline, &goal.Status,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		goal.ParentID = &parentID.Int64
	}
	if deadline.Valid {
		goal.Deadline = &deadline.Int64
	}

	return &goal, nil
}

// GetGoals lists goal summaries matching the filter, newest deadline
// first. Predicates are appended in a fixed order (owner, before, after)
// and joined with AND; the row cap renders last. Before and After must be
// non-negative timestamps; violations fail with ErrInvalidArgument before
// any query runs.
func (r *GoalRepository) GetGoals(filter models.GoalFilter) ([]models.GoalSummary, error) {
	if err := r.validate.Validate(filter); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	q := newSelect(`SELECT goal_id, title, topic, description FROM goals`)
	if filter.UserID != nil {
		q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Before != nil {
		q.Where("deadline < ?", *filter.Before)
	}
	if filter.After != nil {
		q.Where("deadline > ?", *filter.After)
	}
	q.OrderBy("deadline DESC")
	if filter.Limit != nil {
		q.Limit(*filter.Limit)
	}

	query, args := q.Build()
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.GoalSummary, 0)
	for rows.Next() {
		var goal models.GoalSummary
		if err := rows.Scan(&goal.GoalID, &goal.Title, &goal.Topic, &goal.Description); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// DeleteGoal removes a goal; child goals and attached resources cascade.
// Reports whether a row was actually removed.
func (r *GoalRepository) DeleteGoal(goalID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM goals WHERE goal_id = ?`, goalID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ModifyGoal updates only the supplied fields. A patch with no fields at
// all is a no-op reported as ErrNotFound, as is an unknown goal id.
func (r *GoalRepository) ModifyGoal(goalID int64, patch models.GoalPatch) (int64, error) {
	update := newUpdate("goals")
	if patch.Title != nil {
		update.Set("title", *patch.Title)
	}
	if patch.Topic != nil {
		update.Set("topic", *patch.Topic)
	}
	if patch.Description != nil {
		update.Set("description", *patch.Description)
	}
	if patch.Deadline != nil {
		update.Set("deadline", *patch.Deadline)
	}
	if patch.Status != nil {
		update.Set("status", *patch.Status)
	}

	if update.Empty() {
		return 0, ErrNotFound
	}

	query, args := update.Build("goal_id = ?", goalID)
	res, err := r.db.Exec(query, args...)
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

	return goalID, nil
}

// CreateGoal validates that the parent goal (when given) and the owning
// user exist, then inserts and returns the generated id. A missing
// reference aborts the insert with ErrNotFound.
func (r *GoalRepository) CreateGoal(userID int64, parentID *int64, title, topic, description string, deadline *int64, status float64) (int64, error) {
	if parentID != nil {
		ok, err := r.Exists(*parentID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrNotFound
		}
	}

	ok, err := r.users.Exists(userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	res, err := r.db.Exec(`
		INSERT INTO goals (parent_id, title, topic, description, deadline, status, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, parentID, title, topic, description, deadline, status, userID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// Exists reports whether a goal row with the given id is present.
func (r *GoalRepository) Exists(goalID int64) (bool, error) {
	var id int64
	err := r.db.QueryRow(`SELECT goal_id FROM goals WHERE goal_id = ?`, goalID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package database

import (
	"goalz/models"
	"goalz/validator"
)

// Connection is the per-session facade over the three repositories. One
// Connection wraps one database handle; open exactly one per unit of work
// and close it exactly once to release engine locks. Operations on a
// closed connection fail with ErrConnectionClosed.
type Connection struct {
	db        *DB
	users     *UserRepository
	goals     *GoalRepository
	resources *ResourceRepository
	closed    bool
}

func NewConnection(db *DB) *Connection {
	v := validator.New()
	users := NewUserRepository(db, v)
	goals := NewGoalRepository(db, users, v)
	resources := NewResourceRepository(db, goals, users)

	return &Connection{
		db:        db,
		users:     users,
		goals:     goals,
		resources: resources,
	}
}

// Users exposes the users repository directly.
func (c *Connection) Users() *UserRepository { return c.users }

// Goals exposes the goals repository directly.
func (c *Connection) Goals() *GoalRepository { return c.goals }

// Resources exposes the resources repository directly.
func (c *Connection) Resources() *ResourceRepository { return c.resources }

// IsClosed reports whether Close has already been called.
func (c *Connection) IsClosed() bool { return c.closed }

// Close releases the underlying database handle. Safe to call more than
// once; only the first call closes anything.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.db.Close()
}

// EnableForeignKeys turns foreign key enforcement on for the session.
func (c *Connection) EnableForeignKeys() error {
	_, err := c.db.Exec("PRAGMA foreign_keys = ON")
	return err
}

// DisableForeignKeys turns foreign key enforcement off for the session.
func (c *Connection) DisableForeignKeys() error {
	_, err := c.db.Exec("PRAGMA foreign_keys = OFF")
	return err
}

// ForeignKeysEnabled reports the current enforcement state.
func (c *Connection) ForeignKeysEnabled() (bool, error) {
	if c.closed {
		return false, ErrConnectionClosed
	}
	var enabled int
	if err := c.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return false, err
	}
	return enabled == 1, nil
}

// precall guards every delegated operation: the session must be open and
// foreign key enforcement is re-asserted before the repository runs.
func (c *Connection) precall() error {
	if c.closed {
		return ErrConnectionClosed
	}
	return c.EnableForeignKeys()
}

// ==================== USERS ====================

func (c *Connection) GetUser(userID int64) (*models.User, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.users.GetUser(userID)
}

func (c *Connection) GetUserByNickname(nickname string) (*models.User, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.users.GetUserByNickname(nickname)
}

func (c *Connection) GetUserPublic(userID int64) (*models.PublicProfile, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.users.GetUserPublic(userID)
}

func (c *Connection) GetUserPublicByNickname(nickname string) (*models.PublicProfile, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.users.GetUserPublicByNickname(nickname)
}

func (c *Connection) GetUsers() ([]models.PublicProfile, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.users.GetUsers()
}

func (c *Connection) DeleteUser(userID int64) (bool, error) {
	if err := c.precall(); err != nil {
		return false, err
	}
	return c.users.DeleteUser(userID)
}

func (c *Connection) ModifyUser(userID int64, patch models.UserPatch) (int64, error) {
	if err := c.precall(); err != nil {
		return 0, err
	}
	return c.users.ModifyUser(userID, patch)
}

func (c *Connection) CreateUser(nickname string, profile models.NewProfile) (string, error) {
	if err := c.precall(); err != nil {
		return "", err
	}
	return c.users.CreateUser(nickname, profile)
}

func (c *Connection) GetUserID(nickname string) (int64, error) {
	if err := c.precall(); err != nil {
		return 0, err
	}
	return c.users.GetUserID(nickname)
}

func (c *Connection) ContainsUser(nickname string) (bool, error) {
	if err := c.precall(); err != nil {
		return false, err
	}
	return c.users.ContainsUser(nickname)
}

// ==================== GOALS ====================

func (c *Connection) GetGoal(goalID int64) (*models.Goal, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.goals.GetGoal(goalID)
}

func (c *Connection) GetGoals(filter models.GoalFilter) ([]models.GoalSummary, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.goals.GetGoals(filter)
}

func (c *Connection) DeleteGoal(goalID int64) (bool, error) {
	if err := c.precall(); err != nil {
		return false, err
	}
	return c.goals.DeleteGoal(goalID)
}

func (c *Connection) ModifyGoal(goalID int64, patch models.GoalPatch) (int64, error) {
	if err := c.precall(); err != nil {
		return 0, err
	}
	return c.goals.ModifyGoal(goalID, patch)
}

func (c *Connection) CreateGoal(userID int64, parentID *int64, title, topic, description string, deadline *int64, status float64) (int64, error) {
	if err := c.precall(); err != nil {
		return 0, err
	}
	return c.goals.CreateGoal(userID, parentID, title, topic, description, deadline, status)
}

func (c *Connection) ContainsGoal(goalID int64) (bool, error) {
	if err := c.precall(); err != nil {
		return false, err
	}
	return c.goals.Exists(goalID)
}

// ==================== RESOURCES ====================

func (c *Connection) GetResource(resourceID int64) (*models.Resource, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.resources.GetResource(resourceID)
}

func (c *Connection) GetResources(filter models.ResourceFilter) ([]models.ResourceSummary, error) {
	if err := c.precall(); err != nil {
		return nil, err
	}
	return c.resources.GetResources(filter)
}

func (c *Connection) DeleteResource(resourceID int64) (bool, error) {
	if err := c.precall(); err != nil {
		return false, err
	}
	return c.resources.DeleteResource(resourceID)
}

func (c *Connection) ModifyResource(resourceID int64, rating float64) (int64, error) {
	if err := c.precall(); err != nil {
		return 0, err
	}
	return c.resources.ModifyResource(resourceID, rating)
}

func (c *Connection) CreateResource(goalID, userID int64, title, link, topic string, description *string, requiredTime *int64) (int64, error) {
	if err := c.precall(); err != nil {
		return 0, err
	}
	return c.resources.CreateResource(goalID, userID, title, link, topic, description, requiredTime)
}

func (c *Connection) ContainsResource(resourceID int64) (bool, error) {
	if err := c.precall(); err != nil {
		return false, err
	}
	return c.resources.Exists(resourceID)
}

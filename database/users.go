package database

import (
	"database/sql"
	"fmt"
	"time"

	"goalz/models"
	"goalz/validator"
)

// UserRepository owns all access to the users and user_profile tables.
// Every user row has exactly one profile row; the pair is created together
// and the profile goes away with its user via cascade.
type UserRepository struct {
	db       *DB
	validate *validator.Validator
}

func NewUserRepository(db *DB, v *validator.Validator) *UserRepository {
	return &UserRepository{db: db, validate: v}
}

const selectUserAndProfile = `
	SELECT users.user_id, users.nickname, users.registration_date, users.password,
	       user_profile.firstname, user_profile.lastname, user_profile.email,
	       user_profile.website, user_profile.rating, user_profile.age, user_profile.gender
	FROM users
	JOIN user_profile ON user_profile.user_id = users.user_id`

// GetUser retrieves the full two-part user record by id.
func (r *UserRepository) GetUser(userID int64) (*models.User, error) {
	var user models.User
	var password, firstname, lastname, email, website, gender sql.NullString
	var rating sql.NullFloat64
	var age sql.NullInt64

	err := r.db.QueryRow(selectUserAndProfile+` WHERE users.user_id = ?`, userID).Scan(
		&user.UserID, &user.PublicProfile.Nickname, &user.PublicProfile.RegistrationDate,
		&password, &firstname, &lastname, &email, &website, &rating, &age, &gender,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.PublicProfile.Rating = rating.Float64
	user.PublicProfile.Website = website.String
	user.RestrictedProfile = models.RestrictedProfile{
		Firstname: firstname.String,
		Lastname:  lastname.String,
		Email:     email.String,
		Password:  password.String,
		Age:       age.Int64,
		Gender:    gender.String,
	}

	return &user, nil
}

// GetUserByNickname resolves the nickname to an id first, then fetches the
// full record.
func (r *UserRepository) GetUserByNickname(nickname string) (*models.User, error) {
	userID, err := r.GetUserID(nickname)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetUser(userID)
}

// GetUserPublic retrieves only the public view of a user.
func (r *UserRepository) GetUserPublic(userID int64) (*models.PublicProfile, error) {
	var profile models.PublicProfile
	var website sql.NullString
	var rating sql.NullFloat64

	err := r.db.QueryRow(`
		SELECT users.registration_date, users.nickname, user_profile.rating, user_profile.website
		FROM users
		JOIN user_profile ON user_profile.user_id = users.user_id
		WHERE users.user_id = ?
	`, userID).Scan(&profile.RegistrationDate, &profile.Nickname, &rating, &website)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile.Rating = rating.Float64
	profile.Website = website.String
	return &profile, nil
}

func (r *UserRepository) GetUserPublicByNickname(nickname string) (*models.PublicProfile, error) {
	userID, err := r.GetUserID(nickname)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetUserPublic(userID)
}

// GetUsers lists every user's public view. Order is not guaranteed.
func (r *UserRepository) GetUsers() ([]models.PublicProfile, error) {
	rows, err := r.db.Query(`
		SELECT users.registration_date, users.nickname, user_profile.rating, user_profile.website
		FROM users
		JOIN user_profile ON user_profile.user_id = users.user_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.PublicProfile, 0)
	for rows.Next() {
		var profile models.PublicProfile
		var website sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(&profile.RegistrationDate, &profile.Nickname, &rating, &website); err != nil {
			return nil, err
		}
		profile.Rating = rating.Float64
		profile.Website = website.String
		users = append(users, profile)
	}

	return users, rows.Err()
}

// DeleteUser removes the user row; the profile row cascades. Reports
// whether a row was actually removed.
func (r *UserRepository) DeleteUser(userID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ModifyUser applies a partial update. Password targets the users table,
// the remaining fields the user_profile table; nil fields keep their
// stored value. A call that changes nothing still succeeds as long as the
// user exists.
func (r *UserRepository) ModifyUser(userID int64, patch models.UserPatch) (int64, error) {
	if err := r.validate.Validate(patch); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	exists, err := r.Exists(userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}

	if patch.Password != nil {
		if _, err := r.db.Exec(`UPDATE users SET password = ? WHERE user_id = ?`, *patch.Password, userID); err != nil {
			return 0, err
		}
	}

	update := newUpdate("user_profile")
	if patch.Firstname != nil {
		update.Set("firstname", *patch.Firstname)
	}
	if patch.Lastname != nil {
		update.Set("lastname", *patch.Lastname)
	}
	if patch.Email != nil {
		update.Set("email", *patch.Email)
	}
	if patch.Age != nil {
		update.Set("age", *patch.Age)
	}
	if patch.Gender != nil {
		update.Set("gender", *patch.Gender)
	}
	if patch.Website != nil {
		update.Set("website", *patch.Website)
	}

	if !update.Empty() {
		query, args := update.Build("user_id = ?", userID)
		if _, err := r.db.Exec(query, args...); err != nil {
			return 0, err
		}
	}

	return userID, nil
}

// CreateUser inserts the base row with the current timestamp as
// registration date, then the profile row keyed by the generated id.
// Uniqueness of the nickname is pre-checked here on top of the column
// constraint.
func (r *UserRepository) CreateUser(nickname string, profile models.NewProfile) (string, error) {
	if nickname == "" {
		return "", fmt.Errorf("%w: nickname is required", ErrInvalidArgument)
	}
	if err := r.validate.Validate(profile); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	taken, err := r.ContainsUser(nickname)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrNicknameTaken
	}

	res, err := r.db.Exec(`
		INSERT INTO users (nickname, password, registration_date)
		VALUES (?, ?, ?)
	`, nickname, profile.Password, time.Now().Unix())
	if err != nil {
		return "", err
	}

	userID, err := res.LastInsertId()
	if err != nil {
		return "", err
	}

	_, err = r.db.Exec(`
		INSERT INTO user_profile (user_id, firstname, lastname, email, age, gender, rating, website)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)
	`, userID, profile.Firstname, profile.Lastname, profile.Email,
		profile.Age, profile.Gender, profile.Website)
	if err != nil {
		return "", err
	}

	return nickname, nil
}

// GetUserID resolves a nickname to its user id, ErrNotFound when the
// nickname is unknown.
func (r *UserRepository) GetUserID(nickname string) (int64, error) {
	var userID int64
	err := r.db.QueryRow(`SELECT user_id FROM users WHERE nickname = ?`, nickname).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Exists reports whether a user row with the given id is present. Other
// repositories use this for referential checks before their writes.
func (r *UserRepository) Exists(userID int64) (bool, error) {
	var id int64
	err := r.db.QueryRow(`SELECT user_id FROM users WHERE user_id = ?`, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) ContainsUser(nickname string) (bool, error) {
	_, err := r.GetUserID(nickname)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

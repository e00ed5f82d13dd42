package models

// PublicProfile is the reduced user view exposed by list operations and
// by public single-user lookups.
type PublicProfile struct {
	RegistrationDate int64   `json:"registration_date"`
	Nickname         string  `json:"nickname"`
	Rating           float64 `json:"rating"`
	Website          string  `json:"website"`
}

// RestrictedProfile holds the personally identifiable fields stored in the
// user_profile table plus the password from the users table.
type RestrictedProfile struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Age       int64  `json:"age"`
	Gender    string `json:"gender"`
}

// User is the full two-part record returned by single-user fetches.
type User struct {
	UserID            int64             `json:"user_id"`
	PublicProfile     PublicProfile     `json:"public_profile"`
	RestrictedProfile RestrictedProfile `json:"restricted_profile"`
}

// NewProfile carries the profile fields accepted at user creation. Nil
// fields are stored as NULL.
type NewProfile struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password"`
	Age       *int64  `json:"age" validate:"omitempty,gte=0"`
	Gender    *string `json:"gender"`
	Website   *string `json:"website"`
}

// UserPatch is a partial update. Nil fields keep their stored value.
// Password targets the users table, everything else the user_profile table.
type UserPatch struct {
	Password  *string `json:"password"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Age       *int64  `json:"age" validate:"omitempty,gte=0"`
	Gender    *string `json:"gender"`
	Website   *string `json:"website"`
}

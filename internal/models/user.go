package models

// UserProfile holds the optional profile details of a user.
type UserProfile struct {
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Bio        string `json:"bio"`
	JoinedDate string `json:"joinedDate"`
}

// User is the signed-in account of a session.
type User struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Profile *UserProfile `json:"profile,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Profile != nil {
		p := *u.Profile
		c.Profile = &p
	}
	return &c
}

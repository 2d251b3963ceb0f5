package domain

import "errors"

var (
	ErrEmptyName  = errors.New("name is required")
	ErrEmptyEmail = errors.New("email is required")
)

// User represents a registered person. Records are immutable once stored.
type User struct {
	ID    int64
	Name  string
	Email string
}

// NewUser builds a user ensuring required invariants.
func NewUser(id int64, name, email string) (*User, error) {
	user := &User{ID: id}
	if err := user.setName(name); err != nil {
		return nil, err
	}
	if err := user.setEmail(email); err != nil {
		return nil, err
	}
	return user, nil
}

// Values are stored as given; only presence is checked.
func (u *User) setName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	return nil
}

// Email only needs to be present; its format is not checked.
func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	u.Email = email
	return nil
}

// Validate re-applies core invariants before persistence.
func (u *User) Validate() error {
	if err := u.setName(u.Name); err != nil {
		return err
	}
	return u.setEmail(u.Email)
}

package mapper

import userdomain "github.com/Apurer/action-repo-api/internal/domains/users/domain"

// User represents the transport-level user payload.
type User struct {
	ID    int64
	Name  string
	Email string
}

// ToDomainUser converts a transport user to its domain counterpart.
func ToDomainUser(model User) (*userdomain.User, error) {
	return userdomain.NewUser(model.ID, model.Name, model.Email)
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// FromDomainUsers converts a slice of domain users to transport representation.
func FromDomainUsers(users []*userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}

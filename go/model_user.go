package actionserver

// User - A registered person.
type User struct {
	Id int64 `json:"id"`

	Name string `json:"name"`

	Email string `json:"email"`
}

// CreateUserRequest - Body of POST /api/users.
type CreateUserRequest struct {
	Name string `json:"name"`

	Email string `json:"email"`
}

// ListUsersResponse - Envelope returned by GET /api/users.
type ListUsersResponse struct {
	Success bool `json:"success"`

	Data []User `json:"data"`

	Count int `json:"count"`
}

// GetUserResponse - Envelope returned by GET /api/users/:id.
type GetUserResponse struct {
	Success bool `json:"success"`

	Data User `json:"data"`
}

// CreateUserResponse - Envelope returned by POST /api/users.
type CreateUserResponse struct {
	Success bool `json:"success"`

	Data User `json:"data"`

	Message string `json:"message"`
}

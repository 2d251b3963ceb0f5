package actionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	userhttpmapper "github.com/Apurer/action-repo-api/internal/domains/users/adapters/http/mapper"
	userports "github.com/Apurer/action-repo-api/internal/domains/users/ports"
	apierrors "github.com/Apurer/action-repo-api/internal/shared/errors"
)

// UserAPI implements the /api/users section.
type UserAPI struct {
	service userports.Service
}

// NewUserAPI wires dependencies.
func NewUserAPI(service userports.Service) UserAPI {
	return UserAPI{service: service}
}

func fromTransportUser(user userhttpmapper.User) User {
	return User{
		Id:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func fromTransportUsers(users []userhttpmapper.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, fromTransportUser(user))
	}
	return result
}

// Get /api/users
// List all users
func (api *UserAPI) ListUsers(c *gin.Context) {
	users, err := api.service.List(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}
	data := fromTransportUsers(userhttpmapper.FromDomainUsers(users))
	c.JSON(http.StatusOK, ListUsersResponse{Success: true, Data: data, Count: len(data)})
}

// Get /api/users/:id
// Find user by id
func (api *UserAPI) GetUserByID(c *gin.Context) {
	var id int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, c.Param("id"), &id)
	if err != nil {
		respondProblem(c, apierrors.ErrUserNotFound)
		return
	}
	user, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, GetUserResponse{Success: true, Data: fromTransportUser(userhttpmapper.FromDomainUser(user))})
}

// Post /api/users
// Create user
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondProblem(c, apierrors.ErrUserInputRequired)
		return
	}
	created, err := api.service.Create(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateUserResponse{
		Success: true,
		Data:    fromTransportUser(userhttpmapper.FromDomainUser(created)),
		Message: "User created successfully",
	})
}

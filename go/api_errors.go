package actionserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	userapp "github.com/Apurer/action-repo-api/internal/domains/users/application"
	userports "github.com/Apurer/action-repo-api/internal/domains/users/ports"
	apierrors "github.com/Apurer/action-repo-api/internal/shared/errors"
)

var userResponder = apierrors.NewChainedResponder(mapUserError)

// respondProblem writes a failure envelope through the shared responder.
func respondProblem(c *gin.Context, apiErr apierrors.APIError) {
	apierrors.Respond(c, apiErr)
}

func respondUserError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if _, ok := mapUserError(err); !ok {
		// Surfaces the cause to the error-logging middleware.
		_ = c.Error(err)
	}
	userResponder.RespondError(c, err)
}

func mapUserError(err error) (apierrors.APIError, bool) {
	switch {
	case errors.Is(err, userports.ErrNotFound):
		return apierrors.ErrUserNotFound, true
	case errors.Is(err, userapp.ErrInvalidInput):
		return apierrors.ErrUserInputRequired, true
	default:
		return apierrors.APIError{}, false
	}
}

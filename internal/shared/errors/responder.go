package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Responder sends failure envelopes.
type Responder struct{}

// NewResponder creates a new envelope responder.
func NewResponder() *Responder {
	return &Responder{}
}

// DefaultResponder is used by the package-level helpers.
var DefaultResponder = NewResponder()

// Respond writes the APIError as a failure envelope and aborts the chain.
func (r *Responder) Respond(c *gin.Context, apiErr APIError) {
	c.AbortWithStatusJSON(apiErr.Status, apiErr.Envelope())
}

// RespondError writes err when it is an APIError, otherwise a generic 500.
// Internal error text never reaches the client.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		r.Respond(c, apiErr)
		return
	}
	r.Respond(c, ErrInternal)
}

// Respond is a convenience function using the default responder.
func Respond(c *gin.Context, apiErr APIError) {
	DefaultResponder.Respond(c, apiErr)
}

// RespondError is a convenience function using the default responder.
func RespondError(c *gin.Context, err error) {
	DefaultResponder.RespondError(c, err)
}

// ErrorMapper maps domain/application errors to APIError.
type ErrorMapper func(err error) (APIError, bool)

// ChainedResponder supports custom error mapping.
type ChainedResponder struct {
	*Responder
	mappers []ErrorMapper
}

// NewChainedResponder creates a responder with custom error mappers.
func NewChainedResponder(mappers ...ErrorMapper) *ChainedResponder {
	return &ChainedResponder{
		Responder: NewResponder(),
		mappers:   mappers,
	}
}

// AddMapper adds an error mapper to the chain.
func (r *ChainedResponder) AddMapper(mapper ErrorMapper) {
	r.mappers = append(r.mappers, mapper)
}

// RespondError tries each mapper before falling back to default handling.
func (r *ChainedResponder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if apiErr, ok := mapper(err); ok {
			r.Respond(c, apiErr)
			return
		}
	}
	r.Responder.RespondError(c, err)
}

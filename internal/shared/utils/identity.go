package utils

import (
	"github.com/gin-gonic/gin"

	"turnero/internal/shared/authorization"
	"turnero/internal/shared/constants"
	"turnero/internal/shared/errors"
)

// SetIdentity stores the authenticated admin on the request context.
func SetIdentity(c *gin.Context, identity *authorization.Identity) {
	c.Set(constants.ContextKeyIdentity, identity)
	c.Set(constants.ContextKeyAdminID, identity.AdminID)
	c.Set(constants.ContextKeySessionID, identity.SessionID)
}

// GetIdentity returns the admin set by the auth middleware.
func GetIdentity(c *gin.Context) (*authorization.Identity, error) {
	v, ok := c.Get(constants.ContextKeyIdentity)
	if !ok {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}
	identity, ok := v.(*authorization.Identity)
	if !ok || identity == nil {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}
	return identity, nil
}

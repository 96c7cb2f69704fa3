package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// GetUserID extracts the user ID from the gin context
func GetUserID(c *gin.Context) string {
	v, ok := c.Get("user_id")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// GetUserName extracts the user name from the gin context
func GetUserName(c *gin.Context) string {
	v, ok := c.Get("user_name")
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}

// GetRole extracts the role from the gin context
func GetRole(c *gin.Context) string {
	v, ok := c.Get("user_role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}

// IsAdmin reports whether the authenticated user is an admin
func IsAdmin(c *gin.Context) bool {
	return GetRole(c) == "admin"
}

// Actor builds an actor reference from the authenticated user's claims
func Actor(c *gin.Context) entity.ActorRef {
	return entity.ActorRef{
		UserID:   GetUserID(c),
		UserName: GetUserName(c),
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
)

const (
	// employeeIDKey stores the authenticated employee's ID.
	employeeIDKey = contextKey("employeeID")
	// sessionClaimsKey stores the full session claims (role, branch, shift).
	sessionClaimsKey = contextKey("sessionClaims")
)

// SessionClaims is the authenticated session as seen by handlers.
type SessionClaims struct {
	EmployeeID string
	Role       domain.EmployeeRole
	BranchID   string
	Shift      domain.Shift
}

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the
// Gin context. It returns the ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(employeeIDKey)); exists {
		if employeeID, ok := val.(string); ok {
			return employeeID, true
		}
		return "", false
	}
	// check in the request context as well
	if val := c.Request.Context().Value(employeeIDKey); val != nil {
		if employeeID, ok := val.(string); ok {
			return employeeID, true
		}
	}
	return "", false
}

// GetSessionClaimsFromContext retrieves the full session claims.
func GetSessionClaimsFromContext(c *gin.Context) (*SessionClaims, bool) {
	if val := c.Request.Context().Value(sessionClaimsKey); val != nil {
		if claims, ok := val.(*SessionClaims); ok {
			return claims, true
		}
	}
	return nil, false
}

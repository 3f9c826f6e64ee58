package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromRequest pulls the caller's employee id out of the verified
// token claims. Returns "" when the claim is missing or malformed.
func employeeIDFromRequest(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok {
		return ""
	}
	return employeeID
}

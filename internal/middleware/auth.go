package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/0thman3698/on-demand-backend/internal/auth"
	"github.com/0thman3698/on-demand-backend/internal/domain"
)

const principalKey = "principal"

// Auth extracts the bearer token and stores the verified principal on the
// request context. Token issuance is not this service's business.
func Auth(verifier *auth.Verifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		principal, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole rejects principals whose role is not in the allow list.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *ginext.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing principal"})
			return
		}
		if _, ok := allowed[principal.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	return principal, ok
}

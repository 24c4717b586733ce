package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"os_service_api/internal/domain/entities"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Authenticated parses the Bearer token and stores the resulting Actor
// in the gin context. Expected claims: sub (actor id), cliente_id
// (owning customer, optional) and roles (string list).
func Authenticated() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		actor := entities.Actor{}
		if sub, err := claims.GetSubject(); err == nil {
			actor.ID = sub
		}
		if customerID, ok := claims["cliente_id"].(string); ok {
			actor.CustomerID = customerID
		}
		if rawRoles, ok := claims["roles"].([]any); ok {
			for _, r := range rawRoles {
				if s, ok := r.(string); ok {
					actor.Roles = append(actor.Roles, entities.Role(s))
				}
			}
		}
		if actor.ID == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFromContext retrieves the authenticated Actor stored by
// Authenticated.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor is a test helper used to inject an Actor without a token.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}

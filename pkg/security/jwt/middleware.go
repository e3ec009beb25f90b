package jwt

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/auth"
)

// Keys of the values the middleware stores in c.Locals.
const (
	LocalUserID   = "userId"
	LocalRole     = "role"
	LocalTokenID  = "tokenId"
	LocalTokenExp = "tokenExp"
)

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AccountChecker reports whether the token's owner may still use the API.
type AccountChecker interface {
	IsActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

var (
	errMissingHeader = errors.New("missing Authorization header")
	errEmptyToken    = errors.New("empty token")
	errInvalidToken  = errors.New("invalid or expired token")
	errBadIssuer     = errors.New("invalid token issuer")
	errRevoked       = errors.New("token has been revoked")
	errInactive      = errors.New("account is deactivated")
)

// Verifier validates bearer tokens (HS256) and, when a checker is set, rejects revoked ones.
type Verifier struct {
	secret   []byte
	issuer   string
	revoked  RevocationChecker
	accounts AccountChecker
}

// NewVerifier returns a verifier; revoked may be nil.
func NewVerifier(secret, expectedIssuer string, revoked RevocationChecker) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: expectedIssuer, revoked: revoked}
}

// WithAccounts makes Parse reject tokens of deactivated or deleted users.
func (v *Verifier) WithAccounts(a AccountChecker) *Verifier {
	v.accounts = a
	return v
}

// Parse validates tokenStr and returns its claims.
func (v *Verifier) Parse(ctx context.Context, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, errBadIssuer
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || !claims.Role.Valid() {
		return nil, errInvalidToken
	}
	if v.revoked != nil && claims.ID != "" {
		revoked, err := v.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			// An unreachable denylist must not lock every user out.
			log.Printf("jwt: revocation check failed: %v", err)
		} else if revoked {
			return nil, errRevoked
		}
	}
	if v.accounts != nil {
		active, err := v.accounts.IsActive(ctx, userID)
		if err != nil {
			log.Printf("jwt: account check failed: %v", err)
			return nil, errInvalidToken
		}
		if !active {
			return nil, errInactive
		}
	}
	return claims, nil
}

// bearerToken supports both "Bearer <token>" and "<token>" (no prefix).
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func unauthorized(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
}

func setLocals(c *fiber.Ctx, claims *Claims) {
	c.Locals(LocalUserID, claims.Subject)
	c.Locals(LocalRole, string(claims.Role))
	c.Locals(LocalTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Locals(LocalTokenExp, claims.ExpiresAt.Time)
	}
}

// NewAuthMiddleware rejects requests without a valid token with 401.
func NewAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, errMissingHeader)
		}
		tokenStr := bearerToken(header)
		if tokenStr == "" {
			return unauthorized(c, errEmptyToken)
		}
		claims, err := v.Parse(c.UserContext(), tokenStr)
		if err != nil {
			return unauthorized(c, err)
		}
		setLocals(c, claims)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware identifies the caller when a valid token is present and
// otherwise lets the request through anonymously.
func NewOptionalAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenStr := bearerToken(c.Get(fiber.HeaderAuthorization)); tokenStr != "" {
			if claims, err := v.Parse(c.UserContext(), tokenStr); err == nil {
				setLocals(c, claims)
			}
		}
		return c.Next()
	}
}

// RequireRole must run after an auth middleware; other roles get 403.
func RequireRole(roles ...auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := IdentityFrom(c)
		for _, r := range roles {
			if id.Is(r) {
				return c.Next()
			}
		}
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "access denied"})
	}
}

// IdentityFrom returns the caller set by the middleware; anonymous when absent.
func IdentityFrom(c *fiber.Ctx) auth.Identity {
	raw, _ := c.Locals(LocalUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return auth.Identity{}
	}
	role, _ := c.Locals(LocalRole).(string)
	return auth.Identity{UserID: id, Role: auth.Role(role)}
}

// TokenFrom returns the current token's id and expiry.
func TokenFrom(c *fiber.Ctx) (string, time.Time) {
	id, _ := c.Locals(LocalTokenID).(string)
	exp, _ := c.Locals(LocalTokenExp).(time.Time)
	return id, exp
}

package auth

import (
	"context"
	"strings"
)

// Role es el rol del usuario dentro de la clínica.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleVet   Role = "vet"
	RoleOwner Role = "owner"
)

// ParseRole normaliza el rol; desconocido o vacío cae a owner (el menos privilegiado).
func ParseRole(v string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleVet:
		return RoleVet
	default:
		return RoleOwner
	}
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

// Staff: admin o vet. Solo staff puede borrar citas.
func (c Claims) Staff() bool {
	return c.Role == RoleAdmin || c.Role == RoleVet
}

// AuthVerifier valida el bearer token contra el proveedor de identidad.
// Un error significa token rechazado; AuthContext deja el request sin claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// VerifierFunc adapta una función a AuthVerifier.
type VerifierFunc func(ctx context.Context, token string) (Claims, error)

func (f VerifierFunc) Verify(ctx context.Context, token string) (Claims, error) {
	return f(ctx, token)
}

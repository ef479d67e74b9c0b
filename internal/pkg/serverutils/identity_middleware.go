package serverutils

import (
	"talentflow-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

const (
	headerActingUser = "X-Acting-User"
	headerActingRole = "X-Acting-Role"

	identityLocal = "acting_identity"
)

// IdentityMiddleware resolves the acting identity from request headers.
// There is no authentication in this system: identity is a display string,
// and it is threaded explicitly into every engine call rather than read
// from ambient state. Unknown roles are rejected rather than guessed.
func IdentityMiddleware(ctx *fiber.Ctx) error {
	name := ctx.Get(headerActingUser)
	if name == "" {
		name = "Recruiting Ops"
	}

	role := entity.Role(ctx.Get(headerActingRole))
	switch role {
	case "":
		role = entity.RoleRecruiter
	case entity.RoleRecruiter, entity.RoleHiringManager:
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse("unknown acting role"))
	}

	ctx.Locals(identityLocal, entity.Identity{Name: name, Role: role})
	return ctx.Next()
}

// ActingIdentity reads the identity resolved by IdentityMiddleware.
func ActingIdentity(ctx *fiber.Ctx) entity.Identity {
	if id, ok := ctx.Locals(identityLocal).(entity.Identity); ok {
		return id
	}
	return entity.Identity{Name: "Recruiting Ops", Role: entity.RoleRecruiter}
}

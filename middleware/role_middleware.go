package middleware

import (
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func SeekerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.SeekerRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только соискателю"))
		}
		return ctx.Next()
	}
}

func RecruiterRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.RecruiterRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только рекрутеру"))
		}
		return ctx.Next()
	}
}

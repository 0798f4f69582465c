package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RoleMiddlewareWithCustomError validasi role global + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role dari context (HARUS seragam)
		role, ok := c.Locals("userRole").(string) // 🔥 pastikan "userRole"
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		log.Printf("[DEBUG] Role pengguna: %s\n", role)

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// OnlyLocalRoles validasi role lokal (per lokalitas). Role global admin
// selalu lolos supaya pusat tetap bisa mengelola data lokal.
func OnlyLocalRoles(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if globalRole, ok := c.Locals("userRole").(string); ok && globalRole == "admin" {
			return c.Next()
		}

		localRole, ok := c.Locals("localRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing local role information",
			})
		}

		log.Printf("[DEBUG] Role lokal pengguna: %s\n", localRole)

		for _, allowed := range roles {
			if localRole == allowed {
				return c.Next()
			}
		}

		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customMessage,
		})
	}
}

// OnlyRolesSlice memungkinkan akses jika user memiliki salah satu dari role yang diizinkan.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized - Role not found",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": message,
		})
	}
}

package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/pkg/utils"
)

// newRoleApp จำลอง route ทำลายข้อมูลที่มี user ผ่าน auth มาแล้ว
func newRoleApp(user *utils.UserContext) *fiber.App {
	app := fiber.New()
	app.Delete("/videos/:id", func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals("user", user)
		}
		return c.Next()
	}, AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	app := newRoleApp(&utils.UserContext{ID: uuid.New(), Username: "root", Role: "admin"})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/videos/"+uuid.NewString(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	app := newRoleApp(&utils.UserContext{ID: uuid.New(), Username: "viewer", Role: "user"})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/videos/"+uuid.NewString(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminOnly_RejectsAnonymous(t *testing.T) {
	app := newRoleApp(nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/videos/"+uuid.NewString(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

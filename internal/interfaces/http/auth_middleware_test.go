package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "catalogo-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar el principal
//   - RequireLevel para autorizar el acceso por nivel mínimo
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(minLevel int) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + nivel mínimo
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireLevel(minLevel),
		func(c *fiber.Ctx) error {
			p := apphttp.GetPrincipal(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": p.RoleName,
			})
		},
	)
	return app
}

// tokenForLevel genera un JWT con el role y nivel indicados.
func tokenForLevel(t *testing.T, role string, level int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana", role, level, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireLevel
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Admin (nivel 3) accede a ruta de nivel 3 → HTTP 200.
func TestRequireLevel_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(3)
	resp := doRequest(t, app, tokenForLevel(t, "Admin", 3))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "Admin", body["role"], "el role debe ser Admin")
}

// Caso 1b: un nivel superior satisface el mínimo (Admin en ruta de Funcionario).
func TestRequireLevel_AdminAccedeRutaFuncionario(t *testing.T) {
	app := buildTestApp(2)
	resp := doRequest(t, app, tokenForLevel(t, "Admin", 3))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un nivel superior debe poder acceder a rutas de nivel inferior")
}

// Caso 2: Usuario (nivel 1) bloqueado en ruta de Funcionario → HTTP 403.
func TestRequireLevel_UsuarioBloqueadoEnRutaFuncionario(t *testing.T) {
	app := buildTestApp(2)
	resp := doRequest(t, app, tokenForLevel(t, "Usuario", 1))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"usuario no debe poder acceder a ruta restringida a funcionario")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: Funcionario (nivel 2) bloqueado en ruta solo Admin → HTTP 403.
func TestRequireLevel_FuncionarioBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(3)
	resp := doRequest(t, app, tokenForLevel(t, "Funcionario", 2))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin nivel de role (nivel 0) → HTTP 401 MISSING_ROLE.
func TestRequireLevel_TokenSinNivel_Retorna401(t *testing.T) {
	// Token con nivel 0 para simular un token legacy sin el claim.
	app := buildTestApp(1)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana", "", 0, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin nivel debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireLevel_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(1)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireLevel_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(1)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción del principal del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraePrincipal(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{
			"user_id":    p.UserID,
			"name":       p.Name,
			"role":       p.RoleName,
			"role_level": p.RoleLevel,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForLevel(t, "Funcionario", 2))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "ana", body["name"])
	assert.Equal(t, "Funcionario", body["role"])
	assert.Equal(t, float64(2), body["role_level"])
}

// GetPrincipal sin middleware devuelve el valor cero, que no pasa ningún nivel.
func TestGetPrincipal_SinMiddleware_ValorCero(t *testing.T) {
	app := fiber.New()
	app.Get("/open", apphttp.RequireLevel(1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin principal en el contexto el acceso debe denegarse")
}

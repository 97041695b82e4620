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

	apphttp "github.com/akwaabafreight/tracking-api/internal/interfaces/http"
	pkgjwt "github.com/akwaabafreight/tracking-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "akwaaba-tracking-test"
	testExpMin    = 60
)

// buildProtectedApp builds a minimal Fiber app with AuthMiddleware plus the
// employee-only guard and a dummy handler that returns 200 when both pass.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Post("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireEmployee(),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole generates a JWT with the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "a valid JWT must be generated")
	return "Bearer " + tok
}

// doRequest sends POST /protected and returns the response.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireEmployee tests
// ──────────────────────────────────────────────────────────────────────────────

// Case 1: employee role passes the employee-only guard → HTTP 200.
func TestRequireEmployee_EmployeePasses(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, tokenForRole(t, "employee"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"employee must reach an employee-only route")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "employee", body["role"])
}

// Case 2: customer role is rejected → HTTP 403 with the error envelope.
func TestRequireEmployee_CustomerForbidden(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, tokenForRole(t, "customer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"customer must not reach an employee-only route")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"success":false`)
	assert.Contains(t, string(body), "Employee only")
}

// Case 2b: corporate role is rejected too → HTTP 403.
func TestRequireEmployee_CorporateForbidden(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, tokenForRole(t, "corporate"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Case 3: no Authorization header → HTTP 401 before the role guard runs.
func TestRequireEmployee_NoAuthHeader_Returns401(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No token provided")
}

// Case 4: malformed token → HTTP 401 Invalid token.
func TestRequireEmployee_InvalidToken_Returns401(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid token")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware tests — claim extraction
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "employee"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "employee", body["role"])
}

func TestAuthMiddleware_BareTokenWithoutBearer_Returns401(t *testing.T) {
	app := buildProtectedApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "employee", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, tok) // no "Bearer " prefix
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg tests — generate/parse integrity
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_WithRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "corporate", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "corporate", role)
}

func TestJWT_ExpiredToken_ReturnsError(t *testing.T) {
	// Expiration of -1 minute: already expired at parse time.
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "customer", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "an expired token must be rejected")
}

func TestJWT_WrongSecret_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "customer", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "a wrong secret must invalidate the token")
}

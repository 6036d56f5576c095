package history

import (
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := setupMockDB(t)
	app := fiber.New()
	NewHandler(NewRepository(db), zap.NewNop()).RegisterRoutes(app)
	return app, mock
}

func TestHandleHistory(t *testing.T) {
	app, mock := setupApp(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `server_sightings` WHERE job_id = ?")).
		WillReturnRows(sightingRows())

	resp, err := app.Test(httptest.NewRequest("GET", "/history/abc?limit=2", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `"messageId":"m2"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleHistory_Empty(t *testing.T) {
	app, mock := setupApp(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(columns))

	resp, err := app.Test(httptest.NewRequest("GET", "/history/none", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandleHistory_DatabaseError(t *testing.T) {
	app, mock := setupApp(t)
	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/history/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.False(t, f.IsEnabled())
	assert.Nil(t, f.Repository())
	assert.Equal(t, "history", f.Name())
}

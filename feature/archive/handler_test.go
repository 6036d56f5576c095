package archive

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"server-relay/core/storage"
	"server-relay/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupFeature(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()
	client.On("BucketExists", mock.Anything, "relay").Return(true, nil).Once()

	f := NewFeature(
		Config{Enabled: true, IntervalSeconds: 60, Prefix: "snapshots"},
		storage.Config{Bucket: "relay"},
		client,
		staticSource{},
		zap.NewNop(),
	)
	require.True(t, f.IsEnabled())

	app := fiber.New()
	require.NoError(t, f.Load(app))
	return app
}

func TestHandleExport(t *testing.T) {
	client := new(mocks.Client)
	app := setupFeature(t, client)
	client.On("PutObject", mock.Anything, "relay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/archive", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `"snapshots/latest.json"`)
	client.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleExport_Failure(t *testing.T) {
	client := new(mocks.Client)
	app := setupFeature(t, client)
	client.On("PutObject", mock.Anything, "relay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("POST", "/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleLatest(t *testing.T) {
	client := new(mocks.Client)
	app := setupFeature(t, client)
	client.On("GetObject", mock.Anything, "relay", "snapshots/latest.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`[]`)), nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/archive/latest", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `[]`, string(body))
}

func TestHandleLatest_NotFound(t *testing.T) {
	client := new(mocks.Client)
	app := setupFeature(t, client)
	client.On("GetObject", mock.Anything, "relay", "snapshots/latest.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"}).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/archive/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestFeature_LoadCreatesBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "relay").Return(false, nil).Once()
	client.On("MakeBucket", mock.Anything, "relay", minio.MakeBucketOptions{Region: "eu"}).Return(nil).Once()

	f := NewFeature(Config{Enabled: true, Prefix: "snapshots"}, storage.Config{Bucket: "relay", Region: "eu"}, client, staticSource{}, zap.NewNop())
	require.NoError(t, f.Load(fiber.New()))
	client.AssertExpectations(t)
}

func TestFeature_Disabled(t *testing.T) {
	f := NewFeature(Config{Enabled: false}, storage.Config{}, new(mocks.Client), staticSource{}, zap.NewNop())
	assert.False(t, f.IsEnabled())
	assert.Nil(t, f.Exporter())

	f = NewFeature(Config{Enabled: true}, storage.Config{}, nil, staticSource{}, zap.NewNop())
	assert.False(t, f.IsEnabled())
}

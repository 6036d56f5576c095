package servers_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"server-relay/feature/servers"
	"server-relay/feature/servers/models"
	"server-relay/feature/servers/store"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setup(t *testing.T) (*fiber.App, *servers.Service, *clock) {
	t.Helper()
	clk := &clock{now: time.UnixMilli(1_700_000_000_000)}
	svc := servers.NewService(
		store.New(store.WithClock(clk.Now)),
		store.Config{ExpirySeconds: 600, SweepIntervalSeconds: 30},
		zap.NewNop(),
	)
	app := fiber.New()
	require.NoError(t, servers.NewFeature(svc).Load(app))
	return app, svc, clk
}

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/receive", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func get[T any](t *testing.T, app *fiber.App, path string) (int, T) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var out T
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(b, &out), string(b))
	}
	return resp.StatusCode, out
}

func TestHandleReceive_Single(t *testing.T) {
	app, _, _ := setup(t)

	code, body := post(t, app, `{"id":"1","jobId":"abc","serverName":"Alpha","moneyPerSec":1200}`)

	assert.Equal(t, 200, code)
	assert.JSONEq(t, `{"status":"ok","count":1}`, body)
}

func TestHandleReceive_Array(t *testing.T) {
	app, _, _ := setup(t)

	code, body := post(t, app, `[{"id":"1"},{"id":"2"},{"id":"3","jobId":"x"}]`)

	assert.Equal(t, 200, code)
	assert.JSONEq(t, `{"status":"ok","count":3}`, body)
}

func TestHandleReceive_BadBody(t *testing.T) {
	app, svc, _ := setup(t)

	bodies := []string{
		"", "null", "{not json", `"text"`, `{"moneyPerSec":"lots"}`,
		`[null]`, `[{"jobId":"a"},null]`, `[{"jobId":"a"},"b"]`,
	}
	for _, body := range bodies {
		code, _ := post(t, app, body)
		assert.Equal(t, 400, code, "body %q", body)
	}
	assert.Zero(t, svc.Count())
}

func TestHandleReceive_NullElementStoresNothing(t *testing.T) {
	app, svc, _ := setup(t)

	code, _ := post(t, app, `[{"jobId":"a"},null]`)
	assert.Equal(t, 400, code)

	_, entities := get[[]models.Entity](t, app, "/messages")
	assert.Empty(t, entities)
	assert.Zero(t, svc.Count())
}

func TestReceiveThenQuery_MergesAcrossMessages(t *testing.T) {
	app, _, clk := setup(t)

	post(t, app, `{"id":"1","jobId":"job-1","serverName":"Alpha","author":"bot"}`)
	clk.Advance(time.Second)
	post(t, app, `{"id":"2","jobId":"job-1","serverName":"","players":"12/50"}`)

	code, entities := get[[]models.Entity](t, app, "/messages")
	require.Equal(t, 200, code)
	require.Len(t, entities, 1)
	assert.Equal(t, "Alpha", entities[0].ServerName)
	assert.Equal(t, "12/50", entities[0].Players)
	assert.Equal(t, "2", entities[0].ID)
	assert.Equal(t, 1_700_000_000.0, entities[0].FirstSeen)
	assert.Equal(t, 1_700_000_001.0, entities[0].LastSeen)
}

func TestHandleMessages_OrderAndExpiry(t *testing.T) {
	app, _, clk := setup(t)

	post(t, app, `{"jobId":"stale"}`)
	clk.Advance(301 * time.Second)
	post(t, app, `{"jobId":"older"}`)
	clk.Advance(300 * time.Second)
	post(t, app, `{"jobId":"newer"}`)

	_, entities := get[[]models.Entity](t, app, "/messages")
	require.Len(t, entities, 2)
	assert.Equal(t, "newer", entities[0].JobID)
	assert.Equal(t, "older", entities[1].JobID)
}

func TestHandleMessages_Empty(t *testing.T) {
	app, _, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/messages", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandleMessage(t *testing.T) {
	app, _, clk := setup(t)
	post(t, app, `{"id":"9","jobId":"abc","serverName":"Alpha"}`)

	code, entity := get[models.Entity](t, app, "/messages/job:abc")
	assert.Equal(t, 200, code)
	assert.Equal(t, "Alpha", entity.ServerName)

	code, _ = get[models.Entity](t, app, "/messages/job%3Aabc")
	assert.Equal(t, 200, code)

	code, _ = get[models.Entity](t, app, "/messages/msg:9")
	assert.Equal(t, 404, code)

	clk.Advance(601 * time.Second)
	code, _ = get[models.Entity](t, app, "/messages/job:abc")
	assert.Equal(t, 404, code)
}

func TestHandleHealth(t *testing.T) {
	app, svc, clk := setup(t)
	post(t, app, `[{"jobId":"a"},{"jobId":"b"}]`)
	clk.Advance(time.Hour)

	code, health := get[models.Health](t, app, "/health")
	assert.Equal(t, 200, code)
	assert.Equal(t, models.Health{Status: "ok", Entities: 2}, health)

	assert.Equal(t, 2, svc.Sweep())
	_, health = get[models.Health](t, app, "/health")
	assert.Equal(t, 0, health.Entities)
}

type recorderFunc func(ctx context.Context, key string, rec models.Record) error

func (f recorderFunc) Record(ctx context.Context, key string, rec models.Record) error {
	return f(ctx, key, rec)
}

func TestService_RecorderSeesKeys(t *testing.T) {
	app, svc, _ := setup(t)

	var keys []string
	svc.SetRecorder(recorderFunc(func(_ context.Context, key string, _ models.Record) error {
		keys = append(keys, key)
		return errors.New("database down")
	}))

	code, body := post(t, app, `[{"jobId":"a"},{"id":"7"}]`)

	assert.Equal(t, 200, code)
	assert.JSONEq(t, `{"status":"ok","count":2}`, body)
	assert.Equal(t, []string{"job:a", "msg:7"}, keys)
}

func TestService_IngestImplementsPollerContract(t *testing.T) {
	_, svc, _ := setup(t)

	require.NoError(t, svc.Ingest(context.Background(), models.Record{JobID: "x", ServerName: "Alpha"}))
	entity, ok := svc.Lookup("job:x")
	require.True(t, ok)
	assert.Equal(t, "Alpha", entity.ServerName)
}

func TestService_RecorderRunsAfterBatchIsStored(t *testing.T) {
	app, svc, _ := setup(t)

	var seen []models.Record
	svc.SetRecorder(recorderFunc(func(_ context.Context, key string, rec models.Record) error {
		assert.Equal(t, "job:a", key)
		entity, ok := svc.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, "3/8", entity.Players)
		seen = append(seen, rec)
		return nil
	}))

	code, _ := post(t, app, `[{"jobId":"a","serverName":"Alpha"},{"jobId":"a","players":"3/8"}]`)

	assert.Equal(t, 200, code)
	require.Len(t, seen, 2)
	assert.Equal(t, "Alpha", seen[0].ServerName)
	assert.Equal(t, "3/8", seen[1].Players)
}

package vehicle_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/core/storage/mocks"
	"vehicle-reconciler/feature/vehicle"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, svc *vehicle.Service) *fiber.App {
	app := fiber.New()
	handler, err := vehicle.NewHandler(svc)
	require.NoError(t, err)
	handler.RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out), string(data))
	}
	return resp.StatusCode, out
}

func reconcileBody(vin string, save bool) map[string]any {
	return map[string]any{"vin": vin, "primary": eTransitPrimary(), "save": save}
}

func TestHandleReconcile(t *testing.T) {
	app := setupTestApp(t, newTestService(t, nil, reconcile.Config{}))

	status, body := doJSON(t, app, "POST", "/vehicles/reconcile", reconcileBody(strings.ToLower(testVIN), false))
	require.Equal(t, 200, status)
	assert.Equal(t, testVIN, body["vin"])

	meta := body["metadata"].(map[string]any)
	assert.Equal(t, "medium", meta["confidence"])
	cfg := body["configuration"].(map[string]any)
	assert.EqualValues(t, 3880, cfg["payloadCapacity"])
}

func TestHandleReconcile_BadRequests(t *testing.T) {
	app := setupTestApp(t, newTestService(t, nil, reconcile.Config{}))

	tests := []struct {
		name string
		body any
	}{
		{"malformed", `{"vin": `},
		{"missing vin", map[string]any{"primary": eTransitPrimary()}},
		{"short vin", reconcileBody("1FTBW9CK5", false)},
		{"forbidden letter", reconcileBody("1FTBW9CK5PKO12345", false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, "POST", "/vehicles/reconcile", tt.body)
			assert.Equal(t, 400, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleReconcile_TotalSourceFailure(t *testing.T) {
	app := setupTestApp(t, newTestService(t, nil, reconcile.Config{}))

	status, body := doJSON(t, app, "POST", "/vehicles/reconcile", map[string]any{"vin": testVIN})
	require.Equal(t, 200, status)
	assert.Equal(t, "low", body["metadata"].(map[string]any)["confidence"])
}

func TestHandleGetAndList(t *testing.T) {
	app := setupTestApp(t, newTestService(t, nil, reconcile.Config{}))

	status, _ := doJSON(t, app, "GET", "/vehicles/"+testVIN, nil)
	assert.Equal(t, 404, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/reconcile", reconcileBody(testVIN, true))
	require.Equal(t, 200, status)

	status, body := doJSON(t, app, "GET", "/vehicles/"+testVIN, nil)
	require.Equal(t, 200, status)
	assert.Equal(t, testVIN, body["vin"])

	status, body = doJSON(t, app, "GET", "/vehicles?limit=10", nil)
	require.Equal(t, 200, status)
	assert.EqualValues(t, 1, body["total"])
	assert.Len(t, body["results"], 1)

	status, _ = doJSON(t, app, "GET", "/vehicles?offset=-1", nil)
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "GET", "/vehicles/NOT-A-VIN", nil)
	assert.Equal(t, 400, status)
}

func TestHandleOverride(t *testing.T) {
	app := setupTestApp(t, newTestService(t, nil, reconcile.Config{}))
	status, _ := doJSON(t, app, "POST", "/vehicles/reconcile", reconcileBody(testVIN, true))
	require.Equal(t, 200, status)

	status, body := doJSON(t, app, "PATCH", "/vehicles/"+testVIN+"/overrides", map[string]any{
		"overrides": map[string]any{"curbWeight": 6000, "hasTpms": "Yes"},
	})
	require.Equal(t, 200, status)
	assert.EqualValues(t, 3500, body["configuration"].(map[string]any)["payloadCapacity"])
	assert.Equal(t, []any{"curbWeight", "hasTpms"}, body["metadata"].(map[string]any)["fieldsManuallyOverridden"])

	status, _ = doJSON(t, app, "PATCH", "/vehicles/"+testVIN+"/overrides", map[string]any{
		"overrides": map[string]any{"wheelCount": 4},
	})
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "PATCH", "/vehicles/"+testVIN+"/overrides", map[string]any{"overrides": map[string]any{}})
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "PATCH", "/vehicles/"+otherVIN+"/overrides", map[string]any{
		"overrides": map[string]any{"curbWeight": 6000},
	})
	assert.Equal(t, 404, status)
}

func TestHandleDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.ObjectChannel())
	app := setupTestApp(t, newTestService(t, client, reconcile.Config{}))

	status, _ := doJSON(t, app, "POST", "/vehicles/reconcile", reconcileBody(testVIN, true))
	require.Equal(t, 200, status)

	status, _ = doJSON(t, app, "DELETE", "/vehicles/"+testVIN, nil)
	assert.Equal(t, 204, status)

	status, _ = doJSON(t, app, "DELETE", "/vehicles/"+testVIN, nil)
	assert.Equal(t, 404, status)
}

func TestHandleReplay(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "test-bucket", "vehicles/"+testVIN+"/primary.json", mock.Anything).
		Return(jsonObject(eTransitJSON), nil).Once()
	client.On("GetObject", mock.Anything, "test-bucket", "vehicles/"+testVIN+"/secondary.json", mock.Anything).
		Return(nil, noSuchKey).Once()
	client.On("GetObject", mock.Anything, "test-bucket", "vehicles/"+otherVIN+"/primary.json", mock.Anything).
		Return(nil, noSuchKey).Once()
	client.On("PutObject", mock.Anything, "test-bucket", "vehicles/"+testVIN+"/result.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()
	app := setupTestApp(t, newTestService(t, client, reconcile.Config{Archive: true}))

	status, body := doJSON(t, app, "POST", "/vehicles/"+testVIN+"/replay?save=true", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "medium", body["metadata"].(map[string]any)["confidence"])

	status, _ = doJSON(t, app, "GET", "/vehicles/"+testVIN, nil)
	assert.Equal(t, 200, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/"+otherVIN+"/replay", nil)
	assert.Equal(t, 404, status)
	client.AssertExpectations(t)
}

func TestHandleBatch(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(nil, noSuchKey)
	app := setupTestApp(t, newTestService(t, client, reconcile.Config{Workers: 2}))

	status, body := doJSON(t, app, "POST", "/vehicles/batch", map[string]any{"vins": []string{strings.ToLower(testVIN)}})
	require.Equal(t, 200, status)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 1, body["failed"])

	status, _ = doJSON(t, app, "POST", "/vehicles/batch", map[string]any{"vins": []string{"BAD"}})
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/batch", map[string]any{"limit": -1})
	assert.Equal(t, 400, status)
}

func TestHandlers_WithoutStore(t *testing.T) {
	svc := vehicle.NewService(newTestEngine(), nil, nil, reconcile.Config{}, nil)
	app := setupTestApp(t, svc)

	status, _ := doJSON(t, app, "GET", "/vehicles/"+testVIN, nil)
	assert.Equal(t, 503, status)

	status, _ = doJSON(t, app, "GET", "/vehicles", nil)
	assert.Equal(t, 503, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/"+testVIN+"/replay", nil)
	assert.Equal(t, 503, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/batch", map[string]any{})
	assert.Equal(t, 503, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/batch", map[string]any{"vins": []string{testVIN}})
	assert.Equal(t, 503, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/reconcile", reconcileBody(testVIN, true))
	assert.Equal(t, 503, status)

	status, _ = doJSON(t, app, "POST", "/vehicles/reconcile", reconcileBody(testVIN, false))
	assert.Equal(t, 200, status)
}

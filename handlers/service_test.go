package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eletrigo/handlers"
	"eletrigo/models"
	"eletrigo/routes"
	"eletrigo/services/client"
	"eletrigo/services/dashboard"
	"eletrigo/services/electrician"
	"eletrigo/services/ledger"
	"eletrigo/services/notification"
	"eletrigo/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	emitter := notification.NewMemoryEmitter(time.Hour, 0)
	logger := zap.NewNop()

	ledgerService := &ledger.DefaultService{
		Services:     mem.Services,
		Electricians: mem.Electricians,
		Clients:      mem.Clients,
		Notifier:     emitter,
		Logger:       logger,
	}
	bundle := &handlers.HandlerBundle{
		Service: handlers.NewServiceHandler(ledgerService, logger),
		Dashboard: handlers.NewDashboardHandler(&dashboard.DefaultService{
			Services:     mem.Services,
			Electricians: mem.Electricians,
			Clients:      mem.Clients,
		}),
		Client:       handlers.NewClientHandler(&client.DefaultService{Repo: mem.Clients, Notifier: emitter, Logger: logger}),
		Electrician:  handlers.NewElectricianHandler(&electrician.DefaultService{Repo: mem.Electricians, Notifier: emitter, Logger: logger}),
		Notification: handlers.NewNotificationHandler(emitter),
	}

	r := gin.New()
	routes.RegisterRoutes(r, bundle)
	return r, mem
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommandSurface(t *testing.T) {
	r, mem := newTestRouter(t)
	require.NoError(t, mem.Clients.Insert(models.Client{ID: "c1", Name: "Maria", Email: "m@x.com"}))
	require.NoError(t, mem.Electricians.Insert(models.Electrician{ID: "E1", Name: "João", Email: "j@x.com", Status: models.ElectricianApproved}))

	var rec models.ServiceRecord
	t.Run("request service", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
			"clientId":    "c1",
			"serviceType": "Emergencial",
			"address":     "Rua A, 1",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, models.StatusRequested, rec.Status)
	})

	t.Run("second active request conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
			"clientId":    "c1",
			"serviceType": "Emergencial",
			"address":     "Rua A, 1",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("accept with missing eta is a 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services/"+rec.ID+"/accept", gin.H{
			"electricianId": "E1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("accept binds the electrician", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services/"+rec.ID+"/accept", gin.H{
			"electricianId": "E1",
			"eta":           20,
		})
		require.Equal(t, http.StatusOK, w.Code)
		var got models.ServiceRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, models.StatusAccepted, got.Status)
		assert.Equal(t, 20, got.ETA)
	})

	t.Run("unknown service is a 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services/ghost/accept", gin.H{
			"electricianId": "E1",
			"eta":           20,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("advance and complete", func(t *testing.T) {
		for _, status := range []models.ServiceStatus{models.StatusInProgress, models.StatusCompleted} {
			w := doJSON(t, r, http.MethodPost, "/api/services/"+rec.ID+"/advance", gin.H{
				"electricianId": "E1",
				"status":        status,
			})
			require.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("chat and rating", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services/"+rec.ID+"/chat", gin.H{
			"sender":  "client",
			"message": "Obrigada!",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPost, "/api/services/"+rec.ID+"/rate", gin.H{
			"role":   "client",
			"rating": 5,
		})
		require.Equal(t, http.StatusOK, w.Code)

		// Duplicate rating is a guard failure.
		w = doJSON(t, r, http.MethodPost, "/api/services/"+rec.ID+"/rate", gin.H{
			"role":   "client",
			"rating": 4,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("dashboards reflect the lifecycle", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/dashboard/client/c1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var view dashboard.ClientView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Nil(t, view.Current)
		require.Len(t, view.History, 1)
		assert.Equal(t, models.StatusCompleted, view.History[0].Status)

		w = doJSON(t, r, http.MethodGet, "/api/dashboard/admin", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var admin dashboard.AdminView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &admin))
		assert.Equal(t, 1, admin.Report.ServicesByStatus[models.StatusCompleted])
	})
}

func TestAccountEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	var created models.Electrician
	t.Run("electrician registers as pending", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/electricians", gin.H{
			"name":       "João Souza",
			"cpf":        "123.456.789-00",
			"phone":      "11 97777-2222",
			"email":      "joao@example.com",
			"address":    "Rua B, 10",
			"experience": "10 anos",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, models.ElectricianPending, created.Status)
	})

	t.Run("pending electrician sees a blocked dashboard", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/dashboard/electrician/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var view dashboard.ElectricianView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.True(t, view.Blocked)
	})

	t.Run("admin approval unblocks", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/electricians/%s/approval", created.ID), gin.H{
			"status": models.ElectricianApproved,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/dashboard/electrician/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var view dashboard.ElectricianView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.False(t, view.Blocked)
	})

	t.Run("client register, login and profile update", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{
			"name":    "Maria Silva",
			"email":   "maria@example.com",
			"phone":   "11 99999-0000",
			"address": "Rua das Flores, 123",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var c models.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))

		w = doJSON(t, r, http.MethodPost, "/api/clients/login", gin.H{"email": "maria@example.com"})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPut, "/api/clients/"+c.ID, gin.H{
			"name":    "Maria Santos",
			"email":   "maria@example.com",
			"phone":   "11 98888-1111",
			"address": "Av. Central, 45",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPost, "/api/clients/login", gin.H{"email": "sumida@example.com"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotificationEndpoints(t *testing.T) {
	r, mem := newTestRouter(t)
	require.NoError(t, mem.Clients.Insert(models.Client{ID: "c1", Name: "Maria", Email: "m@x.com"}))

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"clientId":    "c1",
		"serviceType": "Agendado",
		"address":     "Rua A, 1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Notifications []models.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Notifications, 1)

	w = doJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/notifications/c1/%s", payload.Notifications[0].ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications/c1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Empty(t, payload.Notifications)
}

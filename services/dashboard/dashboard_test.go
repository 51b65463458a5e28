package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eletrigo/models"
	"eletrigo/store"
)

var day = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (*DefaultService, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := &DefaultService{
		Services:     mem.Services,
		Electricians: mem.Electricians,
		Clients:      mem.Clients,
	}
	return svc, mem
}

func seedRecord(t *testing.T, mem *store.Memory, id, clientID, electricianID, electricianName string, status models.ServiceStatus, date time.Time, value float64) models.ServiceRecord {
	t.Helper()
	name := electricianName
	if name == "" {
		name = models.UnassignedElectrician
	}
	rec := models.ServiceRecord{
		ID:              id,
		ClientID:        clientID,
		ClientName:      "Cliente " + clientID,
		ElectricianID:   electricianID,
		ElectricianName: name,
		Kind:            models.KindEmergency,
		Address:         "Rua A",
		Status:          status,
		Date:            date,
		Value:           value,
	}
	require.NoError(t, mem.Services.Insert(rec))
	return rec
}

func TestClientView(t *testing.T) {
	svc, mem := newFixture(t)
	require.NoError(t, mem.Clients.Insert(models.Client{ID: "c1", Name: "Maria"}))

	seedRecord(t, mem, "s1", "c1", "E1", "João", models.StatusCompleted, day, 180)
	seedRecord(t, mem, "s2", "c1", "", "", models.StatusCancelled, day.Add(24*time.Hour), 160)
	seedRecord(t, mem, "s3", "c1", "E1", "João", models.StatusInProgress, day.Add(48*time.Hour), 200)
	seedRecord(t, mem, "s4", "c2", "", "", models.StatusRequested, day, 155)

	view, err := svc.ClientView("c1")
	require.NoError(t, err)

	require.NotNil(t, view.Current)
	assert.Equal(t, "s3", view.Current.ID)

	// History: terminal records only, newest date first, never other clients'.
	require.Len(t, view.History, 2)
	assert.Equal(t, "s2", view.History[0].ID)
	assert.Equal(t, "s1", view.History[1].ID)

	_, err = svc.ClientView("ghost")
	require.Error(t, err)
}

func TestElectricianView(t *testing.T) {
	t.Run("approved electricians see pool, assignment and history", func(t *testing.T) {
		svc, mem := newFixture(t)
		require.NoError(t, mem.Electricians.Insert(models.Electrician{ID: "E1", Name: "João", Status: models.ElectricianApproved}))

		seedRecord(t, mem, "s1", "c1", "", "", models.StatusRequested, day, 155)
		seedRecord(t, mem, "s2", "c2", "E1", "João", models.StatusAccepted, day, 170)
		seedRecord(t, mem, "s3", "c3", "E1", "João", models.StatusCompleted, day, 190)
		seedRecord(t, mem, "s4", "c4", "E2", "Ana", models.StatusCompleted, day, 210)

		view, err := svc.ElectricianView("E1")
		require.NoError(t, err)
		assert.False(t, view.Blocked)

		require.Len(t, view.Available, 1)
		assert.Equal(t, "s1", view.Available[0].ID)

		require.NotNil(t, view.Current)
		assert.Equal(t, "s2", view.Current.ID)

		require.Len(t, view.History, 1)
		assert.Equal(t, "s3", view.History[0].ID)
	})

	t.Run("pending and suspended accounts are blocked", func(t *testing.T) {
		svc, mem := newFixture(t)
		require.NoError(t, mem.Electricians.Insert(models.Electrician{ID: "EP", Name: "Pedro", Email: "p@x.com", Status: models.ElectricianPending}))
		require.NoError(t, mem.Electricians.Insert(models.Electrician{ID: "ES", Name: "Sofia", Email: "s@x.com", Status: models.ElectricianSuspended}))
		seedRecord(t, mem, "s1", "c1", "", "", models.StatusRequested, day, 155)

		for _, id := range []string{"EP", "ES"} {
			view, err := svc.ElectricianView(id)
			require.NoError(t, err)
			assert.True(t, view.Blocked)
			assert.NotEmpty(t, view.BlockedReason)
			assert.Empty(t, view.Available)
			assert.Nil(t, view.Current)
		}
	})
}

func TestAdminView(t *testing.T) {
	svc, mem := newFixture(t)
	require.NoError(t, mem.Clients.Insert(models.Client{ID: "c1", Name: "Maria", Email: "m@x.com"}))
	require.NoError(t, mem.Clients.Insert(models.Client{ID: "c2", Name: "Paulo", Email: "p@x.com"}))
	require.NoError(t, mem.Electricians.Insert(models.Electrician{ID: "E1", Name: "João", Email: "j@x.com", Status: models.ElectricianApproved}))
	require.NoError(t, mem.Electricians.Insert(models.Electrician{ID: "E2", Name: "Ana", Email: "a@x.com", Status: models.ElectricianPending}))

	seedRecord(t, mem, "s1", "c1", "E1", "João", models.StatusCompleted, day, 180)
	seedRecord(t, mem, "s2", "c2", "E1", "João", models.StatusInProgress, day, 200)
	seedRecord(t, mem, "s3", "c1", "", "", models.StatusCancelled, day, 150)
	seedRecord(t, mem, "s4", "c2", "E2", "Ana", models.StatusCompleted, day, 220)

	view := svc.AdminView()
	assert.Len(t, view.Services, 4)
	assert.Equal(t, 2, view.Stats.TotalElectricians)
	assert.Equal(t, 2, view.Stats.TotalClients)
	assert.Equal(t, 1, view.Stats.ActiveServices)
	assert.Equal(t, 1, view.Stats.PendingApprovals)

	assert.Equal(t, 400.0, view.Report.TotalEarnings)
	assert.Equal(t, 2, view.Report.ServicesByStatus[models.StatusCompleted])
	assert.Equal(t, 1, view.Report.ServicesByStatus[models.StatusInProgress])
	assert.Equal(t, 1, view.Report.ServicesByStatus[models.StatusCancelled])
}

func TestTopElectriciansReport(t *testing.T) {
	t.Run("ranks by completed count, capped at three", func(t *testing.T) {
		svc, mem := newFixture(t)
		counts := map[string]int{"E1": 3, "E2": 1, "E3": 2, "E4": 1}
		i := 0
		for id, n := range counts {
			for k := 0; k < n; k++ {
				i++
				seedRecord(t, mem, fmt.Sprintf("s%d", i), "c1", id, "Elec "+id, models.StatusCompleted, day, 100)
			}
		}

		top := svc.AdminView().Report.TopElectricians
		require.Len(t, top, 3)
		assert.Equal(t, "E1", top[0].ElectricianID)
		assert.Equal(t, 3, top[0].Completed)
		assert.Equal(t, "E3", top[1].ElectricianID)
		assert.Equal(t, 2, top[1].Completed)
		assert.Equal(t, 1, top[2].Completed)
	})

	t.Run("ties keep first-encounter order", func(t *testing.T) {
		svc, mem := newFixture(t)
		// Records are listed newest-first, so the last inserted electrician
		// is encountered first.
		seedRecord(t, mem, "s1", "c1", "EA", "Ana", models.StatusCompleted, day, 100)
		seedRecord(t, mem, "s2", "c1", "EB", "Bruno", models.StatusCompleted, day, 100)
		seedRecord(t, mem, "s3", "c1", "EC", "Carla", models.StatusCompleted, day, 100)

		top := svc.AdminView().Report.TopElectricians
		require.Len(t, top, 3)
		assert.Equal(t, []string{"EC", "EB", "EA"}, []string{
			top[0].ElectricianID, top[1].ElectricianID, top[2].ElectricianID,
		})
	})

	t.Run("unassigned completed records never rank", func(t *testing.T) {
		svc, mem := newFixture(t)
		seedRecord(t, mem, "s1", "c1", "", "", models.StatusCancelled, day, 100)

		view := svc.AdminView()
		assert.Empty(t, view.Report.TopElectricians)
		assert.Zero(t, view.Report.TotalEarnings)
	})
}

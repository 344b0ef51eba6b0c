package notify

import (
	"testing"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestDerive_JobSeekerFromDashboard(t *testing.T) {
	snap := Snapshot{Dashboard: models.Dashboard{
		"activeJobAlerts":  float64(3),
		"applicationStats": map[string]any{"total": float64(5)},
	}}

	items := Derive(models.RoleJobSeeker, snap)

	require.Len(t, items, 2)
	assert.Equal(t, Item{
		ID:     "alerts:3",
		Title:  "Job alerts",
		Body:   "3 active alerts. Click to manage alerts.",
		Action: "/jobseeker/alerts",
	}, items[0])
	assert.Equal(t, "apps:5", items[1].ID)
	assert.Equal(t, "5 total applications. Click to view applied jobs.", items[1].Body)
}

func TestDerive_JobSeekerFallsBackToLists(t *testing.T) {
	snap := Snapshot{
		Alerts: []models.JobAlert{
			{ID: 1, IsActive: boolPtr(true)},
			{ID: 2, IsActive: boolPtr(false)},
			{ID: 3},
			{ID: 4, IsActive: boolPtr(true)},
		},
		Applications: []models.Application{
			{ID: 11, Status: "PENDING", Job: &models.ApplicationJob{ID: 9, Title: "Go Developer"}},
			{ID: 10},
		},
	}

	items := Derive(models.RoleJobSeeker, snap)

	assert.Equal(t, []string{"alerts:2", "apps:2", "recent-app:11:PENDING"}, IDs(items))
	assert.Equal(t, "Go Developer • Status: PENDING", items[2].Body)
	assert.Equal(t, "/jobs/9", items[2].Action)
}

func TestDerive_RecentApplicationDefaults(t *testing.T) {
	snap := Snapshot{Applications: []models.Application{
		{Job: &models.ApplicationJob{ID: 4}},
	}}

	items := Derive(models.RoleJobSeeker, snap)

	require.Len(t, items, 3)
	assert.Equal(t, "recent-app:4:", items[2].ID)
	assert.Equal(t, "Job • Status: —", items[2].Body)
}

func TestDerive_RecentApplicationNeedsJob(t *testing.T) {
	snap := Snapshot{Applications: []models.Application{{ID: 1, Status: "PENDING"}}}
	assert.Len(t, Derive(models.RoleJobSeeker, snap), 2)
}

func TestDerive_MissingEverythingIsZero(t *testing.T) {
	assert.Equal(t, []string{"alerts:0", "apps:0"}, IDs(Derive(models.RoleJobSeeker, Snapshot{})))
	assert.Equal(t,
		[]string{"employer-pending:0", "employer-today:0", "employer-jobs:0"},
		IDs(Derive(models.RoleEmployer, Snapshot{})))
	assert.Equal(t, []string{"admin-approvals:0", "admin-users:0"}, IDs(Derive(models.RoleAdmin, Snapshot{})))
}

func TestDerive_Employer(t *testing.T) {
	primary := models.Dashboard{
		"pendingApplications": float64(4),
		"todaysApplications":  float64(1),
		"activeJobs":          float64(6),
	}
	items := Derive(models.RoleEmployer, Snapshot{Dashboard: primary})
	assert.Equal(t, []string{"employer-pending:4", "employer-today:1", "employer-jobs:6"}, IDs(items))
	assert.Equal(t, "Today’s applications", items[1].Title)
	assert.Equal(t, "/employer/jobs", items[2].Action)

	nested := models.Dashboard{
		"applicationStats": map[string]any{"pending": float64(2)},
		"jobStats":         map[string]any{"active": "3"},
	}
	assert.Equal(t,
		[]string{"employer-pending:2", "employer-today:0", "employer-jobs:3"},
		IDs(Derive(models.RoleEmployer, Snapshot{Dashboard: nested})))
}

func TestDerive_AdminIsDefault(t *testing.T) {
	d := models.Dashboard{
		"pendingApprovals": float64(2),
		"systemStats":      map[string]any{"activeUsers": float64(40)},
	}
	want := []string{"admin-approvals:2", "admin-users:40"}
	assert.Equal(t, want, IDs(Derive(models.RoleAdmin, Snapshot{Dashboard: d})))
	assert.Equal(t, want, IDs(Derive(models.Role("AUDITOR"), Snapshot{Dashboard: d})))
}

func TestDerive_Deterministic(t *testing.T) {
	snap := Snapshot{Dashboard: models.Dashboard{"activeJobAlerts": float64(1)}}
	assert.Equal(t, Derive(models.RoleJobSeeker, snap), Derive(models.RoleJobSeeker, snap))
}

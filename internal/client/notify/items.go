// Package notify derives the notification list shown in the REPL header
// from periodically polled dashboard, alert and application data, and
// tracks which notifications the user has already seen.
package notify

import (
	"fmt"
	"strconv"

	"github.com/ethiocareer/careercli/internal/client/models"
)

// Item is a derived notification. ID embeds the values it summarizes, so
// a changed count yields a new, unseen item.
type Item struct {
	ID    string
	Title string
	Body  string
	// Action is the path to navigate to, or empty.
	Action string
}

// Snapshot is the polled input of Derive. Any part may be missing.
type Snapshot struct {
	Dashboard    models.Dashboard
	Alerts       []models.JobAlert
	Applications []models.Application
}

// Derive builds the items for role. Missing values count as zero. Roles
// other than job seeker and employer get the admin items.
func Derive(role models.Role, s Snapshot) []Item {
	switch role {
	case models.RoleJobSeeker:
		return jobSeekerItems(s)
	case models.RoleEmployer:
		return employerItems(s.Dashboard)
	default:
		return adminItems(s.Dashboard)
	}
}

func jobSeekerItems(s Snapshot) []Item {
	alerts, ok := s.Dashboard.Int("activeJobAlerts")
	if !ok {
		alerts = countActive(s.Alerts)
	}
	apps, ok := s.Dashboard.Int("applicationStats", "total")
	if !ok {
		apps = len(s.Applications)
	}

	items := []Item{
		{
			ID:     fmt.Sprintf("alerts:%d", alerts),
			Title:  "Job alerts",
			Body:   fmt.Sprintf("%d active alerts. Click to manage alerts.", alerts),
			Action: "/jobseeker/alerts",
		},
		{
			ID:     fmt.Sprintf("apps:%d", apps),
			Title:  "Applications",
			Body:   fmt.Sprintf("%d total applications. Click to view applied jobs.", apps),
			Action: "/jobseeker/applications",
		},
	}

	if len(s.Applications) > 0 {
		if recent := s.Applications[0]; recent.Job != nil && recent.Job.ID != 0 {
			items = append(items, recentApplicationItem(recent))
		}
	}
	return items
}

func recentApplicationItem(a models.Application) Item {
	ref := a.ID
	if ref == 0 {
		ref = a.Job.ID
	}
	title := a.Job.Title
	if title == "" {
		title = "Job"
	}
	status := a.Status
	if status == "" {
		status = "—"
	}
	return Item{
		ID:     "recent-app:" + strconv.FormatInt(ref, 10) + ":" + a.Status,
		Title:  "Latest application",
		Body:   title + " • Status: " + status,
		Action: "/jobs/" + strconv.FormatInt(a.Job.ID, 10),
	}
}

func employerItems(d models.Dashboard) []Item {
	pending, _ := d.FirstInt([]string{"pendingApplications"}, []string{"applicationStats", "pending"})
	today, _ := d.Int("todaysApplications")
	active, _ := d.FirstInt([]string{"activeJobs"}, []string{"jobStats", "active"})

	return []Item{
		{
			ID:     fmt.Sprintf("employer-pending:%d", pending),
			Title:  "Pending applications",
			Body:   fmt.Sprintf("%d pending applications to review.", pending),
			Action: "/employer/applications",
		},
		{
			ID:     fmt.Sprintf("employer-today:%d", today),
			Title:  "Today’s applications",
			Body:   fmt.Sprintf("%d applications received today.", today),
			Action: "/employer/applications",
		},
		{
			ID:     fmt.Sprintf("employer-jobs:%d", active),
			Title:  "Active jobs",
			Body:   fmt.Sprintf("%d active job posts.", active),
			Action: "/employer/jobs",
		},
	}
}

func adminItems(d models.Dashboard) []Item {
	approvals, _ := d.Int("pendingApprovals")
	users, _ := d.FirstInt([]string{"activeUsers"}, []string{"systemStats", "activeUsers"})

	return []Item{
		{
			ID:     fmt.Sprintf("admin-approvals:%d", approvals),
			Title:  "Pending approvals",
			Body:   fmt.Sprintf("%d employer approvals waiting.", approvals),
			Action: "/admin/users",
		},
		{
			ID:     fmt.Sprintf("admin-users:%d", users),
			Title:  "Active users",
			Body:   fmt.Sprintf("%d active users on the platform.", users),
			Action: "/admin/users",
		},
	}
}

func countActive(alerts []models.JobAlert) int {
	n := 0
	for _, a := range alerts {
		if a.Active() {
			n++
		}
	}
	return n
}

// IDs returns the identifiers of items in order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

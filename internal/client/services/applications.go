package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
)

// Status labels of the employer applications view. Only APPROVED differs
// from its API value (SHORTLISTED).
const (
	StatusPending  = "PENDING"
	StatusReviewed = "REVIEWED"
	StatusApproved = "APPROVED"

	apiShortlisted = "SHORTLISTED"
)

// StatusOptions lists the statuses an employer can set.
var StatusOptions = []string{StatusPending, StatusReviewed, StatusApproved}

// ToUIStatus maps an API status to its label.
func ToUIStatus(status string) string {
	raw := strings.ToUpper(status)
	if raw == apiShortlisted {
		return StatusApproved
	}
	return raw
}

// ToAPIStatus maps a label back to the API status.
func ToAPIStatus(status string) string {
	raw := strings.ToUpper(status)
	if raw == StatusApproved {
		return apiShortlisted
	}
	return raw
}

// Badge condenses a status to Pending, Blocked or Active.
func Badge(status string) string {
	raw := strings.ToUpper(status)
	switch {
	case strings.Contains(raw, "PENDING"), strings.Contains(raw, "SUBMITTED"):
		return "Pending"
	case strings.Contains(raw, "REJECT"):
		return "Blocked"
	default:
		return "Active"
	}
}

type ApplicationsAPI interface {
	Apply(ctx context.Context, req models.ApplyRequest) (models.Application, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
	WithdrawApplication(ctx context.Context, id int64) error
	EmployerApplications(ctx context.Context) ([]models.Application, error)
	JobApplications(ctx context.Context, jobID int64) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) error
	DownloadApplicationCv(ctx context.Context, id int64) (models.Download, error)
}

// ApplicationsService covers both sides of an application: the job
// seeker who applies and the employer who reviews. Statuses returned to
// the employer are already mapped to labels.
type ApplicationsService interface {
	Apply(ctx context.Context, jobID int64, coverLetter string) (models.Application, error)
	Mine(ctx context.Context) ([]models.Application, error)
	Withdraw(ctx context.Context, id int64) error
	ForEmployer(ctx context.Context, jobID int64) ([]models.Application, error)
	SetStatus(ctx context.Context, id int64, label string) error
	DownloadCv(ctx context.Context, id int64) (models.Download, error)
}

type applicationsService struct {
	api ApplicationsAPI
}

func NewApplicationsService(api ApplicationsAPI) ApplicationsService {
	return &applicationsService{api: api}
}

func (s *applicationsService) Apply(ctx context.Context, jobID int64, coverLetter string) (models.Application, error) {
	if jobID <= 0 {
		return models.Application{}, FieldErrors{"jobId": "is required"}
	}
	app, err := s.api.Apply(ctx, models.ApplyRequest{JobID: jobID, CoverLetter: strings.TrimSpace(coverLetter)})
	if err != nil {
		return models.Application{}, fmt.Errorf("apply: %w", err)
	}
	return app, nil
}

func (s *applicationsService) Mine(ctx context.Context) ([]models.Application, error) {
	apps, err := s.api.MyApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("my applications: %w", err)
	}
	return apps, nil
}

func (s *applicationsService) Withdraw(ctx context.Context, id int64) error {
	if err := s.api.WithdrawApplication(ctx, id); err != nil {
		return fmt.Errorf("withdraw application: %w", err)
	}
	return nil
}

// ForEmployer lists all applications to the employer's jobs, or only
// those of jobID when it is positive.
func (s *applicationsService) ForEmployer(ctx context.Context, jobID int64) ([]models.Application, error) {
	var (
		apps []models.Application
		err  error
	)
	if jobID > 0 {
		apps, err = s.api.JobApplications(ctx, jobID)
	} else {
		apps, err = s.api.EmployerApplications(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("employer applications: %w", err)
	}
	for i := range apps {
		apps[i].Status = ToUIStatus(apps[i].Status)
	}
	return apps, nil
}

func (s *applicationsService) SetStatus(ctx context.Context, id int64, label string) error {
	label = strings.ToUpper(strings.TrimSpace(label))
	if !slices.Contains(StatusOptions, label) {
		return FieldErrors{"status": "must be one of " + strings.Join(StatusOptions, ", ")}
	}
	if err := s.api.UpdateApplicationStatus(ctx, id, ToAPIStatus(label)); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

// DownloadCv falls back to a generated filename when the server sends none.
func (s *applicationsService) DownloadCv(ctx context.Context, id int64) (models.Download, error) {
	d, err := s.api.DownloadApplicationCv(ctx, id)
	if err != nil {
		return models.Download{}, fmt.Errorf("download cv: %w", err)
	}
	if d.Filename == "" {
		d.Filename = fmt.Sprintf("application-%d-cv", id)
	}
	return d, nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/common"
)

func (a *App) EmployerJobs(ctx context.Context, args []string) error {
	user := a.session.User()
	if user == nil {
		return common.ErrNotAuthenticated
	}

	if len(args) == 0 {
		jobs, err := a.backend.EmployerJobs(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			a.println(a.muted("No job posts yet. Create one with 'myjobs post'."))
			return nil
		}
		for _, j := range jobs {
			a.printf("%6d  %-36s %-20s %s\n", j.ID, j.Title, orDash(j.Location), onOff(deref(j.IsActive)))
		}
		return nil
	}

	switch sub := strings.ToLower(args[0]); sub {
	case "post":
		return a.postJob(ctx)
	case "on", "off":
		id, err := parseID(args, 1, "job id")
		if err != nil {
			return err
		}
		if err := a.backend.SetJobActive(ctx, id, sub == "on"); err != nil {
			return err
		}
		a.printf("Job #%d is now %s.\n", id, onOff(sub == "on"))
	case "delete":
		id, err := parseID(args, 1, "job id")
		if err != nil {
			return err
		}
		if !Confirm(a.reader, fmt.Sprintf("Delete job #%d?", id), a.out) {
			return nil
		}
		if err := a.backend.DeleteJob(ctx, id); err != nil {
			return err
		}
		a.println("Job deleted.")
	default:
		return usage("myjobs [post|on <id>|off <id>|delete <id>]")
	}
	return nil
}

func (a *App) postJob(ctx context.Context) error {
	var (
		job                           models.Job
		jobType, minSalary, maxSalary string
		err                           error
	)
	ask := func(dst *string, prompt string) {
		if err == nil {
			*dst, err = getSimpleText(a.reader, prompt, a.out)
		}
	}
	ask(&job.Title, "Title")
	ask(&job.Location, "Location")
	ask(&jobType, "Type: FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP or REMOTE")
	ask(&minSalary, "Minimum salary (optional)")
	ask(&maxSalary, "Maximum salary (optional)")
	if err != nil {
		return err
	}
	if job.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}

	fe := services.FieldErrors{}
	if len(strings.TrimSpace(job.Title)) < 3 {
		fe["title"] = "must be at least 3 characters"
	}
	if job.Description == "" {
		fe["description"] = "is required"
	}
	job.JobType = models.JobType(strings.ToUpper(strings.TrimSpace(jobType)))
	switch job.JobType {
	case models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeInternship, models.JobTypeRemote:
	default:
		fe["jobType"] = "must be one of FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP, REMOTE"
	}
	job.SalaryMin = parseAmount(minSalary, "salaryMin", fe)
	job.SalaryMax = parseAmount(maxSalary, "salaryMax", fe)
	if len(fe) > 0 {
		return fe
	}

	created, err := a.backend.CreateJob(ctx, job)
	if err != nil {
		return err
	}
	a.printf("Job #%d posted.\n", created.ID)
	return nil
}

func parseAmount(s, field string, fe services.FieldErrors) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		fe[field] = "must be a positive number"
		return nil
	}
	return &n
}

// Candidates lists applications to the employer's jobs (optionally one
// job), updates a status or downloads the applicant's CV.
func (a *App) Candidates(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "status":
			id, err := parseID(args, 1, "application id")
			if err != nil {
				return err
			}
			if len(args) < 3 {
				return usage("candidates status <id> <" + strings.Join(services.StatusOptions, "|") + ">")
			}
			if err := a.applicationsService.SetStatus(ctx, id, args[2]); err != nil {
				return err
			}
			a.printf("Application #%d marked %s.\n", id, strings.ToUpper(args[2]))
			return nil
		case "cv":
			id, err := parseID(args, 1, "application id")
			if err != nil {
				return err
			}
			d, err := a.applicationsService.DownloadCv(ctx, id)
			if err != nil {
				return err
			}
			return a.save(d)
		}
	}

	var jobID int64
	if len(args) > 0 {
		id, err := parseID(args, 0, "job id")
		if err != nil {
			return err
		}
		jobID = id
	}
	apps, err := a.applicationsService.ForEmployer(ctx, jobID)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		a.println(a.muted("No applications yet."))
		return nil
	}
	for _, app := range apps {
		who, job := "Applicant", ""
		if app.JobSeeker != nil {
			who = orDefault(strings.TrimSpace(app.JobSeeker.FirstName+" "+app.JobSeeker.LastName), app.JobSeeker.Email)
		}
		if app.Job != nil {
			job = app.Job.Title
		}
		a.printf("%6d  %-24s %-28s %s\n", app.ID, who, orDash(job), app.Status)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/services"
)

func (a *App) Jobs(ctx context.Context, args []string) error {
	var (
		jobs []models.Job
		err  error
	)
	if keyword := strings.Join(args, " "); keyword != "" {
		jobs, err = a.backend.SearchJobs(ctx, keyword)
	} else {
		jobs, err = a.backend.Jobs(ctx)
	}
	if err != nil {
		return err
	}
	a.printJobs(jobs)
	return nil
}

// FilterJobs accepts key=value arguments: location, type, min, max.
func (a *App) FilterJobs(ctx context.Context, args []string) error {
	var f models.JobFilter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return usage("filter [location=..] [type=..] [min=..] [max=..]")
		}
		switch strings.ToLower(key) {
		case "location":
			f.Location = value
		case "type":
			f.JobType = models.JobType(strings.ToUpper(value))
		case "min", "max":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return services.FieldErrors{key: "must be a number"}
			}
			if key == "min" {
				f.MinSalary = &n
			} else {
				f.MaxSalary = &n
			}
		default:
			return services.FieldErrors{key: "is not a job filter"}
		}
	}

	jobs, err := a.backend.FilterJobs(ctx, f)
	if err != nil {
		return err
	}
	a.printJobs(jobs)
	return nil
}

func (a *App) ShowJob(ctx context.Context, args []string) error {
	id, err := parseID(args, 0, "job id")
	if err != nil {
		return err
	}
	j, err := a.backend.Job(ctx, id)
	if err != nil {
		return err
	}

	a.println(a.accent(j.Title))
	a.printf("  %s • %s • %s\n", orDash(j.CompanyName), orDash(j.Location), orDash(string(j.JobType)))
	if s := salary(j); s != "" {
		a.printf("  Salary: %s\n", s)
	}
	if j.Description != "" {
		a.println("")
		a.println(j.Description)
	}
	if skills := deref(j.RequiredSkills); skills != "" {
		a.printf("\nRequired skills: %s\n", skills)
	}
	if d := deref(j.ApplicationDeadline); d != "" {
		a.printf("Apply by: %s\n", d)
	}
	return nil
}

func (a *App) printJobs(jobs []models.Job) {
	if len(jobs) == 0 {
		a.println(a.muted("No jobs found."))
		return
	}
	for _, j := range jobs {
		a.printf("%6d  %-36s %-24s %s\n", j.ID, j.Title, orDash(j.CompanyName), orDash(j.Location))
	}
}

func salary(j models.Job) string {
	cur := deref(j.SalaryCurrency)
	if cur == "" {
		cur = "ETB"
	}
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("%.0f - %.0f %s", *j.SalaryMin, *j.SalaryMax, cur)
	case j.SalaryMin != nil:
		return fmt.Sprintf("from %.0f %s", *j.SalaryMin, cur)
	case j.SalaryMax != nil:
		return fmt.Sprintf("up to %.0f %s", *j.SalaryMax, cur)
	}
	return ""
}

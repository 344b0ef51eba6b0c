package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/filex"
)

// maxCvBytes caps uploaded CV files.
const maxCvBytes = 10 << 20

func (a *App) Apply(ctx context.Context, args []string) error {
	jobID, err := parseID(args, 0, "job id")
	if err != nil {
		return err
	}
	letter, err := GetMultiline(a.reader, "Cover letter (optional)", a.out)
	if err != nil {
		return err
	}
	app, err := a.applicationsService.Apply(ctx, jobID, letter)
	if err != nil {
		return err
	}
	a.printf("Application #%d submitted (%s).\n", app.ID, services.Badge(app.Status))
	return nil
}

func (a *App) MyApplications(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if strings.ToLower(args[0]) != "withdraw" {
			return usage("applications [withdraw <id>]")
		}
		id, err := parseID(args, 1, "application id")
		if err != nil {
			return err
		}
		if err := a.applicationsService.Withdraw(ctx, id); err != nil {
			return err
		}
		a.println("Application withdrawn.")
		return nil
	}

	apps, err := a.applicationsService.Mine(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		a.println(a.muted("You have not applied to any job yet."))
		return nil
	}
	for _, app := range apps {
		title, company := "Job Application", ""
		if app.Job != nil {
			title, company = orDefault(app.Job.Title, title), app.Job.CompanyName
		}
		a.printf("%6d  %-32s %-20s %-10s %s\n", app.ID, title, orDash(company), services.Badge(app.Status), orDash(app.AppliedAt))
	}
	return nil
}

func (a *App) Cvs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cvs, err := a.backend.Cvs(ctx)
		if err != nil {
			return err
		}
		if len(cvs) == 0 {
			a.println(a.muted("No CVs yet. Upload one with 'cvs upload <file>'."))
			return nil
		}
		for _, cv := range cvs {
			mark := ""
			if deref(cv.IsDefault) {
				mark = " (default)"
			}
			a.printf("%6d  %s%s\n", cv.ID, orDefault(deref(cv.CvName), deref(cv.OriginalFileName)), mark)
		}
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "upload":
		if len(args) < 2 {
			return usage("cvs upload <file> [name]")
		}
		data, err := filex.ReadLimited(args[1], maxCvBytes)
		if err != nil {
			return err
		}
		name := strings.Join(args[2:], " ")
		cv, err := a.backend.UploadCv(ctx, models.CvUpload{FileName: filepath.Base(args[1]), Data: data, CvName: name})
		if err != nil {
			return err
		}
		a.printf("Uploaded CV #%d.\n", cv.ID)
	case "download":
		id, err := parseID(args, 1, "cv id")
		if err != nil {
			return err
		}
		d, err := a.backend.DownloadCv(ctx, id)
		if err != nil {
			return err
		}
		if d.Filename == "" {
			d.Filename = fmt.Sprintf("cv-%d", id)
		}
		return a.save(d)
	case "default":
		id, err := parseID(args, 1, "cv id")
		if err != nil {
			return err
		}
		if err := a.backend.SetDefaultCv(ctx, id); err != nil {
			return err
		}
		a.println("Default CV updated.")
	case "delete":
		id, err := parseID(args, 1, "cv id")
		if err != nil {
			return err
		}
		if !Confirm(a.reader, fmt.Sprintf("Delete CV #%d?", id), a.out) {
			return nil
		}
		if err := a.backend.DeleteCv(ctx, id); err != nil {
			return err
		}
		a.println("CV deleted.")
	default:
		return usage("cvs [upload <file> [name]|download <id>|default <id>|delete <id>]")
	}
	return nil
}

func (a *App) Alerts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		alerts, err := a.backend.JobAlerts(ctx)
		if err != nil {
			return err
		}
		if len(alerts) == 0 {
			a.println(a.muted("No job alerts yet. Create one with 'alerts add'."))
			return nil
		}
		for _, al := range alerts {
			a.printf("%6d  %-28s %-16s %s\n", al.ID, orDash(deref(al.Keywords)), orDash(deref(al.Location)), onOff(al.Active()))
		}
		return nil
	}

	switch sub := strings.ToLower(args[0]); sub {
	case "add":
		keywords, err := getSimpleText(a.reader, "Keywords", a.out)
		if err != nil {
			return err
		}
		location, err := getSimpleText(a.reader, "Location (optional)", a.out)
		if err != nil {
			return err
		}
		if keywords == "" && location == "" {
			return services.FieldErrors{"keywords": "is required"}
		}
		active := true
		al := models.JobAlert{IsActive: &active}
		if keywords != "" {
			al.Keywords = &keywords
		}
		if location != "" {
			al.Location = &location
		}
		created, err := a.backend.CreateJobAlert(ctx, al)
		if err != nil {
			return err
		}
		a.printf("Alert #%d created.\n", created.ID)
	case "on", "off":
		id, err := parseID(args, 1, "alert id")
		if err != nil {
			return err
		}
		if err := a.backend.SetJobAlertActive(ctx, id, sub == "on"); err != nil {
			return err
		}
		a.printf("Alert #%d is now %s.\n", id, onOff(sub == "on"))
	case "delete":
		id, err := parseID(args, 1, "alert id")
		if err != nil {
			return err
		}
		if err := a.backend.DeleteJobAlert(ctx, id); err != nil {
			return err
		}
		a.println("Alert deleted.")
	default:
		return usage("alerts [add|on <id>|off <id>|delete <id>]")
	}
	return nil
}

// save writes a download into the download directory.
func (a *App) save(d models.Download) error {
	path, err := filex.SaveUnique(a.downloadDir, d.Filename, d.Data)
	if err != nil {
		return err
	}
	a.printf("Saved %s (%d bytes).\n", path, len(d.Data))
	return nil
}

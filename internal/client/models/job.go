package models

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeRemote     JobType = "REMOTE"
)

type Job struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description,omitempty"`
	Location            string   `json:"location,omitempty"`
	JobType             JobType  `json:"jobType,omitempty"`
	SalaryMin           *float64 `json:"salaryMin,omitempty"`
	SalaryMax           *float64 `json:"salaryMax,omitempty"`
	SalaryCurrency      *string  `json:"salaryCurrency,omitempty"`
	ExperienceLevel     *string  `json:"experienceLevel,omitempty"`
	RequiredSkills      *string  `json:"requiredSkills,omitempty"`
	PreferredSkills     *string  `json:"preferredSkills,omitempty"`
	Benefits            *string  `json:"benefits,omitempty"`
	ApplicationDeadline *string  `json:"applicationDeadline,omitempty"`
	IsRemote            *bool    `json:"isRemote,omitempty"`
	Vacancies           *int     `json:"vacancies,omitempty"`
	IsActive            *bool    `json:"isActive,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"`
	UpdatedAt           string   `json:"updatedAt,omitempty"`
	EmployerID          int64    `json:"employerId,omitempty"`
	EmployerName        string   `json:"employerName,omitempty"`
	EmployerEmail       string   `json:"employerEmail,omitempty"`
	CompanyName         string   `json:"companyName,omitempty"`
	CompanyIndustry     string   `json:"companyIndustry,omitempty"`
}

// JobFilter holds the optional query parameters of /api/jobs/filter.
type JobFilter struct {
	Location  string
	JobType   JobType
	MinSalary *float64
	MaxSalary *float64
}

type JobAlert struct {
	ID              int64    `json:"id,omitempty"`
	Keywords        *string  `json:"keywords,omitempty"`
	Location        *string  `json:"location,omitempty"`
	JobType         *string  `json:"jobType,omitempty"`
	MinSalary       *float64 `json:"minSalary,omitempty"`
	MaxSalary       *float64 `json:"maxSalary,omitempty"`
	ExperienceLevel *string  `json:"experienceLevel,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
	AlertFrequency  *string  `json:"alertFrequency,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UserID          int64    `json:"userId,omitempty"`
}

// Active treats a missing flag as inactive.
func (a JobAlert) Active() bool {
	return a.IsActive != nil && *a.IsActive
}

package models

type ApplicationCV struct {
	ID       int64   `json:"id"`
	FileName *string `json:"fileName,omitempty"`
	CvName   *string `json:"cvName,omitempty"`
}

type ApplicationJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Location    string `json:"location,omitempty"`
}

type ApplicationSeeker struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Application struct {
	ID          int64              `json:"id"`
	CoverLetter *string            `json:"coverLetter,omitempty"`
	Status      string             `json:"status,omitempty"`
	AppliedAt   string             `json:"appliedAt,omitempty"`
	UpdatedAt   string             `json:"updatedAt,omitempty"`
	CV          *ApplicationCV     `json:"cv,omitempty"`
	Job         *ApplicationJob    `json:"job,omitempty"`
	JobSeeker   *ApplicationSeeker `json:"jobSeeker,omitempty"`
}

type ApplyRequest struct {
	JobID       int64  `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// Download is a binary attachment plus the filename announced by the server.
type Download struct {
	Data        []byte
	Filename    string
	ContentType string
}

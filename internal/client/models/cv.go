package models

type Cv struct {
	ID               int64   `json:"id,omitempty"`
	CvName           *string `json:"cvName,omitempty"`
	FullName         *string `json:"fullName,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	Education        *string `json:"education,omitempty"`
	Experience       *string `json:"experience,omitempty"`
	Skills           *string `json:"skills,omitempty"`
	Certifications   *string `json:"certifications,omitempty"`
	Languages        *string `json:"languages,omitempty"`
	FileName         *string `json:"fileName,omitempty"`
	OriginalFileName *string `json:"originalFileName,omitempty"`
	FileType         *string `json:"fileType,omitempty"`
	FileSize         *int64  `json:"fileSize,omitempty"`
	IsUploadedCv     *bool   `json:"isUploadedCv,omitempty"`
	IsDefault        *bool   `json:"isDefault,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	UpdatedAt        string  `json:"updatedAt,omitempty"`
	UserID           int64   `json:"userId,omitempty"`
}

type CvTemplate struct {
	ID            int64   `json:"id,omitempty"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	ThumbnailURL  *string `json:"thumbnailUrl,omitempty"`
	HTMLContent   *string `json:"htmlContent,omitempty"`
	CSSContent    *string `json:"cssContent,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
	IsPremium     *bool   `json:"isPremium,omitempty"`
	Category      *string `json:"category,omitempty"`
	FieldsConfig  *string `json:"fieldsConfig,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
	CreatedByID   int64   `json:"createdById,omitempty"`
	CreatedByName string  `json:"createdByName,omitempty"`
}

// CvUpload is a file CV posted as multipart form data.
type CvUpload struct {
	FileName  string
	Data      []byte
	CvName    string
	IsDefault *bool
}

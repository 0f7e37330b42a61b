package resumes

import "time"

// UploadResponse is the body returned by a successful upload.
type UploadResponse struct {
	Message  string `json:"message"`
	ResumeID int64  `json:"resume_id"`
	Data     Resume `json:"data"`
}

// Summary is the compact list representation of a resume.
type Summary struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
}

func toSummary(r Resume) Summary {
	return Summary{
		ID:         r.ID,
		FileName:   r.FileName,
		UploadedAt: r.UploadedAt,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
	}
}

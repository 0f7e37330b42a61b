package resumes

import "time"

// Resume is the persistent record for one uploaded resume. It is created in
// a pending shape (file name and raw text only) right after text extraction
// and enriched exactly once with the extracted profile and analysis.
type Resume struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`

	Profile

	RawText  *string         `json:"raw_text"`
	Analysis *AnalysisResult `json:"llm_analysis"`
}

// Profile holds the structured candidate data extracted from resume text by
// the first LLM call. Extraction is best-effort, so every field is optional;
// after normalization list fields are never nil.
type Profile struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`
	PortfolioURL *string `json:"portfolio_url"`
	Address      *string `json:"address"`
	Summary      *string `json:"summary"`

	EducationHistory []EducationEntry      `json:"education_history"`
	WorkExperience   []WorkExperienceEntry `json:"work_experience"`
	Projects         []ProjectEntry        `json:"projects"`

	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	OtherSkills     []string `json:"other_skills"`

	Languages      []LanguageEntry      `json:"languages"`
	Certifications []CertificationEntry `json:"certifications"`
	AwardsHonors   []string             `json:"awards_honors"`
	Publications   []string             `json:"publications"`

	ReferencesAvailable *bool `json:"references_available"`
}

type EducationEntry struct {
	Institution  *string  `json:"institution"`
	Degree       *string  `json:"degree"`
	FieldOfStudy *string  `json:"field_of_study"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	GPA          *float64 `json:"gpa"`
	Details      []string `json:"details"`
}

type WorkExperienceEntry struct {
	JobTitle         *string  `json:"job_title"`
	Company          *string  `json:"company"`
	Location         *string  `json:"location"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

type ProjectEntry struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Technologies  []string `json:"technologies"`
	URL           *string  `json:"url"`
	RepositoryURL *string  `json:"repository_url"`
}

// LanguageEntry requires a language name; entries without one are dropped
// during normalization.
type LanguageEntry struct {
	Language    string  `json:"language"`
	Proficiency *string `json:"proficiency"`
}

// CertificationEntry requires a certification name; entries without one are
// dropped during normalization.
type CertificationEntry struct {
	Name                string  `json:"name"`
	IssuingOrganization *string `json:"issuing_organization"`
	IssueDate           *string `json:"issue_date"`
	ExpirationDate      *string `json:"expiration_date"`
	CredentialID        *string `json:"credential_id"`
	CredentialURL       *string `json:"credential_url"`
}

// normalize enforces the list invariant: list fields are empty sequences,
// never nil, and entries missing their required name are removed.
func (p *Profile) normalize() {
	if p.EducationHistory == nil {
		p.EducationHistory = []EducationEntry{}
	}
	for i := range p.EducationHistory {
		if p.EducationHistory[i].Details == nil {
			p.EducationHistory[i].Details = []string{}
		}
	}

	if p.WorkExperience == nil {
		p.WorkExperience = []WorkExperienceEntry{}
	}
	for i := range p.WorkExperience {
		if p.WorkExperience[i].Responsibilities == nil {
			p.WorkExperience[i].Responsibilities = []string{}
		}
		if p.WorkExperience[i].Achievements == nil {
			p.WorkExperience[i].Achievements = []string{}
		}
	}

	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}

	if p.TechnicalSkills == nil {
		p.TechnicalSkills = []string{}
	}
	if p.SoftSkills == nil {
		p.SoftSkills = []string{}
	}
	if p.OtherSkills == nil {
		p.OtherSkills = []string{}
	}

	languages := p.Languages[:0]
	for _, entry := range p.Languages {
		if entry.Language != "" {
			languages = append(languages, entry)
		}
	}
	if languages == nil {
		languages = []LanguageEntry{}
	}
	p.Languages = languages

	certifications := p.Certifications[:0]
	for _, entry := range p.Certifications {
		if entry.Name != "" {
			certifications = append(certifications, entry)
		}
	}
	if certifications == nil {
		certifications = []CertificationEntry{}
	}
	p.Certifications = certifications

	if p.AwardsHonors == nil {
		p.AwardsHonors = []string{}
	}
	if p.Publications == nil {
		p.Publications = []string{}
	}
}

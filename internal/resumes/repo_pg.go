package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, file_name, uploaded_at,
       name, email, phone, linkedin_url, github_url, portfolio_url, address, summary,
       education_history, work_experience, projects,
       technical_skills, soft_skills, other_skills,
       languages, certifications, awards_honors, publications,
       references_available, raw_text, llm_analysis`

// Create inserts a pending record carrying only the file name and raw text.
func (r *PGRepo) Create(ctx context.Context, fileName, rawText string) (Resume, error) {
	const query = `
INSERT INTO resumes (file_name, raw_text)
VALUES ($1, $2)
RETURNING id, uploaded_at`

	resume := Resume{FileName: fileName, RawText: &rawText}
	err := r.DB.QueryRowContext(ctx, query, fileName, rawText).Scan(&resume.ID, &resume.UploadedAt)
	if err != nil {
		return Resume{}, err
	}
	resume.Profile.normalize()
	return resume, nil
}

// Update applies the one-shot enrichment and returns the full record.
func (r *PGRepo) Update(ctx context.Context, id int64, upd Update) (Resume, error) {
	const query = `
UPDATE resumes
SET file_name = $1,
    raw_text = $2,
    name = $3,
    email = $4,
    phone = $5,
    linkedin_url = $6,
    github_url = $7,
    portfolio_url = $8,
    address = $9,
    summary = $10,
    education_history = $11,
    work_experience = $12,
    projects = $13,
    technical_skills = $14,
    soft_skills = $15,
    other_skills = $16,
    languages = $17,
    certifications = $18,
    awards_honors = $19,
    publications = $20,
    references_available = $21,
    llm_analysis = $22
WHERE id = $23
RETURNING ` + resumeColumns

	p := upd.Profile
	jsonb, err := marshalProfileLists(p, upd.Analysis)
	if err != nil {
		return Resume{}, err
	}

	row := r.DB.QueryRowContext(ctx, query,
		upd.FileName,
		upd.RawText,
		p.Name,
		p.Email,
		p.Phone,
		p.LinkedinURL,
		p.GithubURL,
		p.PortfolioURL,
		p.Address,
		p.Summary,
		jsonb.educationHistory,
		jsonb.workExperience,
		jsonb.projects,
		jsonb.technicalSkills,
		jsonb.softSkills,
		jsonb.otherSkills,
		jsonb.languages,
		jsonb.certifications,
		jsonb.awardsHonors,
		jsonb.publications,
		p.ReferencesAvailable,
		jsonb.analysis,
		id,
	)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// GetByID returns a resume by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 LIMIT 1`

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// List returns resumes ordered by ascending id.
func (r *PGRepo) List(ctx context.Context, skip, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT ` + resumeColumns + ` FROM resumes ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Delete removes a resume and returns its final state.
func (r *PGRepo) Delete(ctx context.Context, id int64) (Resume, error) {
	query := `DELETE FROM resumes WHERE id = $1 RETURNING ` + resumeColumns

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanResume(row scanner) (Resume, error) {
	var resume Resume
	var (
		educationHistory    sql.NullString
		workExperience      sql.NullString
		projects            sql.NullString
		technicalSkills     sql.NullString
		softSkills          sql.NullString
		otherSkills         sql.NullString
		languages           sql.NullString
		certifications      sql.NullString
		awardsHonors        sql.NullString
		publications        sql.NullString
		referencesAvailable sql.NullBool
		rawText             sql.NullString
		llmAnalysis         sql.NullString
	)

	err := row.Scan(
		&resume.ID,
		&resume.FileName,
		&resume.UploadedAt,
		&resume.Name,
		&resume.Email,
		&resume.Phone,
		&resume.LinkedinURL,
		&resume.GithubURL,
		&resume.PortfolioURL,
		&resume.Address,
		&resume.Summary,
		&educationHistory,
		&workExperience,
		&projects,
		&technicalSkills,
		&softSkills,
		&otherSkills,
		&languages,
		&certifications,
		&awardsHonors,
		&publications,
		&referencesAvailable,
		&rawText,
		&llmAnalysis,
	)
	if err != nil {
		return Resume{}, err
	}

	unmarshalJSONB(educationHistory, &resume.EducationHistory)
	unmarshalJSONB(workExperience, &resume.WorkExperience)
	unmarshalJSONB(projects, &resume.Projects)
	unmarshalJSONB(technicalSkills, &resume.TechnicalSkills)
	unmarshalJSONB(softSkills, &resume.SoftSkills)
	unmarshalJSONB(otherSkills, &resume.OtherSkills)
	unmarshalJSONB(languages, &resume.Languages)
	unmarshalJSONB(certifications, &resume.Certifications)
	unmarshalJSONB(awardsHonors, &resume.AwardsHonors)
	unmarshalJSONB(publications, &resume.Publications)
	if referencesAvailable.Valid {
		resume.ReferencesAvailable = &referencesAvailable.Bool
	}
	if rawText.Valid {
		resume.RawText = &rawText.String
	}
	if llmAnalysis.Valid {
		var analysis AnalysisResult
		if err := json.Unmarshal([]byte(llmAnalysis.String), &analysis); err == nil {
			analysis.normalize()
			resume.Analysis = &analysis
		}
	}
	resume.Profile.normalize()
	return resume, nil
}

func unmarshalJSONB[T any](src sql.NullString, dst *T) {
	if !src.Valid {
		return
	}
	var v T
	if err := json.Unmarshal([]byte(src.String), &v); err != nil {
		return
	}
	*dst = v
}

type profileJSONB struct {
	educationHistory []byte
	workExperience   []byte
	projects         []byte
	technicalSkills  []byte
	softSkills       []byte
	otherSkills      []byte
	languages        []byte
	certifications   []byte
	awardsHonors     []byte
	publications     []byte
	analysis         []byte
}

func marshalProfileLists(p Profile, a AnalysisResult) (profileJSONB, error) {
	var out profileJSONB
	var err error
	marshal := func(dst *[]byte, v any) {
		if err != nil {
			return
		}
		var data []byte
		if data, err = json.Marshal(v); err != nil {
			err = fmt.Errorf("marshal resume field: %w", err)
			return
		}
		*dst = data
	}
	marshal(&out.educationHistory, p.EducationHistory)
	marshal(&out.workExperience, p.WorkExperience)
	marshal(&out.projects, p.Projects)
	marshal(&out.technicalSkills, p.TechnicalSkills)
	marshal(&out.softSkills, p.SoftSkills)
	marshal(&out.otherSkills, p.OtherSkills)
	marshal(&out.languages, p.Languages)
	marshal(&out.certifications, p.Certifications)
	marshal(&out.awardsHonors, p.AwardsHonors)
	marshal(&out.publications, p.Publications)
	marshal(&out.analysis, a)
	return out, err
}

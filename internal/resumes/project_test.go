package resumes

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

const sampleExtracted = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"linkedin_url": null,
	"work_experience": [
		{"job_title": "Engineer", "company": "Acme", "responsibilities": ["Built things"]}
	],
	"technical_skills": ["Go", "Postgres"],
	"languages": [
		{"language": "English", "proficiency": "Native"},
		{"language": "", "proficiency": "orphaned"}
	],
	"certifications": [{"name": "", "issuing_organization": "nobody"}],
	"references_available": true,
	"hallucinated_field": {"nested": true}
}`

const sampleAnalysis = `{
	"resume_rating": {"overall_score": 8.5, "comments": "Solid."},
	"strength_areas": ["Clear impact statements"],
	"action_verb_check": {"current_usage_rating": "Good", "suggestions": []},
	"upskill_suggestions": [
		{"skill_name": "Kubernetes", "reasoning": "Common in infra roles."}
	],
	"made_up_key": 42
}`

func TestProjectBuildsUpdate(t *testing.T) {
	upd, err := Project(json.RawMessage(sampleExtracted), json.RawMessage(sampleAnalysis), "raw text", "jane.pdf")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if upd.FileName != "jane.pdf" || upd.RawText != "raw text" {
		t.Fatalf("unexpected metadata: %+v", upd)
	}
	if upd.Profile.Name == nil || *upd.Profile.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %v", upd.Profile.Name)
	}
	if upd.Profile.LinkedinURL != nil {
		t.Fatalf("expected null linkedin_url, got %v", *upd.Profile.LinkedinURL)
	}
	if len(upd.Profile.WorkExperience) != 1 || *upd.Profile.WorkExperience[0].Company != "Acme" {
		t.Fatalf("unexpected work experience: %+v", upd.Profile.WorkExperience)
	}
	if upd.Profile.ReferencesAvailable == nil || !*upd.Profile.ReferencesAvailable {
		t.Fatalf("expected references_available true")
	}

	if upd.Analysis.ResumeRating == nil || *upd.Analysis.ResumeRating.OverallScore != 8.5 {
		t.Fatalf("unexpected rating: %+v", upd.Analysis.ResumeRating)
	}
	if len(upd.Analysis.UpskillSuggestions) != 1 {
		t.Fatalf("expected one upskill suggestion")
	}
}

func TestProjectDropsEntriesMissingRequiredNames(t *testing.T) {
	upd, err := Project(json.RawMessage(sampleExtracted), json.RawMessage(`{}`), "raw", "f.txt")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if len(upd.Profile.Languages) != 1 || upd.Profile.Languages[0].Language != "English" {
		t.Fatalf("expected only English to survive, got %+v", upd.Profile.Languages)
	}
	if len(upd.Profile.Certifications) != 0 {
		t.Fatalf("expected unnamed certification dropped, got %+v", upd.Profile.Certifications)
	}
}

func TestProjectListsNeverNil(t *testing.T) {
	upd, err := Project(json.RawMessage(`{}`), json.RawMessage(`{}`), "raw", "f.txt")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	p := upd.Profile
	for name, l := range map[string]int{
		"education_history": len(p.EducationHistory),
		"work_experience":   len(p.WorkExperience),
		"projects":          len(p.Projects),
		"technical_skills":  len(p.TechnicalSkills),
		"soft_skills":       len(p.SoftSkills),
		"other_skills":      len(p.OtherSkills),
		"languages":         len(p.Languages),
		"certifications":    len(p.Certifications),
		"awards_honors":     len(p.AwardsHonors),
		"publications":      len(p.Publications),
	} {
		if l != 0 {
			t.Fatalf("expected %s empty, got %d entries", name, l)
		}
	}
	if p.EducationHistory == nil || p.TechnicalSkills == nil || p.Languages == nil {
		t.Fatalf("expected empty slices, not nil")
	}
	if upd.Analysis.StrengthAreas == nil || upd.Analysis.UpskillSuggestions == nil {
		t.Fatalf("expected empty analysis slices, not nil")
	}
}

func TestProjectTypeMismatchKeepsDefault(t *testing.T) {
	extracted := `{"name": 12345, "email": "jane@example.com", "technical_skills": "not a list"}`
	upd, err := Project(json.RawMessage(extracted), json.RawMessage(`{}`), "raw", "f.txt")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if upd.Profile.Name != nil {
		t.Fatalf("expected mismatched name to stay nil, got %v", *upd.Profile.Name)
	}
	if upd.Profile.Email == nil || *upd.Profile.Email != "jane@example.com" {
		t.Fatalf("expected valid sibling field to survive")
	}
	if len(upd.Profile.TechnicalSkills) != 0 {
		t.Fatalf("expected mismatched list to stay empty")
	}
}

func TestProjectRejectsNonObjectDocuments(t *testing.T) {
	if _, err := Project(json.RawMessage(`[1,2]`), json.RawMessage(`{}`), "raw", "f.txt"); !errors.Is(err, ErrBadShape) {
		t.Fatalf("expected ErrBadShape for extracted array, got %v", err)
	}
	if _, err := Project(json.RawMessage(`{}`), json.RawMessage(`"nope"`), "raw", "f.txt"); !errors.Is(err, ErrBadShape) {
		t.Fatalf("expected ErrBadShape for analysis string, got %v", err)
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	first, err := Project(json.RawMessage(sampleExtracted), json.RawMessage(sampleAnalysis), "raw", "f.txt")
	if err != nil {
		t.Fatalf("Project first: %v", err)
	}
	second, err := Project(json.RawMessage(sampleExtracted), json.RawMessage(sampleAnalysis), "raw", "f.txt")
	if err != nil {
		t.Fatalf("Project second: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical updates for identical inputs")
	}
}

package resumes

import (
	"encoding/json"
	"reflect"
)

// AnalysisResult is the structured feedback produced by the second LLM call.
// Like Profile it is decoded from untrusted model text: absent or
// type-mismatched fields resolve to their declared default, never to a
// decode error, as long as the top-level document is a JSON object.
type AnalysisResult struct {
	ResumeRating        *ResumeRating        `json:"resume_rating"`
	StrengthAreas       []string             `json:"strength_areas"`
	ImprovementAreas    *ImprovementAreas    `json:"improvement_areas"`
	ActionVerbCheck     *UsageCheck          `json:"action_verb_check"`
	QuantificationCheck *UsageCheck          `json:"quantification_check"`
	UpskillSuggestions  []UpskillSuggestion  `json:"upskill_suggestions"`
	CareerPathAlignment *CareerPathAlignment `json:"career_path_alignment"`
}

type ResumeRating struct {
	OverallScore *float64 `json:"overall_score"`
	Comments     *string  `json:"comments"`
}

type ImprovementAreas struct {
	ContentSuggestions            []string `json:"content_suggestions"`
	FormattingStyleSuggestions    []string `json:"formatting_style_suggestions"`
	MissingInformationSuggestions []string `json:"missing_information_suggestions"`
}

// UsageCheck covers the action-verb and quantification checks, which share
// one shape: a rating label plus suggestions.
type UsageCheck struct {
	CurrentUsageRating *string  `json:"current_usage_rating"`
	Suggestions        []string `json:"suggestions"`
}

type UpskillSuggestion struct {
	SkillName              *string  `json:"skill_name"`
	Reasoning              *string  `json:"reasoning"`
	SuggestedResources     []string `json:"suggested_resources"`
	RelevanceToCareerGoals *string  `json:"relevance_to_career_goals"`
}

type CareerPathAlignment struct {
	CurrentAlignmentAssessment           *string  `json:"current_alignment_assessment"`
	PotentialPaths                       []string `json:"potential_paths"`
	SuggestionsForStrengtheningAlignment []string `json:"suggestions_for_strengthening_alignment"`
}

func (a *AnalysisResult) normalize() {
	if a.StrengthAreas == nil {
		a.StrengthAreas = []string{}
	}
	if a.ImprovementAreas != nil {
		if a.ImprovementAreas.ContentSuggestions == nil {
			a.ImprovementAreas.ContentSuggestions = []string{}
		}
		if a.ImprovementAreas.FormattingStyleSuggestions == nil {
			a.ImprovementAreas.FormattingStyleSuggestions = []string{}
		}
		if a.ImprovementAreas.MissingInformationSuggestions == nil {
			a.ImprovementAreas.MissingInformationSuggestions = []string{}
		}
	}
	if a.ActionVerbCheck != nil && a.ActionVerbCheck.Suggestions == nil {
		a.ActionVerbCheck.Suggestions = []string{}
	}
	if a.QuantificationCheck != nil && a.QuantificationCheck.Suggestions == nil {
		a.QuantificationCheck.Suggestions = []string{}
	}
	if a.UpskillSuggestions == nil {
		a.UpskillSuggestions = []UpskillSuggestion{}
	}
	for i := range a.UpskillSuggestions {
		if a.UpskillSuggestions[i].SuggestedResources == nil {
			a.UpskillSuggestions[i].SuggestedResources = []string{}
		}
	}
	if a.CareerPathAlignment != nil {
		if a.CareerPathAlignment.PotentialPaths == nil {
			a.CareerPathAlignment.PotentialPaths = []string{}
		}
		if a.CareerPathAlignment.SuggestionsForStrengtheningAlignment == nil {
			a.CareerPathAlignment.SuggestionsForStrengtheningAlignment = []string{}
		}
	}
}

// decodeProfile coerces an untrusted JSON object into a Profile. Unknown
// keys are dropped and mismatched fields keep their defaults; only a
// non-object top level fails.
func decodeProfile(raw json.RawMessage) (Profile, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	fillFields(obj, map[string]any{
		"name":                 &p.Name,
		"email":                &p.Email,
		"phone":                &p.Phone,
		"linkedin_url":         &p.LinkedinURL,
		"github_url":           &p.GithubURL,
		"portfolio_url":        &p.PortfolioURL,
		"address":              &p.Address,
		"summary":              &p.Summary,
		"education_history":    &p.EducationHistory,
		"work_experience":      &p.WorkExperience,
		"projects":             &p.Projects,
		"technical_skills":     &p.TechnicalSkills,
		"soft_skills":          &p.SoftSkills,
		"other_skills":         &p.OtherSkills,
		"languages":            &p.Languages,
		"certifications":       &p.Certifications,
		"awards_honors":        &p.AwardsHonors,
		"publications":         &p.Publications,
		"references_available": &p.ReferencesAvailable,
	})
	p.normalize()
	return p, nil
}

// decodeAnalysis coerces an untrusted JSON object into an AnalysisResult
// under the same rules as decodeProfile.
func decodeAnalysis(raw json.RawMessage) (AnalysisResult, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return AnalysisResult{}, err
	}

	var a AnalysisResult
	fillFields(obj, map[string]any{
		"resume_rating":         &a.ResumeRating,
		"strength_areas":        &a.StrengthAreas,
		"improvement_areas":     &a.ImprovementAreas,
		"action_verb_check":     &a.ActionVerbCheck,
		"quantification_check":  &a.QuantificationCheck,
		"upskill_suggestions":   &a.UpskillSuggestions,
		"career_path_alignment": &a.CareerPathAlignment,
	})
	a.normalize()
	return a, nil
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, ErrBadShape
	}
	return obj, nil
}

// fillFields best-effort unmarshals each recognized key into its target.
// Decoding goes through a scratch value so a mismatch leaves the target at
// its declared default instead of a partially-written one.
func fillFields(obj map[string]json.RawMessage, targets map[string]any) {
	for key, target := range targets {
		rawVal, ok := obj[key]
		if !ok {
			continue
		}
		dst := reflect.ValueOf(target).Elem()
		scratch := reflect.New(dst.Type())
		if err := json.Unmarshal(rawVal, scratch.Interface()); err != nil {
			continue
		}
		dst.Set(scratch.Elem())
	}
}

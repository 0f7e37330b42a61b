package resumes

import "encoding/json"

// Update is the one-shot enrichment applied to a pending resume record once
// both LLM calls have succeeded.
type Update struct {
	FileName string
	RawText  string
	Profile  Profile
	Analysis AnalysisResult
}

// Project validates the two raw LLM documents and folds them into an Update.
// Both documents must be JSON objects; inside them, unknown keys are dropped
// and mismatched fields resolve to their declared defaults. Projection is a
// pure function of its inputs, so re-running it on the same documents yields
// the same Update.
func Project(extracted, analysis json.RawMessage, rawText, fileName string) (Update, error) {
	profile, err := decodeProfile(extracted)
	if err != nil {
		return Update{}, err
	}

	result, err := decodeAnalysis(analysis)
	if err != nil {
		return Update{}, err
	}

	return Update{
		FileName: fileName,
		RawText:  rawText,
		Profile:  profile,
		Analysis: result,
	}, nil
}

package resumes

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-insight/internal/extract"
	"resume-insight/internal/llm"
	"resume-insight/internal/shared/telemetry"
)

// Pipeline orchestrates the upload flow: stage the file to disk, extract
// text, create a pending record, run the two LLM calls, project their
// output, and apply the single enrichment update.
type Pipeline struct {
	Repo      Repo
	LLM       llm.Client
	UploadDir string
}

// Process runs the full pipeline for one uploaded file. Every failure is
// wrapped in a StageError naming the stage it happened in. The staged copy
// on disk is removed on every path, success or failure; a record created
// before an LLM failure is retained in its pending shape.
func (p *Pipeline) Process(ctx context.Context, fileName string, src io.Reader) (Resume, error) {
	stagedPath, err := p.stage(fileName, src)
	if err != nil {
		return Resume{}, stageFail(StageStaging, err)
	}
	defer func() {
		if err := os.Remove(stagedPath); err != nil {
			telemetry.Warn("upload cleanup failed", map[string]any{
				"path": stagedPath,
				"err":  err.Error(),
			})
		}
	}()

	rawText := extract.Text(stagedPath)
	if strings.TrimSpace(rawText) == "" {
		return Resume{}, stageFail(StageExtraction, ErrNoText)
	}

	pending, err := p.Repo.Create(ctx, fileName, rawText)
	if err != nil {
		return Resume{}, stageFail(StageDBCreate, err)
	}
	telemetry.Info("resume record created", map[string]any{
		"resume_id": pending.ID,
		"file_name": fileName,
	})

	extracted, err := extractProfile(ctx, p.LLM, rawText)
	if err != nil {
		return Resume{}, stageFail(StageLLMExtract, err)
	}

	analysis, err := analyzeProfile(ctx, p.LLM, extracted, rawText)
	if err != nil {
		return Resume{}, stageFail(StageLLMAnalyze, err)
	}

	upd, err := Project(extracted, analysis, rawText, fileName)
	if err != nil {
		return Resume{}, stageFail(StageValidation, err)
	}

	updated, err := p.Repo.Update(ctx, pending.ID, upd)
	if err != nil {
		return Resume{}, stageFail(StageDBUpdate, err)
	}
	telemetry.Info("resume processed", map[string]any{
		"resume_id": updated.ID,
		"file_name": fileName,
	})
	return updated, nil
}

// stage copies the upload to a uniquely named file under UploadDir so the
// extractors can work from a real path.
func (p *Pipeline) stage(fileName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(p.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	staged := filepath.Join(p.UploadDir, uuid.NewString()+"_"+filepath.Base(fileName))
	dst, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(staged)
		return "", fmt.Errorf("write staged file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("close staged file: %w", err)
	}
	return staged, nil
}

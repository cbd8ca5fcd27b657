package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

// ErrNoAnswers marks a submission with no answered question; it is rejected
// locally without a network call.
var ErrNoAnswers = errors.New("provide at least one answer")

// ExamService is the client for the exam backend.
type ExamService interface {
	Exams(ctx context.Context) ([]models.ExamSummary, error)
	Create(ctx context.Context, draft models.ExamDraft) (models.ExamSummary, error)
	Start(ctx context.Context, examID string) (models.ExamSummary, error)
	Get(ctx context.Context, examID string) (models.ExamDetail, error)

	// Submit sends answers keyed by 1-based question position (q1, q2, ...),
	// independent of question identifiers. answers[i] belongs to question i+1.
	Submit(ctx context.Context, examID string, answers []string) error
}

type examService struct {
	api *api.Client
}

func NewExamService(client *api.Client) ExamService {
	return &examService{api: client}
}

type submitExamRequest struct {
	Answers map[string]string `json:"answers"`
}

func (e *examService) Exams(ctx context.Context) ([]models.ExamSummary, error) {
	var exams []models.ExamSummary
	if err := e.api.Get(ctx, "/exam/exams", &exams); err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

func (e *examService) Create(ctx context.Context, draft models.ExamDraft) (models.ExamSummary, error) {
	var created models.ExamSummary
	if err := e.api.Post(ctx, "/exam/exams", draft, &created); err != nil {
		return models.ExamSummary{}, fmt.Errorf("create exam: %w", err)
	}
	return created, nil
}

func (e *examService) Start(ctx context.Context, examID string) (models.ExamSummary, error) {
	var started models.ExamSummary
	if err := e.api.Post(ctx, "/exam/exams/"+examID+"/start", nil, &started); err != nil {
		return models.ExamSummary{}, fmt.Errorf("start exam: %w", err)
	}
	return started, nil
}

func (e *examService) Get(ctx context.Context, examID string) (models.ExamDetail, error) {
	var detail models.ExamDetail
	if err := e.api.Get(ctx, "/exam/exams/"+examID, &detail); err != nil {
		return models.ExamDetail{}, fmt.Errorf("load exam: %w", err)
	}
	return detail, nil
}

func (e *examService) Submit(ctx context.Context, examID string, answers []string) error {
	payload := make(map[string]string, len(answers))
	any := false
	for i, a := range answers {
		payload[fmt.Sprintf("q%d", i+1)] = a
		if strings.TrimSpace(a) != "" {
			any = true
		}
	}
	if !any {
		return ErrNoAnswers
	}

	if err := e.api.Post(ctx, "/exam/exams/"+examID+"/submit", submitExamRequest{Answers: payload}, nil); err != nil {
		return fmt.Errorf("submit exam: %w", err)
	}
	return nil
}

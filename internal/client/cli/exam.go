package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/smartuniversity/campusctl/internal/client/models"
	"github.com/smartuniversity/campusctl/internal/client/services"
)

// Exams lists the tenant's exams.
func (a *App) Exams(ctx context.Context) error {
	exams, err := a.exam.Exams(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load exams:", err)
		return err
	}
	if len(exams) == 0 {
		fmt.Fprintln(a.out, "No exams.")
		return nil
	}
	for _, e := range exams {
		fmt.Fprintf(a.out, "%-12s %-30s %-10s starts %s\n", e.ID, e.Title, e.State, e.StartTime)
	}
	return nil
}

// AddExam creates an exam with its question list. Only teachers and admins
// may do this.
func (a *App) AddExam(ctx context.Context) error {
	if !a.session.Current().Role.CanManageExams() {
		fmt.Fprintln(a.out, "Only teachers and admins can create exams.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Exam title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	startTime, err := getSimpleText(a.reader, "Start time (RFC3339, e.g. 2026-09-01T10:00:00Z)", a.out)
	if err != nil {
		return err
	}

	lines, err := GetLines(a.reader, "Enter questions, one per line", a.out)
	if err != nil {
		return err
	}
	questions := make([]models.QuestionDraft, 0, len(lines))
	for _, text := range lines {
		questions = append(questions, models.QuestionDraft{Text: text})
	}

	created, err := a.exam.Create(ctx, models.ExamDraft{
		Title:       title,
		Description: description,
		StartTime:   startTime,
		Questions:   questions,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not create exam:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created exam %s\n", created.ID)
	return nil
}

// StartExam opens an exam for submissions: args are <examId>. Only teachers
// and admins may do this.
func (a *App) StartExam(ctx context.Context, args []string) error {
	if !a.session.Current().Role.CanManageExams() {
		fmt.Fprintln(a.out, "Only teachers and admins can start exams.")
		return nil
	}

	started, err := a.exam.Start(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Could not start exam:", err)
		return err
	}
	fmt.Fprintf(a.out, "Exam %s is now %s\n", started.ID, started.State)
	return nil
}

// ShowExam prints an exam with its questions in position order: args are
// <examId>.
func (a *App) ShowExam(ctx context.Context, args []string) error {
	detail, err := a.exam.Get(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Could not load exam:", err)
		return err
	}

	fmt.Fprintf(a.out, "%s (%s), starts %s\n", detail.Title, detail.State, detail.StartTime)
	for i, q := range orderedQuestions(detail.Questions) {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, q.Text)
	}
	return nil
}

// SubmitExam walks the exam's questions in order, prompting for an answer to
// each, and submits the collected answers: args are <examId>. Questions may
// be left blank, but a submission with no answers at all is rejected locally.
func (a *App) SubmitExam(ctx context.Context, args []string) error {
	examID := args[0]
	detail, err := a.exam.Get(ctx, examID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load exam:", err)
		return err
	}

	questions := orderedQuestions(detail.Questions)
	answers := make([]string, 0, len(questions))
	for i, q := range questions {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%d. %s", i+1, q.Text), a.out)
		if err != nil {
			return err
		}
		answers = append(answers, answer)
	}

	if err := a.exam.Submit(ctx, examID, answers); err != nil {
		if errors.Is(err, services.ErrNoAnswers) {
			fmt.Fprintln(a.out, "Nothing to submit: answer at least one question.")
			return nil
		}
		fmt.Fprintln(a.out, "Could not submit:", err)
		return err
	}

	fmt.Fprintln(a.out, "Answers submitted.")
	return nil
}

// orderedQuestions returns the questions sorted by their server-side
// position.
func orderedQuestions(questions []models.Question) []models.Question {
	ordered := make([]models.Question, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})
	return ordered
}

// Package lessonplan drafts lesson plans for an event and turns them into a
// print-ready HTML page.
package lessonplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
)

// ErrExport wraps every generation, rendering or printing failure.
var ErrExport = errors.New(config.ErrExport)

// Summary is what a generator needs to know about an event.
type Summary struct {
	EventID   string
	EventName string
	Grade     calendar.GradeBand
}

// SummaryOf extracts the generator input from a record.
func SummaryOf(ev calendar.EventRecord, grade calendar.GradeBand) Summary {
	return Summary{EventID: ev.ID, EventName: ev.EventName, Grade: grade}
}

// Activity is one timed step of the lesson.
type Activity struct {
	Time    string
	Content string
}

// Plan is a generated lesson plan.
type Plan struct {
	EventID    string
	Title      string
	Grade      string
	Objectives []string
	Activities []Activity
	Questions  []string
	CreatedAt  time.Time
}

// GradeLabel names the school years targeted by a grade band. Only the lower
// band maps to the first three years.
func GradeLabel(g calendar.GradeBand) string {
	if g == calendar.GradeLower {
		return config.PlanGradeLower
	}
	return config.PlanGradeUpper
}

// Draft fills the standard 40-minute plan for s.
func Draft(s Summary, createdAt time.Time) *Plan {
	return &Plan{
		EventID: s.EventID,
		Title:   fmt.Sprintf(config.PlanTitleFormat, s.EventName),
		Grade:   GradeLabel(s.Grade),
		Objectives: []string{
			fmt.Sprintf(config.PlanObjectiveOrigin, s.EventName),
			fmt.Sprintf(config.PlanObjectiveValue, s.EventName),
		},
		Activities: []Activity{
			{Time: config.PlanActivityIntroT, Content: config.PlanActivityIntro},
			{Time: config.PlanActivityMainT, Content: config.PlanActivityMain},
			{Time: config.PlanActivityWrapT, Content: config.PlanActivityWrap},
		},
		Questions: []string{
			fmt.Sprintf(config.PlanQuestionWhat, s.EventName),
			config.PlanQuestionRemember,
		},
		CreatedAt: createdAt,
	}
}

// Generator produces a plan, possibly from a remote service.
type Generator interface {
	Generate(ctx context.Context, s Summary) (*Plan, error)
}

// SimulatedGenerator stands in for a remote drafting service. It waits Delay
// and always succeeds unless the context ends first.
type SimulatedGenerator struct {
	Delay time.Duration
	Clock calendar.Clock
}

// NewSimulatedGenerator uses config.DefaultPlanDelay and the system clock.
func NewSimulatedGenerator() *SimulatedGenerator {
	return &SimulatedGenerator{Delay: config.DefaultPlanDelay, Clock: calendar.RealClock{}}
}

func (g *SimulatedGenerator) Generate(ctx context.Context, s Summary) (*Plan, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", config.ErrPlanGenerate, ctx.Err())
		}
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPlanGenerate, err)
	}

	var clock calendar.Clock = calendar.RealClock{}
	if g.Clock != nil {
		clock = g.Clock
	}
	return Draft(s, clock.Now()), nil
}

// Task is a running generation that can be cancelled.
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	plan   *Plan
	err    error
}

// Start runs g in the background.
func Start(ctx context.Context, g Generator, s Summary) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompPlan),
		slog.String(config.LogKeyEventID, s.EventID),
	)
	log.Info(config.MsgPlanRequested, slog.String(config.LogKeyGrade, string(s.Grade)))

	go func() {
		defer close(t.done)
		defer cancel()
		start := time.Now()
		t.plan, t.err = g.Generate(ctx, s)
		switch {
		case errors.Is(t.err, context.Canceled):
			log.Info(config.MsgPlanCancelled)
		case t.err == nil:
			log.Info(config.MsgPlanReady, slog.Int64(config.LogKeyDuration, time.Since(start).Milliseconds()))
		}
	}()
	return t
}

// Done is closed once the plan is ready or generation failed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task ends.
func (t *Task) Wait() (*Plan, error) {
	<-t.done
	return t.plan, t.err
}

// Cancel stops a pending generation. It is safe to call more than once.
func (t *Task) Cancel() {
	t.cancel()
}

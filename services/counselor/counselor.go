package counselor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/Anirudh646/dfghjkddfghj/services/llm"
	"github.com/Anirudh646/dfghjkddfghj/utils"
	"go.uber.org/zap"
)

const (
	MaxQueryLength    = 500
	MinInterestLength = 3
	MaxInterestLength = 100
)

var (
	ErrEmptyQuery      = errors.New("query cannot be empty")
	ErrQueryTooLong    = fmt.Errorf("query must be at most %d characters", MaxQueryLength)
	ErrInterestLength  = fmt.Errorf("interest must be between %d and %d characters", MinInterestLength, MaxInterestLength)
	ErrCourseNotFound  = errors.New("course not found")
	ErrGeneration      = errors.New("generation failed")
	errMalformedOutput = errors.New("model returned malformed output")
)

// Counselor answers single queries. It holds no per-user state.
type Counselor struct {
	kb      *knowledge.Base
	gen     llm.Generator
	timeout time.Duration
}

func New(kb *knowledge.Base, gen llm.Generator, timeout time.Duration) *Counselor {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Counselor{kb: kb, gen: gen, timeout: timeout}
}

// Knowledge exposes the catalog the counselor answers from
func (c *Counselor) Knowledge() *knowledge.Base {
	return c.kb
}

// ValidateQuery trims the query and enforces the length bounds
func ValidateQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return "", ErrQueryTooLong
	}
	return q, nil
}

// Ask answers one query. Menu intents never reach the model.
func (c *Counselor) Ask(ctx context.Context, query string, lang Language) (*Answer, error) {
	q, err := ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	intent := Classify(q, c.kb)
	if local := c.localAnswer(intent, lang); local != nil {
		return local, nil
	}

	text, err := c.generate(ctx, "ask", llm.Request{
		System:      counselorSystem,
		Prompt:      counselorPrompt(q, AssembleContext(q, c.kb), lang),
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, err
	}

	t := textsFor(lang)
	return &Answer{
		Kind: KindText,
		Text: text,
		FollowUp: &Answer{
			Kind:       KindText,
			Text:       t.FollowUp,
			Affordance: AffordanceOptionMenu,
			Options:    optionsFrom(t.FollowUpOptions),
		},
	}, nil
}

// Greeting is the opening message of every chat
func (c *Counselor) Greeting(lang Language) *Answer {
	return &Answer{Kind: KindGreeting, Text: textsFor(lang).Greeting}
}

func (c *Counselor) localAnswer(intent Intent, lang Language) *Answer {
	t := textsFor(lang)
	switch intent {
	case IntentGreeting:
		return c.Greeting(lang)
	case IntentCourseMenu:
		return &Answer{
			Kind:       KindCourseMenu,
			Text:       t.CourseMenu,
			Affordance: AffordanceCourseSelector,
			Options:    optionsFrom(c.kb.CourseTitles()),
		}
	case IntentFeeMenu:
		return &Answer{
			Kind:       KindFeeMenu,
			Text:       t.FeeQuestion,
			Affordance: AffordanceFeeTypeSelector,
			Options:    optionsFrom(t.FeeOptions),
		}
	case IntentFaqMenu:
		return &Answer{
			Kind:       KindFaqMenu,
			Text:       t.FaqIntro,
			Affordance: AffordanceFaqSelector,
			Options:    optionsFrom(c.kb.FaqQuestions()),
		}
	case IntentPlacementMenu:
		opts := make([]Option, 0, len(c.kb.Courses))
		for _, course := range c.kb.Courses {
			opts = append(opts, Option{Label: course.Title, Value: PlacementQuery(course.Title)})
		}
		return &Answer{
			Kind:       KindPlacementMenu,
			Text:       t.PlacementIntro,
			Affordance: AffordancePlacementSelector,
			Options:    opts,
		}
	}
	return nil
}

// PlacementQuery is what selecting a course in the placement menu submits
func PlacementQuery(title string) string {
	return "Tell me more about placements for " + title
}

// GetStarted writes a one-paragraph guide for a stated interest
func (c *Counselor) GetStarted(ctx context.Context, interest string, lang Language) (string, error) {
	interest = strings.TrimSpace(interest)
	if n := utf8.RuneCountInString(interest); n < MinInterestLength || n > MaxInterestLength {
		return "", ErrInterestLength
	}

	lines := make([]string, 0, len(c.kb.Courses))
	for _, course := range c.kb.Courses {
		lines = append(lines, fmt.Sprintf("- %s (%s): %s", course.Title, course.Department, course.Description))
	}

	return c.generate(ctx, "get_started", llm.Request{
		System:      counselorSystem,
		Prompt:      getStartedPrompt(interest, strings.Join(lines, "\n"), lang),
		Temperature: 0.7,
		MaxTokens:   512,
	})
}

// CourseSummary is the structured overview of one course
type CourseSummary struct {
	CourseID      string   `json:"course_id"`
	Title         string   `json:"title"`
	CoreContent   []string `json:"core_content"`
	Prerequisites []string `json:"prerequisites"`
	CareerPaths   []string `json:"career_paths"`
}

// SummarizeCourse asks the model for a structured summary of a catalog course
func (c *Counselor) SummarizeCourse(ctx context.Context, courseID string, lang Language) (*CourseSummary, error) {
	course, ok := c.kb.FindCourse(courseID)
	if !ok {
		return nil, ErrCourseNotFound
	}

	text, err := c.generate(ctx, "course_summary", llm.Request{
		System: counselorSystem,
		Prompt: courseSummaryPrompt(RenderCourse(course), lang),
		JSON:   true,
		Schema: &llm.Schema{
			Name:        "course_summary",
			Description: "Structured overview of a university course",
			Definition:  courseSummarySchema,
		},
		Temperature: 0.2,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, err
	}

	summary := &CourseSummary{}
	if err := utils.ExtractJSONTo(text, summary); err != nil {
		zap.S().Warnw("course summary parse failed", "course", course.ID, "error", err)
		return nil, ErrGeneration
	}
	if len(summary.CoreContent) == 0 && len(summary.CareerPaths) == 0 {
		zap.S().Warnw("course summary empty", "course", course.ID, "error", errMalformedOutput)
		return nil, ErrGeneration
	}
	summary.CourseID = course.ID
	summary.Title = course.Title
	return summary, nil
}

// generate applies the configured deadline and hides provider errors behind ErrGeneration
func (c *Counselor) generate(ctx context.Context, op string, req llm.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.gen.Generate(ctx, req)
	if err != nil {
		zap.S().Errorw("generation failed",
			"op", op,
			"provider", c.gen.Name(),
			"elapsed", time.Since(start),
			"error", err,
		)
		return "", ErrGeneration
	}

	zap.S().Debugw("generation complete", "op", op, "provider", c.gen.Name(), "elapsed", time.Since(start))
	return text, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/digitalocean"
	"github.com/Anirudh646/dfghjkddfghj/services/llm"
	"github.com/Anirudh646/dfghjkddfghj/utils"
	"github.com/Anirudh646/dfghjkddfghj/utils/validation"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEssayNotFound    = errors.New("essay not found")
	ErrEssayEmpty       = errors.New("essay has no content to review")
	ErrReviewFailed     = errors.New("essay review failed")
	sentenceTerminators = regexp.MustCompile(`[.!?]+`)
	paragraphBreak      = regexp.MustCompile(`\n\s*\n`)
)

const defaultEssayLimit = 650

// FileStorage keeps uploaded essay sources
type FileStorage interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}

// EssayService handles essay drafts, reviews and imports
type EssayService struct {
	db      *gorm.DB
	gen     llm.Generator
	timeout time.Duration
	storage FileStorage
	pdf     *PDFExtractor
	now     func() time.Time
}

// NewEssayService creates an essay service. storage may be nil, which disables PDF source upload.
func NewEssayService(db *gorm.DB, gen llm.Generator, timeout time.Duration, storage FileStorage) *EssayService {
	return &EssayService{
		db:      db,
		gen:     gen,
		timeout: timeout,
		storage: storage,
		pdf:     NewPDFExtractor(),
		now:     time.Now,
	}
}

// EssayInput is the body for creating an essay
type EssayInput struct {
	Title     string            `json:"title" validate:"required,notblank,max=200"`
	Type      model.EssayType   `json:"type" validate:"required,oneof=personal_statement supplemental scholarship common_app"`
	Status    model.EssayStatus `json:"status" validate:"omitempty,oneof=draft submitted under_review reviewed revised"`
	College   string            `json:"college" validate:"max=200"`
	Prompt    string            `json:"prompt" validate:"max=2000"`
	Content   string            `json:"content" validate:"max=50000"`
	WordLimit int               `json:"word_limit" validate:"omitempty,gte=50,lte=5000"`
}

// EssayUpdate is a partial update; nil fields are left alone
type EssayUpdate struct {
	Title     *string            `json:"title" validate:"omitempty,notblank,max=200"`
	Type      *model.EssayType   `json:"type" validate:"omitempty,oneof=personal_statement supplemental scholarship common_app"`
	Status    *model.EssayStatus `json:"status" validate:"omitempty,oneof=draft submitted under_review reviewed revised"`
	College   *string            `json:"college" validate:"omitempty,max=200"`
	Prompt    *string            `json:"prompt" validate:"omitempty,max=2000"`
	Content   *string            `json:"content" validate:"omitempty,max=50000"`
	WordLimit *int               `json:"word_limit" validate:"omitempty,gte=50,lte=5000"`
}

// EssayFilter narrows List
type EssayFilter struct {
	Status string
	Type   string
	Search string
}

// CountWords counts whitespace-separated words
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func (s *EssayService) Create(ctx context.Context, userID uint, in EssayInput) (*model.Essay, error) {
	status := in.Status
	if status == "" {
		status = model.EssayDraft
	}
	limit := in.WordLimit
	if limit == 0 {
		limit = defaultEssayLimit
	}

	content := validation.SanitizeString(in.Content)
	essay := &model.Essay{
		UserID:    userID,
		Title:     validation.SanitizeString(in.Title),
		Type:      in.Type,
		Status:    status,
		College:   validation.SanitizeString(in.College),
		Prompt:    validation.SanitizeString(in.Prompt),
		Content:   content,
		WordCount: CountWords(content),
		WordLimit: limit,
	}
	if err := s.db.WithContext(ctx).Create(essay).Error; err != nil {
		return nil, fmt.Errorf("failed to create essay: %w", err)
	}
	return essay, nil
}

func (s *EssayService) List(ctx context.Context, userID uint, f EssayFilter) ([]model.Essay, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(college) LIKE ?", like, like)
	}

	var essays []model.Essay
	if err := query.Order("updated_at DESC").Find(&essays).Error; err != nil {
		return nil, fmt.Errorf("failed to list essays: %w", err)
	}
	return essays, nil
}

func (s *EssayService) Get(ctx context.Context, userID, id uint) (*model.Essay, error) {
	var essay model.Essay
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&essay).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEssayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get essay: %w", err)
	}
	return &essay, nil
}

// Update applies a partial update. Editing the content of a reviewed essay
// moves it to revised.
func (s *EssayService) Update(ctx context.Context, userID, id uint, in EssayUpdate) (*model.Essay, error) {
	essay, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		essay.Title = validation.SanitizeString(*in.Title)
	}
	if in.Type != nil {
		essay.Type = *in.Type
	}
	if in.College != nil {
		essay.College = validation.SanitizeString(*in.College)
	}
	if in.Prompt != nil {
		essay.Prompt = validation.SanitizeString(*in.Prompt)
	}
	if in.WordLimit != nil {
		essay.WordLimit = *in.WordLimit
	}
	if in.Content != nil && validation.SanitizeString(*in.Content) != essay.Content {
		essay.Content = validation.SanitizeString(*in.Content)
		essay.WordCount = CountWords(essay.Content)
		if essay.Status == model.EssayReviewed {
			essay.Status = model.EssayRevised
		}
	}
	if in.Status != nil {
		essay.Status = *in.Status
	}

	if err := s.db.WithContext(ctx).Save(essay).Error; err != nil {
		return nil, fmt.Errorf("failed to update essay: %w", err)
	}
	return essay, nil
}

// Delete removes the essay and, best effort, its uploaded source
func (s *EssayService) Delete(ctx context.Context, userID, id uint) error {
	essay, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(essay).Error; err != nil {
		return fmt.Errorf("failed to delete essay: %w", err)
	}

	if s.storage != nil && essay.SourceURL != "" {
		if key, ok := s.storage.KeyFromURL(essay.SourceURL); ok {
			if err := s.storage.DeleteFile(ctx, key); err != nil {
				zap.S().Warnw("essay source not deleted", "essay_id", id, "key", key, "error", err)
			}
		}
	}
	return nil
}

const essayReviewSystem = "You are an experienced college admissions essay reviewer. You give honest, specific and constructive feedback."

func essayReviewPrompt(e *model.Essay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Essay type: %s\n", e.Type)
	if e.College != "" {
		fmt.Fprintf(&b, "College: %s\n", e.College)
	}
	if e.Prompt != "" {
		fmt.Fprintf(&b, "Essay prompt: %s\n", e.Prompt)
	}
	fmt.Fprintf(&b, "Word count: %d (limit %d)\n\n", e.WordCount, e.WordLimit)
	b.WriteString("Essay:\n---\n")
	b.WriteString(e.Content)
	b.WriteString("\n---\n\n")
	b.WriteString("Review the essay and return a JSON object with these keys:\n")
	b.WriteString(`- "overall_score": number from 0 to 10` + "\n")
	b.WriteString(`- "feedback": object with short comments for "structure", "content", "voice" and "prompt_fit"` + "\n")
	b.WriteString(`- "strengths", "weaknesses", "suggestions", "grammar_issues": arrays of short strings` + "\n")
	b.WriteString("Return only the JSON object.")
	return b.String()
}

// Review asks the model for structured feedback and stores it on the essay
func (s *EssayService) Review(ctx context.Context, userID, id uint) (*model.Essay, *model.EssayFeedback, error) {
	essay, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(essay.Content) == "" {
		return nil, nil, ErrEssayEmpty
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.Generate(genCtx, llm.Request{
		System:      essayReviewSystem,
		Prompt:      essayReviewPrompt(essay),
		JSON:        true,
		Temperature: 0.3,
		MaxTokens:   1500,
	})
	if err != nil {
		zap.S().Errorw("essay review generation failed", "essay_id", id, "provider", s.gen.Name(), "error", err)
		return nil, nil, ErrReviewFailed
	}

	var feedback model.EssayFeedback
	if err := utils.ExtractJSONTo(text, &feedback); err != nil {
		zap.S().Warnw("essay review unparseable", "essay_id", id, "error", err)
		return nil, nil, ErrReviewFailed
	}
	feedback.OverallScore = clampScore(feedback.OverallScore)

	raw, err := json.Marshal(feedback)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal feedback: %w", err)
	}

	now := s.now()
	score := feedback.OverallScore
	essay.Feedback = datatypes.JSON(raw)
	essay.OverallScore = &score
	essay.Status = model.EssayReviewed
	essay.ReviewedAt = &now

	if err := s.db.WithContext(ctx).Save(essay).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to save review: %w", err)
	}
	return essay, &feedback, nil
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(10, v))
	return math.Round(v*10) / 10
}

// EssayAnalytics is computed locally from the essay text
type EssayAnalytics struct {
	WordCount            int     `json:"word_count"`
	WordLimit            int     `json:"word_limit"`
	RemainingWords       int     `json:"remaining_words"`
	OverLimit            bool    `json:"over_limit"`
	CharacterCount       int     `json:"character_count"`
	SentenceCount        int     `json:"sentence_count"`
	ParagraphCount       int     `json:"paragraph_count"`
	AvgSentenceLength    float64 `json:"avg_sentence_length"`
	ReadingTimeMinutes   int     `json:"reading_time_minutes"`
	UniqueWordPercentage float64 `json:"unique_word_percentage"`
}

// AnalyzeText computes the analytics for text against a word limit
func AnalyzeText(text string, limit int) EssayAnalytics {
	words := strings.Fields(text)
	a := EssayAnalytics{
		WordCount:      len(words),
		WordLimit:      limit,
		CharacterCount: len([]rune(text)),
	}
	a.OverLimit = limit > 0 && a.WordCount > limit
	if limit > 0 && !a.OverLimit {
		a.RemainingWords = limit - a.WordCount
	}
	if a.WordCount == 0 {
		return a
	}

	for _, s := range sentenceTerminators.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			a.SentenceCount++
		}
	}
	for _, p := range paragraphBreak.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(p) != "" {
			a.ParagraphCount++
		}
	}
	if a.SentenceCount > 0 {
		a.AvgSentenceLength = math.Round(float64(a.WordCount)/float64(a.SentenceCount)*10) / 10
	}
	a.ReadingTimeMinutes = int(math.Ceil(float64(a.WordCount) / 200))

	unique := map[string]struct{}{}
	for _, w := range words {
		unique[strings.ToLower(strings.Trim(w, `.,!?;:"'()`))] = struct{}{}
	}
	a.UniqueWordPercentage = math.Round(float64(len(unique))/float64(a.WordCount)*1000) / 10
	return a
}

func (s *EssayService) Analytics(ctx context.Context, userID, id uint) (*EssayAnalytics, error) {
	essay, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	a := AnalyzeText(essay.Content, essay.WordLimit)
	return &a, nil
}

// EssayStats summarises all of a student's essays
type EssayStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByType       map[string]int `json:"by_type"`
	TotalWords   int            `json:"total_words"`
	Reviewed     int            `json:"reviewed"`
	AverageScore *float64       `json:"average_score,omitempty"`
}

func (s *EssayService) Stats(ctx context.Context, userID uint) (*EssayStats, error) {
	var essays []model.Essay
	err := s.db.WithContext(ctx).
		Select("id", "status", "type", "word_count", "overall_score").
		Where("user_id = ?", userID).
		Find(&essays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load essay stats: %w", err)
	}

	stats := &EssayStats{ByStatus: map[string]int{}, ByType: map[string]int{}}
	var scoreSum float64
	for _, e := range essays {
		stats.Total++
		stats.ByStatus[string(e.Status)]++
		stats.ByType[string(e.Type)]++
		stats.TotalWords += e.WordCount
		if e.OverallScore != nil {
			stats.Reviewed++
			scoreSum += *e.OverallScore
		}
	}
	if stats.Reviewed > 0 {
		avg := math.Round(scoreSum/float64(stats.Reviewed)*10) / 10
		stats.AverageScore = &avg
	}
	return stats, nil
}

// ImportRequest is an uploaded PDF plus the metadata for the new essay
type ImportRequest struct {
	Filename string
	Data     []byte
	Title    string
	Type     model.EssayType
	College  string
}

// Import extracts the text of a PDF into a new draft essay. The PDF itself is
// kept in object storage when storage is configured.
func (s *EssayService) Import(ctx context.Context, userID uint, req ImportRequest) (*model.Essay, error) {
	text, err := s.pdf.ExtractText(req.Data)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = strings.TrimSuffix(req.Filename, ".pdf")
	}
	essayType := req.Type
	if essayType == "" {
		essayType = model.EssayPersonalStatement
	}

	essay, err := s.Create(ctx, userID, EssayInput{
		Title:   title,
		Type:    essayType,
		College: req.College,
		Content: text,
	})
	if err != nil {
		return nil, err
	}

	if s.storage == nil {
		return essay, nil
	}
	if err := s.storeSource(ctx, essay, req.Filename, req.Data); err != nil {
		return nil, err
	}
	return essay, nil
}

// storeSource uploads the original file under the owner's prefix and records
// its URL. A failed upload leaves the essay without a source.
func (s *EssayService) storeSource(ctx context.Context, essay *model.Essay, filename string, data []byte) error {
	key := digitalocean.GenerateKey(fmt.Sprintf("essays/%d", essay.UserID), filename)
	url, err := s.storage.UploadBytes(ctx, key, data, digitalocean.GetContentType(filename))
	if err != nil {
		zap.S().Warnw("essay source upload failed", "essay_id", essay.ID, "error", err)
		return nil
	}
	essay.SourceURL = url
	if err := s.db.WithContext(ctx).Model(essay).Update("source_url", url).Error; err != nil {
		return fmt.Errorf("failed to save source url: %w", err)
	}
	return nil
}

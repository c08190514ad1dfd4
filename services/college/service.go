package college

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCollegeNotFound = errors.New("college not found")

// Selectivity bands by acceptance rate
const (
	MostSelective = "most"      // < 10%
	Selective     = "selective" // 10-25%
	Moderate      = "moderate"  // 25-50%
	LessSelective = "less"      // >= 50%
)

// Size bands by enrollment
const (
	SizeSmall  = "small"  // < 5k
	SizeMedium = "medium" // 5k-15k
	SizeLarge  = "large"  // >= 15k
)

// Sort keys
const (
	SortMatch      = "match_score"
	SortRanking    = "ranking"
	SortAcceptance = "acceptance"
	SortTuition    = "tuition"
)

// Query is the explorer's filter and sort state. Empty fields match everything.
type Query struct {
	Search      string
	Type        string
	Selectivity string
	Size        string
	Sort        string
}

// Service filters the catalog and keeps saved colleges in Postgres
type Service struct {
	db       *gorm.DB
	colleges []College
}

func NewService(db *gorm.DB, colleges []College) *Service {
	return &Service{db: db, colleges: colleges}
}

func inSelectivity(rate float64, band string) bool {
	switch band {
	case MostSelective:
		return rate < 10
	case Selective:
		return rate >= 10 && rate < 25
	case Moderate:
		return rate >= 25 && rate < 50
	case LessSelective:
		return rate >= 50
	}
	return true
}

func inSize(enrollment int, band string) bool {
	switch band {
	case SizeSmall:
		return enrollment < 5000
	case SizeMedium:
		return enrollment >= 5000 && enrollment < 15000
	case SizeLarge:
		return enrollment >= 15000
	}
	return true
}

// List returns the colleges matching q, sorted by q.Sort (match score by default)
func (s *Service) List(q Query) []College {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]College, 0, len(s.colleges))
	for _, c := range s.colleges {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if q.Type != "" && !strings.EqualFold(q.Type, "all") && !strings.EqualFold(c.Type, q.Type) {
			continue
		}
		if !inSelectivity(c.AcceptanceRate, q.Selectivity) || !inSize(c.Enrollment, q.Size) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case SortRanking:
			return a.Ranking < b.Ranking
		case SortAcceptance:
			return a.AcceptanceRate < b.AcceptanceRate
		case SortTuition:
			return a.TuitionOutState < b.TuitionOutState
		default:
			return a.MatchScore > b.MatchScore
		}
	})
	return out
}

func (s *Service) Get(id int) (*College, error) {
	for i := range s.colleges {
		if s.colleges[i].ID == id {
			c := s.colleges[i]
			return &c, nil
		}
	}
	return nil, ErrCollegeNotFound
}

// Save marks a college as saved; saving twice is a no-op
func (s *Service) Save(ctx context.Context, userID uint, collegeID int) error {
	if _, err := s.Get(collegeID); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SavedCollege{UserID: userID, CollegeID: collegeID}).Error
	if err != nil {
		return fmt.Errorf("failed to save college: %w", err)
	}
	return nil
}

// Unsave removes a saved college; unsaving one that is not saved is a no-op
func (s *Service) Unsave(ctx context.Context, userID uint, collegeID int) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND college_id = ?", userID, collegeID).
		Delete(&model.SavedCollege{}).Error
	if err != nil {
		return fmt.Errorf("failed to unsave college: %w", err)
	}
	return nil
}

// SavedIDs returns the ids a student has saved, oldest first
func (s *Service) SavedIDs(ctx context.Context, userID uint) ([]int, error) {
	var ids []int
	err := s.db.WithContext(ctx).Model(&model.SavedCollege{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("college_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load saved colleges: %w", err)
	}
	return ids, nil
}

// Saved returns the saved colleges themselves
func (s *Service) Saved(ctx context.Context, userID uint) ([]College, error) {
	ids, err := s.SavedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]College, 0, len(ids))
	for _, id := range ids {
		if c, err := s.Get(id); err == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

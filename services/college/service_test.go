package college

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func names(cs []College) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestList_DefaultSortIsMatchScore(t *testing.T) {
	svc := NewService(nil, Catalog())
	got := svc.List(Query{})
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].MatchScore, got[i].MatchScore)
	}
	assert.Equal(t, "Stanford University", got[0].Name)
}

func TestList_Filters(t *testing.T) {
	svc := NewService(nil, Catalog())

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"search is case insensitive", Query{Search: "  UNIVERSITY of"}, []string{"University of California, Berkeley", "University of Michigan - Ann Arbor"}},
		{"public only", Query{Type: "public"}, []string{"University of California, Berkeley", "University of Michigan - Ann Arbor"}},
		{"all types", Query{Type: "all", Search: "mellon"}, []string{"Carnegie Mellon University"}},
		{"most selective", Query{Selectivity: MostSelective}, []string{"Stanford University", "Massachusetts Institute of Technology"}},
		{"moderate has none", Query{Selectivity: Moderate}, []string{}},
		{"medium size", Query{Size: SizeMedium}, []string{"Massachusetts Institute of Technology", "Carnegie Mellon University"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(svc.List(tt.query)))
		})
	}
}

func TestList_Sorts(t *testing.T) {
	svc := NewService(nil, Catalog())

	byRank := svc.List(Query{Sort: SortRanking})
	assert.Equal(t, "Massachusetts Institute of Technology", byRank[0].Name)

	byAcceptance := svc.List(Query{Sort: SortAcceptance})
	assert.Equal(t, 4.3, byAcceptance[0].AcceptanceRate)
	assert.Equal(t, 23.0, byAcceptance[4].AcceptanceRate)

	byTuition := svc.List(Query{Sort: SortTuition})
	assert.Equal(t, "University of California, Berkeley", byTuition[0].Name)
	assert.Equal(t, "Carnegie Mellon University", byTuition[4].Name)
}

func TestGet(t *testing.T) {
	svc := NewService(nil, Catalog())
	c, err := svc.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "https://mit.edu", c.Website)

	_, err = svc.Get(99)
	assert.ErrorIs(t, err, ErrCollegeNotFound)
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestSave_IgnoresDuplicates(t *testing.T) {
	db, mock := newMockGorm(t)
	svc := NewService(db, Catalog())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "saved_colleges" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Save(context.Background(), 7, 2))
}

func TestSave_UnknownCollege(t *testing.T) {
	db, _ := newMockGorm(t)
	svc := NewService(db, Catalog())
	assert.ErrorIs(t, svc.Save(context.Background(), 7, 42), ErrCollegeNotFound)
}

func TestUnsave(t *testing.T) {
	db, mock := newMockGorm(t)
	svc := NewService(db, Catalog())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "saved_colleges" WHERE user_id = \$1 AND college_id = \$2`).
		WithArgs(7, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, svc.Unsave(context.Background(), 7, 2))
}

func TestSaved_SkipsRetiredIDs(t *testing.T) {
	db, mock := newMockGorm(t)
	svc := NewService(db, Catalog())

	mock.ExpectQuery(`SELECT "college_id" FROM "saved_colleges" WHERE user_id = \$1 ORDER BY created_at ASC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"college_id"}).AddRow(5).AddRow(99).AddRow(1))

	got, err := svc.Saved(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carnegie Mellon University", "Stanford University"}, names(got))
}

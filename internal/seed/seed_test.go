package seed

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:seed_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PersonalInfo{}, &models.SiteSettings{},
		&models.Education{}, &models.Experience{}, &models.Skill{},
		&models.Project{}, &models.Certificate{}, &models.ContactMessage{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func TestRunPopulatesAllSections(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db))

	count := func(m any) int64 {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		return n
	}
	require.EqualValues(t, 1, count(&models.PersonalInfo{}))
	require.EqualValues(t, 1, count(&models.SiteSettings{}))
	require.EqualValues(t, 2, count(&models.Education{}))
	require.EqualValues(t, 3, count(&models.Experience{}))
	require.EqualValues(t, 22, count(&models.Skill{}))
	require.EqualValues(t, 3, count(&models.Project{}))
	require.EqualValues(t, 3, count(&models.Certificate{}))
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var people, settings, skills int64
	require.NoError(t, db.Model(&models.PersonalInfo{}).Count(&people).Error)
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&settings).Error)
	require.NoError(t, db.Model(&models.Skill{}).Count(&skills).Error)
	require.EqualValues(t, 1, people)
	require.EqualValues(t, 1, settings)
	require.EqualValues(t, 22, skills)
}

func TestSeededProjectSlugsAreValid(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db))

	var projects []models.Project
	require.NoError(t, db.Find(&projects).Error)
	for _, p := range projects {
		require.NoError(t, models.Validate(&p), "project %q", p.Slug)
	}
}

package repository

import (
	"ai_survey_backend/internal/model"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "survey.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSurveyResponseRepository_Insert(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Table(model.DefaultCollection).AutoMigrate(&model.SurveyResponse{}))
	repo := NewSurveyResponseRepository(db)

	record := model.SubmissionRecord{
		Department:         "기획행사실",
		PrimaryRole:        "CES 서울관 PM",
		DataWorkHours:      "3~5시간",
		HelpfulAIFeatures:  []string{model.HelpfulAIFeatureOptions[3], "기타: 화상회의 요약"},
		ChatGPTExperience:  model.ChatGPTExperienceOptions[0],
		ChatGPTLimitations: "최신 정보 부족",
		WillingnessToLearn: "매우 그렇다",
	}
	require.NoError(t, repo.Insert(context.Background(), model.DefaultCollection, record))

	var rows []model.SurveyResponse
	require.NoError(t, db.Table(model.DefaultCollection).Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Len(t, row.ID, 36)
	assert.False(t, row.CreatedAt.IsZero())
	assert.Equal(t, "기획행사실", row.Department)
	assert.Equal(t, "CES 서울관 PM", row.PrimaryRole)
	assert.Equal(t, "3~5시간", row.DataWorkHours)
	assert.Equal(t, []string{model.HelpfulAIFeatureOptions[3], "기타: 화상회의 요약"}, []string(row.HelpfulAIFeatures))
	assert.Equal(t, "최신 정보 부족", row.ChatGPTLimitations)
	assert.Equal(t, "", row.Concerns)
}

func TestSurveyResponseRepository_InsertEmptyFeatures(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Table(model.DefaultCollection).AutoMigrate(&model.SurveyResponse{}))
	repo := NewSurveyResponseRepository(db)

	require.NoError(t, repo.Insert(context.Background(), model.DefaultCollection, model.SubmissionRecord{}))

	var row model.SurveyResponse
	require.NoError(t, db.Table(model.DefaultCollection).First(&row).Error)
	assert.Equal(t, []string{}, []string(row.HelpfulAIFeatures))
}

func TestSurveyResponseRepository_InsertIntoNamedCollection(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Table("survey_responses_2025").AutoMigrate(&model.SurveyResponse{}))
	repo := NewSurveyResponseRepository(db)

	require.NoError(t, repo.Insert(context.Background(), "survey_responses_2025", model.SubmissionRecord{Department: "HM실 (경영지원)"}))

	var total int64
	require.NoError(t, db.Table("survey_responses_2025").Count(&total).Error)
	assert.EqualValues(t, 1, total)
	assert.False(t, db.Migrator().HasTable(model.DefaultCollection))
}

func TestSurveyResponseRepository_InsertMissingTable(t *testing.T) {
	repo := NewSurveyResponseRepository(newTestDB(t))

	err := repo.Insert(context.Background(), "no_such_table", model.SubmissionRecord{Department: "기획행사실"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_table")
}

package repository

import (
	"ai_survey_backend/internal/model"
	"ai_survey_backend/pkg/tracing"
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
)

type SurveyResponseRepository struct {
	DB *gorm.DB
}

func NewSurveyResponseRepository(db *gorm.DB) *SurveyResponseRepository {
	return &SurveyResponseRepository{DB: db}
}

// Insert 向 collection 表写入一条问卷回答
func (r *SurveyResponseRepository) Insert(ctx context.Context, collection string, record model.SubmissionRecord) error {
	ctx, span := tracing.Tracer().Start(ctx, "survey.insert")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.collection", collection),
		attribute.Int("survey.feature_count", len(record.HelpfulAIFeatures)),
	)

	row := model.NewSurveyResponse(record)
	if err := r.DB.WithContext(ctx).Table(collection).Create(row).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.String("survey.response_id", row.ID))
	return nil
}

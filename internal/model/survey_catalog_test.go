package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHelpfulAIFeature(t *testing.T) {
	for _, option := range HelpfulAIFeatureOptions {
		assert.True(t, IsHelpfulAIFeature(option), option)
	}
	assert.False(t, IsHelpfulAIFeature(""))
	assert.False(t, IsHelpfulAIFeature(OtherFeaturePrefix+"화상회의 요약"))
}

func TestAnswerSet_ScalarCoversScalarFields(t *testing.T) {
	var a AnswerSet
	for _, field := range ScalarFields() {
		assert.NotNil(t, a.Scalar(field), field)
	}
	assert.Nil(t, a.Scalar(FieldHelpfulAIFeatures))
	assert.Nil(t, a.Scalar(FieldOtherFeatureEnabled))
}

package model

import (
	"slices"

	"gorm.io/datatypes"
)

// AnswerSet 一次访问期间正在填写的答案
// swagger:model
type AnswerSet struct {
	Department           string   `json:"department"`
	PrimaryRole          string   `json:"primary_role"`
	RepetitiveTasks      string   `json:"repetitive_tasks"`
	DataWorkHours        string   `json:"data_work_hours"`
	DataWorkExamples     string   `json:"data_work_examples"`
	DocumentWorkExamples string   `json:"document_work_examples"`
	InfoSearchDifficulty string   `json:"info_search_difficulty"`
	AIAssistantTasks     string   `json:"ai_assistant_tasks"`
	HelpfulAIFeatures    []string `json:"helpful_ai_features"`
	OtherFeatureEnabled  bool     `json:"other_feature_enabled"`
	OtherFeatureText     string   `json:"other_feature_text"`
	ChatGPTExperience    string   `json:"chatgpt_experience"`
	ChatGPTLimitations   string   `json:"chatgpt_limitations"`
	WillingnessToLearn   string   `json:"willingness_to_learn"`
	Concerns             string   `json:"concerns"`
}

// Clone 深拷贝，功能列表不与原值共享底层数组
func (a AnswerSet) Clone() AnswerSet {
	a.HelpfulAIFeatures = slices.Clone(a.HelpfulAIFeatures)
	if a.HelpfulAIFeatures == nil {
		a.HelpfulAIFeatures = []string{}
	}
	return a
}

// Scalar 返回单值答案字段的指针，非单值或未知字段返回 nil
func (a *AnswerSet) Scalar(field Field) *string {
	switch field {
	case FieldDepartment:
		return &a.Department
	case FieldPrimaryRole:
		return &a.PrimaryRole
	case FieldRepetitiveTasks:
		return &a.RepetitiveTasks
	case FieldDataWorkHours:
		return &a.DataWorkHours
	case FieldDataWorkExamples:
		return &a.DataWorkExamples
	case FieldDocumentWorkExamples:
		return &a.DocumentWorkExamples
	case FieldInfoSearchDifficulty:
		return &a.InfoSearchDifficulty
	case FieldAIAssistantTasks:
		return &a.AIAssistantTasks
	case FieldOtherFeatureText:
		return &a.OtherFeatureText
	case FieldChatGPTExperience:
		return &a.ChatGPTExperience
	case FieldChatGPTLimitations:
		return &a.ChatGPTLimitations
	case FieldWillingnessToLearn:
		return &a.WillingnessToLearn
	case FieldConcerns:
		return &a.Concerns
	}
	return nil
}

// SubmissionRecord 提交时的答案快照，字段名与数据表列名一致
// swagger:model
type SubmissionRecord struct {
	Department           string   `json:"department"`
	PrimaryRole          string   `json:"primary_role"`
	RepetitiveTasks      string   `json:"repetitive_tasks"`
	DataWorkHours        string   `json:"data_work_hours"`
	DataWorkExamples     string   `json:"data_work_examples"`
	DocumentWorkExamples string   `json:"document_work_examples"`
	InfoSearchDifficulty string   `json:"info_search_difficulty"`
	AIAssistantTasks     string   `json:"ai_assistant_tasks"`
	HelpfulAIFeatures    []string `json:"helpful_ai_features"`
	ChatGPTExperience    string   `json:"chatgpt_experience"`
	ChatGPTLimitations   string   `json:"chatgpt_limitations"`
	WillingnessToLearn   string   `json:"willingness_to_learn"`
	Concerns             string   `json:"concerns"`
}

// SurveyResponse survey_responses 表中的一行
// swagger:model
type SurveyResponse struct {
	UUIDBase
	Department           string                      `gorm:"column:department;type:varchar(64)" json:"department"`
	PrimaryRole          string                      `gorm:"column:primary_role;type:text" json:"primary_role"`
	RepetitiveTasks      string                      `gorm:"column:repetitive_tasks;type:text" json:"repetitive_tasks"`
	DataWorkHours        string                      `gorm:"column:data_work_hours;type:varchar(32)" json:"data_work_hours"`
	DataWorkExamples     string                      `gorm:"column:data_work_examples;type:text" json:"data_work_examples"`
	DocumentWorkExamples string                      `gorm:"column:document_work_examples;type:text" json:"document_work_examples"`
	InfoSearchDifficulty string                      `gorm:"column:info_search_difficulty;type:text" json:"info_search_difficulty"`
	AIAssistantTasks     string                      `gorm:"column:ai_assistant_tasks;type:text" json:"ai_assistant_tasks"`
	HelpfulAIFeatures    datatypes.JSONSlice[string] `gorm:"column:helpful_ai_features" json:"helpful_ai_features"`
	ChatGPTExperience    string                      `gorm:"column:chatgpt_experience;type:varchar(64)" json:"chatgpt_experience"`
	ChatGPTLimitations   string                      `gorm:"column:chatgpt_limitations;type:text" json:"chatgpt_limitations"`
	WillingnessToLearn   string                      `gorm:"column:willingness_to_learn;type:varchar(32)" json:"willingness_to_learn"`
	Concerns             string                      `gorm:"column:concerns;type:text" json:"concerns"`
}

func (SurveyResponse) TableName() string {
	return DefaultCollection
}

func NewSurveyResponse(r SubmissionRecord) *SurveyResponse {
	features := slices.Clone(r.HelpfulAIFeatures)
	if features == nil {
		features = []string{}
	}
	return &SurveyResponse{
		Department:           r.Department,
		PrimaryRole:          r.PrimaryRole,
		RepetitiveTasks:      r.RepetitiveTasks,
		DataWorkHours:        r.DataWorkHours,
		DataWorkExamples:     r.DataWorkExamples,
		DocumentWorkExamples: r.DocumentWorkExamples,
		InfoSearchDifficulty: r.InfoSearchDifficulty,
		AIAssistantTasks:     r.AIAssistantTasks,
		HelpfulAIFeatures:    datatypes.JSONSlice[string](features),
		ChatGPTExperience:    r.ChatGPTExperience,
		ChatGPTLimitations:   r.ChatGPTLimitations,
		WillingnessToLearn:   r.WillingnessToLearn,
		Concerns:             r.Concerns,
	}
}

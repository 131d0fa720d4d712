package service

import (
	"ai_survey_backend/internal/model"
	"ai_survey_backend/internal/util"
	"ai_survey_backend/pkg/logger"
	"ai_survey_backend/pkg/monitoring"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PersistenceClient 问卷回答的存储端，只需要写入一条记录
type PersistenceClient interface {
	Insert(ctx context.Context, collection string, record model.SubmissionRecord) error
}

type FormPhase string

const (
	PhaseEditing   FormPhase = "editing"
	PhaseSubmitted FormPhase = "submitted"
)

// FormView 渲染用的表单快照
// swagger:model
type FormView struct {
	ID              string          `json:"id"`
	Phase           FormPhase       `json:"phase"`
	Submitting      bool            `json:"submitting"`
	Message         string          `json:"message,omitempty"`
	Failed          bool            `json:"failed"`
	ShowLimitations bool            `json:"showLimitations"`
	Answers         model.AnswerSet `json:"answers"`
}

// SurveyForm 一次访问对应的问卷表单。
// 提交后进入终态，不再接受任何修改。
type SurveyForm struct {
	ID string

	client     PersistenceClient
	collection string

	mu         sync.Mutex
	answers    model.AnswerSet
	phase      FormPhase
	submitting bool
	message    string
	failed     bool
	lastActive time.Time
}

func NewSurveyForm(id string, client PersistenceClient, collection string) *SurveyForm {
	return &SurveyForm{
		ID:         id,
		client:     client,
		collection: collection,
		answers:    model.AnswerSet{HelpfulAIFeatures: []string{}},
		phase:      PhaseEditing,
		lastActive: time.Now(),
	}
}

// UpdateField 覆盖一个单值答案，任何字符串（包括空串）都接受
func (f *SurveyForm) UpdateField(field model.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseSubmitted {
		return util.ErrFormClosed
	}
	target := f.answers.Scalar(field)
	if target == nil {
		return fmt.Errorf("%w: %q", util.ErrUnknownField, field)
	}
	*target = value
	f.lastActive = time.Now()
	return nil
}

// ToggleFeature 选中时追加到末尾（已存在则不变），取消时移除
func (f *SurveyForm) ToggleFeature(option string, selected bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseSubmitted {
		return util.ErrFormClosed
	}
	if !model.IsHelpfulAIFeature(option) {
		return fmt.Errorf("%w: %q", util.ErrUnknownFeature, option)
	}

	present := slices.Contains(f.answers.HelpfulAIFeatures, option)
	switch {
	case selected && !present:
		f.answers.HelpfulAIFeatures = append(f.answers.HelpfulAIFeatures, option)
	case !selected && present:
		f.answers.HelpfulAIFeatures = slices.DeleteFunc(f.answers.HelpfulAIFeatures, func(s string) bool {
			return s == option
		})
	}
	f.lastActive = time.Now()
	return nil
}

// ToggleOtherGate 关闭"其他"选项时无条件清空已填写的文字
func (f *SurveyForm) ToggleOtherGate(enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseSubmitted {
		return util.ErrFormClosed
	}
	f.answers.OtherFeatureEnabled = enabled
	if !enabled {
		f.answers.OtherFeatureText = ""
	}
	f.lastActive = time.Now()
	return nil
}

// LimitationsVisible ChatGPT 使用局限的追问是否显示，每次按当前答案计算
func (f *SurveyForm) LimitationsVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return limitationsVisible(&f.answers)
}

func limitationsVisible(a *model.AnswerSet) bool {
	return strings.Contains(a.ChatGPTExperience, model.WorkKeyword)
}

// FinalFeatures 提交时的功能列表："其他"开启且有内容时在末尾追加一项
func FinalFeatures(a *model.AnswerSet) []string {
	features := slices.Clone(a.HelpfulAIFeatures)
	if features == nil {
		features = []string{}
	}
	if a.OtherFeatureEnabled && a.OtherFeatureText != "" {
		features = append(features, model.OtherFeaturePrefix+a.OtherFeatureText)
	}
	return features
}

// BuildRecord 由答案生成提交快照，隐藏的追问不随记录提交
func BuildRecord(a *model.AnswerSet) model.SubmissionRecord {
	limitations := ""
	if limitationsVisible(a) {
		limitations = a.ChatGPTLimitations
	}
	return model.SubmissionRecord{
		Department:           a.Department,
		PrimaryRole:          a.PrimaryRole,
		RepetitiveTasks:      a.RepetitiveTasks,
		DataWorkHours:        a.DataWorkHours,
		DataWorkExamples:     a.DataWorkExamples,
		DocumentWorkExamples: a.DocumentWorkExamples,
		InfoSearchDifficulty: a.InfoSearchDifficulty,
		AIAssistantTasks:     a.AIAssistantTasks,
		HelpfulAIFeatures:    FinalFeatures(a),
		ChatGPTExperience:    a.ChatGPTExperience,
		ChatGPTLimitations:   limitations,
		WillingnessToLearn:   a.WillingnessToLearn,
		Concerns:             a.Concerns,
	}
}

// Record 按当前答案预览将要提交的记录
func (f *SurveyForm) Record() model.SubmissionRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return BuildRecord(&f.answers)
}

func (f *SurveyForm) View() FormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewLocked()
}

func (f *SurveyForm) viewLocked() FormView {
	return FormView{
		ID:              f.ID,
		Phase:           f.phase,
		Submitting:      f.submitting,
		Message:         f.message,
		Failed:          f.failed,
		ShowLimitations: limitationsVisible(&f.answers),
		Answers:         f.answers.Clone(),
	}
}

// Submit 提交问卷。已在提交中返回 ErrSubmissionInFlight，已提交返回 ErrFormClosed，
// 两种情况都不会再调用存储端。写库失败不作为错误返回，而是体现在终态视图的消息里。
// 写库不随请求取消，也没有超时和重试。
func (f *SurveyForm) Submit(ctx context.Context) (FormView, error) {
	f.mu.Lock()
	if f.phase == PhaseSubmitted {
		view := f.viewLocked()
		f.mu.Unlock()
		return view, util.ErrFormClosed
	}
	if f.submitting {
		view := f.viewLocked()
		f.mu.Unlock()
		return view, util.ErrSubmissionInFlight
	}
	f.submitting = true
	f.message = ""
	record := BuildRecord(&f.answers)
	f.lastActive = time.Now()
	f.mu.Unlock()

	start := time.Now()
	err := f.client.Insert(context.WithoutCancel(ctx), f.collection, record)
	elapsed := time.Since(start)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	f.phase = PhaseSubmitted
	f.lastActive = time.Now()
	if err != nil {
		f.failed = true
		f.message = fmt.Sprintf(model.ErrorMessageTemplate, err.Error())
		monitoring.ObserveSubmission(util.OutcomeError, elapsed)
		logger.Log.Error("Survey submission failed",
			zap.String("form_id", f.ID),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
	} else {
		f.message = model.ThankYouMessage
		monitoring.ObserveSubmission(util.OutcomeSuccess, elapsed)
		logger.Log.Info("Survey submitted",
			zap.String("form_id", f.ID),
			zap.String("department", record.Department),
			zap.Int("features", len(record.HelpfulAIFeatures)),
			zap.Duration("elapsed", elapsed),
		)
	}
	return f.viewLocked(), nil
}

// idle 返回空闲时长；提交中的表单不算空闲
func (f *SurveyForm) idle(now time.Time) (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return 0, false
	}
	return now.Sub(f.lastActive), true
}

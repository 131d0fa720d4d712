package controller

import (
	"ai_survey_backend/internal/model"
	"ai_survey_backend/internal/service"
	"ai_survey_backend/internal/util"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const surveyTemplate = "survey.html"

// PageController 服务端渲染的问卷页面，提交时复用与 JSON 接口相同的表单操作
type PageController struct {
	sessions *service.SurveySessionService
}

func NewPageController(sessions *service.SurveySessionService) *PageController {
	return &PageController{sessions: sessions}
}

type surveyPage struct {
	Title       string
	Subtitle    string
	WorkKeyword string
	Parts       []model.QuestionPart
	View        service.FormView
}

func (c *PageController) render(ctx *gin.Context, status int, view service.FormView) {
	ctx.HTML(status, surveyTemplate, surveyPage{
		Title:       model.SurveyTitle,
		Subtitle:    model.SurveySubtitle,
		WorkKeyword: model.WorkKeyword,
		Parts:       model.SurveyParts(),
		View:        view,
	})
}

// ShowForm 每次页面加载都开一份新的空白表单
func (c *PageController) ShowForm(ctx *gin.Context) {
	form := c.sessions.Open()
	c.render(ctx, http.StatusOK, form.View())
}

// SubmitForm 将页面提交的答案逐项写入表单后提交
func (c *PageController) SubmitForm(ctx *gin.Context) {
	form, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := applyPostedAnswers(ctx, form); err != nil {
		if errors.Is(err, util.ErrFormClosed) {
			c.render(ctx, http.StatusConflict, form.View())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	view, err := form.Submit(ctx.Request.Context())
	if err != nil {
		c.render(ctx, http.StatusConflict, view)
		return
	}
	c.render(ctx, http.StatusOK, view)
}

func applyPostedAnswers(ctx *gin.Context, form *service.SurveyForm) error {
	for _, field := range model.ScalarFields() {
		if err := form.UpdateField(field, ctx.PostForm(string(field))); err != nil {
			return err
		}
	}

	selected := orderedFeatures(
		ctx.PostFormArray(string(model.FieldHelpfulAIFeatures)),
		ctx.PostForm(model.FeatureOrderField),
	)
	for _, option := range selected {
		if !model.IsHelpfulAIFeature(option) {
			continue
		}
		if err := form.ToggleFeature(option, true); err != nil {
			return err
		}
	}
	for _, option := range model.HelpfulAIFeatureOptions {
		if slices.Contains(selected, option) {
			continue
		}
		if err := form.ToggleFeature(option, false); err != nil {
			return err
		}
	}

	// 先写文字再处理开关，未勾选时文字会被清空
	return form.ToggleOtherGate(ctx.PostForm(string(model.FieldOtherFeatureEnabled)) != "")
}

// orderedFeatures 按页面记录的勾选顺序排列已勾选项；没有记录的（如脚本未运行）按提交顺序排在后面
func orderedFeatures(checked []string, order string) []string {
	ordered := make([]string, 0, len(checked))
	for _, option := range strings.Split(order, model.FeatureOrderSeparator) {
		if slices.Contains(checked, option) && !slices.Contains(ordered, option) {
			ordered = append(ordered, option)
		}
	}
	for _, option := range checked {
		if !slices.Contains(ordered, option) {
			ordered = append(ordered, option)
		}
	}
	return ordered
}

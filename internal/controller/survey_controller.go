package controller

import (
	"ai_survey_backend/internal/model"
	"ai_survey_backend/internal/service"
	"ai_survey_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	sessions *service.SurveySessionService
}

func NewSurveyController(sessions *service.SurveySessionService) *SurveyController {
	return &SurveyController{sessions: sessions}
}

type UpdateFieldRequest struct {
	Value string `json:"value"`
}

type ToggleFeatureRequest struct {
	Option   string `json:"option" binding:"required"`
	Selected bool   `json:"selected"`
}

type ToggleOtherRequest struct {
	Enabled bool `json:"enabled"`
}

// respondFormError 把表单错误映射为 HTTP 状态码
func respondFormError(ctx *gin.Context, form *service.SurveyForm, err error) {
	switch {
	case errors.Is(err, util.ErrFormNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrFormClosed), errors.Is(err, util.ErrSubmissionInFlight):
		var data interface{}
		if form != nil {
			data = form.View()
		}
		util.Conflict(ctx, err.Error(), data)
	case errors.Is(err, util.ErrUnknownField), errors.Is(err, util.ErrUnknownFeature):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func (c *SurveyController) form(ctx *gin.Context) (*service.SurveyForm, bool) {
	form, err := c.sessions.Get(ctx.Param("id"))
	if err != nil {
		respondFormError(ctx, nil, err)
		return nil, false
	}
	return form, true
}

// GetQuestions godoc
// @Summary 获取问卷题目
// @Tags 问卷
// @Produce json
// @Success 200 {object} util.Response{data=[]model.QuestionPart}
// @Router /survey/questions [get]
func (c *SurveyController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"title":    model.SurveyTitle,
		"subtitle": model.SurveySubtitle,
		"parts":    model.SurveyParts(),
	})
}

// OpenForm godoc
// @Summary 开始填写问卷
// @Description 每次页面加载新开一份空白表单
// @Tags 问卷
// @Produce json
// @Success 201 {object} util.Response{data=service.FormView}
// @Router /survey/forms [post]
func (c *SurveyController) OpenForm(ctx *gin.Context) {
	form := c.sessions.Open()
	util.Created(ctx, form.View())
}

// GetForm godoc
// @Summary 获取表单当前状态
// @Tags 问卷
// @Produce json
// @Param id path string true "表单ID"
// @Success 200 {object} util.Response{data=service.FormView}
// @Router /survey/forms/{id} [get]
func (c *SurveyController) GetForm(ctx *gin.Context) {
	form, ok := c.form(ctx)
	if !ok {
		return
	}
	util.Success(ctx, form.View())
}

// PreviewRecord godoc
// @Summary 预览提交时将写入的记录
// @Tags 问卷
// @Produce json
// @Param id path string true "表单ID"
// @Success 200 {object} util.Response{data=model.SubmissionRecord}
// @Router /survey/forms/{id}/record [get]
func (c *SurveyController) PreviewRecord(ctx *gin.Context) {
	form, ok := c.form(ctx)
	if !ok {
		return
	}
	util.Success(ctx, form.Record())
}

// UpdateField godoc
// @Summary 修改一个答案
// @Tags 问卷
// @Accept json
// @Produce json
// @Param id path string true "表单ID"
// @Param field path string true "字段名"
// @Param body body UpdateFieldRequest true "答案"
// @Success 200 {object} util.Response{data=service.FormView}
// @Router /survey/forms/{id}/fields/{field} [put]
func (c *SurveyController) UpdateField(ctx *gin.Context) {
	form, ok := c.form(ctx)
	if !ok {
		return
	}

	var req UpdateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := form.UpdateField(model.Field(ctx.Param("field")), req.Value); err != nil {
		respondFormError(ctx, form, err)
		return
	}
	util.Success(ctx, form.View())
}

// ToggleFeature godoc
// @Summary 勾选或取消一个 AI 功能
// @Tags 问卷
// @Accept json
// @Produce json
// @Param id path string true "表单ID"
// @Param body body ToggleFeatureRequest true "功能选项"
// @Success 200 {object} util.Response{data=service.FormView}
// @Router /survey/forms/{id}/features [put]
func (c *SurveyController) ToggleFeature(ctx *gin.Context) {
	form, ok := c.form(ctx)
	if !ok {
		return
	}

	var req ToggleFeatureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := form.ToggleFeature(req.Option, req.Selected); err != nil {
		respondFormError(ctx, form, err)
		return
	}
	util.Success(ctx, form.View())
}

// ToggleOther godoc
// @Summary 开关"其他"功能
// @Description 关闭时清空已填写的其他功能描述
// @Tags 问卷
// @Accept json
// @Produce json
// @Param id path string true "表单ID"
// @Param body body ToggleOtherRequest true "开关"
// @Success 200 {object} util.Response{data=service.FormView}
// @Router /survey/forms/{id}/other [put]
func (c *SurveyController) ToggleOther(ctx *gin.Context) {
	form, ok := c.form(ctx)
	if !ok {
		return
	}

	var req ToggleOtherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := form.ToggleOtherGate(req.Enabled); err != nil {
		respondFormError(ctx, form, err)
		return
	}
	util.Success(ctx, form.View())
}

// Submit godoc
// @Summary 提交问卷
// @Description 写库成功或失败都进入终态视图；提交中或已提交时返回 409
// @Tags 问卷
// @Produce json
// @Param id path string true "表单ID"
// @Success 200 {object} util.Response{data=service.FormView}
// @Failure 409 {object} util.Response{data=service.FormView}
// @Router /survey/forms/{id}/submit [post]
func (c *SurveyController) Submit(ctx *gin.Context) {
	form, ok := c.form(ctx)
	if !ok {
		return
	}

	view, err := form.Submit(ctx.Request.Context())
	if err != nil {
		util.Conflict(ctx, err.Error(), view)
		return
	}
	util.Success(ctx, view)
}

package controller

import (
	"ai_survey_backend/internal/config"
	"ai_survey_backend/internal/model"
	"ai_survey_backend/internal/service"
	"ai_survey_backend/internal/web"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	mu      sync.Mutex
	records []model.SubmissionRecord
	err     error
}

func (c *recordingClient) Insert(_ context.Context, _ string, record model.SubmissionRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, record)
	return c.err
}

func (c *recordingClient) Records() []model.SubmissionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.SubmissionRecord(nil), c.records...)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, client service.PersistenceClient) (*gin.Engine, *service.SurveySessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := service.NewSurveySessionService(client, config.SurveyConfig{
		Collection:        model.DefaultCollection,
		SessionTTLMinutes: 30,
	})

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	survey := NewSurveyController(sessions)
	page := NewPageController(sessions)

	r.GET("/", page.ShowForm)
	r.POST("/survey/:id", page.SubmitForm)
	api := r.Group("/api/survey")
	api.GET("/questions", survey.GetQuestions)
	api.POST("/forms", survey.OpenForm)
	api.GET("/forms/:id", survey.GetForm)
	api.GET("/forms/:id/record", survey.PreviewRecord)
	api.PUT("/forms/:id/fields/:field", survey.UpdateField)
	api.PUT("/forms/:id/features", survey.ToggleFeature)
	api.PUT("/forms/:id/other", survey.ToggleOther)
	api.POST("/forms/:id/submit", survey.Submit)

	return r, sessions
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeView(t *testing.T, env envelope) service.FormView {
	t.Helper()
	var view service.FormView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	return view
}

func openForm(t *testing.T, r http.Handler) string {
	t.Helper()
	rec, env := doJSON(t, r, http.MethodPost, "/api/survey/forms", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decodeView(t, env)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, service.PhaseEditing, view.Phase)
	return view.ID
}

func TestSurveyController_GetQuestions(t *testing.T) {
	r, _ := newTestRouter(t, &recordingClient{})

	rec, env := doJSON(t, r, http.MethodGet, "/api/survey/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Title string               `json:"title"`
		Parts []model.QuestionPart `json:"parts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, model.SurveyTitle, data.Title)
	require.Len(t, data.Parts, 4)

	total := 0
	for _, part := range data.Parts {
		total += len(part.Questions)
	}
	assert.Equal(t, 13, total)
}

func TestSurveyController_FullFlow(t *testing.T) {
	client := &recordingClient{}
	r, _ := newTestRouter(t, client)
	id := openForm(t, r)
	base := "/api/survey/forms/" + id

	rec, _ := doJSON(t, r, http.MethodPut, base+"/fields/department", UpdateFieldRequest{Value: "기획행사실"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, r, http.MethodPut, base+"/fields/chatgpt_experience", UpdateFieldRequest{Value: model.ChatGPTExperienceOptions[1]})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeView(t, env).ShowLimitations)

	rec, _ = doJSON(t, r, http.MethodPut, base+"/features", ToggleFeatureRequest{Option: model.HelpfulAIFeatureOptions[4], Selected: true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPut, base+"/other", ToggleOtherRequest{Enabled: true})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, r, http.MethodPut, base+"/fields/other_feature_text", UpdateFieldRequest{Value: "화상회의 요약"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, r, http.MethodGet, base+"/record", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var preview model.SubmissionRecord
	require.NoError(t, json.Unmarshal(env.Data, &preview))
	assert.Equal(t, []string{model.HelpfulAIFeatureOptions[4], "기타: 화상회의 요약"}, preview.HelpfulAIFeatures)

	rec, env = doJSON(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView(t, env)
	assert.Equal(t, service.PhaseSubmitted, view.Phase)
	assert.Equal(t, model.ThankYouMessage, view.Message)

	records := client.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "기획행사실", records[0].Department)
	assert.Equal(t, preview, records[0])

	// 终态后不可再编辑或重复提交
	rec, env = doJSON(t, r, http.MethodPut, base+"/fields/department", UpdateFieldRequest{Value: "글로벌 비즈본부"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "기획행사실", decodeView(t, env).Answers.Department)

	rec, _ = doJSON(t, r, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, client.Records(), 1)
}

func TestSurveyController_SubmitFailureShowsError(t *testing.T) {
	client := &recordingClient{err: errors.New("network timeout")}
	r, _ := newTestRouter(t, client)
	id := openForm(t, r)

	rec, env := doJSON(t, r, http.MethodPost, "/api/survey/forms/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView(t, env)
	assert.True(t, view.Failed)
	assert.Equal(t, "오류가 발생했습니다: network timeout", view.Message)

	rec, _ = doJSON(t, r, http.MethodPut, "/api/survey/forms/"+id+"/other", ToggleOtherRequest{Enabled: true})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSurveyController_ErrorMapping(t *testing.T) {
	r, _ := newTestRouter(t, &recordingClient{})
	id := openForm(t, r)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"unknown form", http.MethodGet, "/api/survey/forms/nope", nil, http.StatusNotFound},
		{"unknown form submit", http.MethodPost, "/api/survey/forms/nope/submit", nil, http.StatusNotFound},
		{"unknown field", http.MethodPut, "/api/survey/forms/" + id + "/fields/salary", UpdateFieldRequest{Value: "x"}, http.StatusBadRequest},
		{"list field is not scalar", http.MethodPut, "/api/survey/forms/" + id + "/fields/helpful_ai_features", UpdateFieldRequest{Value: "x"}, http.StatusBadRequest},
		{"unknown feature", http.MethodPut, "/api/survey/forms/" + id + "/features", ToggleFeatureRequest{Option: "[게임] 점심 메뉴 추천", Selected: true}, http.StatusBadRequest},
		{"missing option", http.MethodPut, "/api/survey/forms/" + id + "/features", map[string]bool{"selected": true}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want, env.Code)
		})
	}
}

func TestPageController_ShowForm(t *testing.T) {
	r, sessions := newTestRouter(t, &recordingClient{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, model.SurveyTitle)
	assert.Contains(t, body, "기획행사실")
	assert.Contains(t, body, "설문 완료 및 제출")
	assert.Equal(t, 1, sessions.Len())

	// 每次加载都是新表单
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 2, sessions.Len())
}

func TestPageController_SubmitForm(t *testing.T) {
	client := &recordingClient{}
	r, sessions := newTestRouter(t, client)
	form := sessions.Open()

	values := url.Values{}
	values.Set("department", "기획행사실")
	values.Set("chatgpt_experience", model.ChatGPTExperienceOptions[2])
	values.Set("chatgpt_limitations", "숨겨진 답변")
	// 浏览器按 DOM 顺序提交复选框，点击顺序（先 5 后 0）在隐藏字段里
	values.Add("helpful_ai_features", model.HelpfulAIFeatureOptions[0])
	values.Add("helpful_ai_features", model.HelpfulAIFeatureOptions[5])
	values.Set(model.FeatureOrderField, model.HelpfulAIFeatureOptions[5]+"\n"+model.HelpfulAIFeatureOptions[0])
	values.Set("other_feature_text", "체크 안 함")

	req := httptest.NewRequest(http.MethodPost, "/survey/"+form.ID, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ThankYouMessage)
	assert.NotContains(t, rec.Body.String(), "<form")

	records := client.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "기획행사실", records[0].Department)
	assert.Equal(t, []string{model.HelpfulAIFeatureOptions[5], model.HelpfulAIFeatureOptions[0]}, records[0].HelpfulAIFeatures)
	assert.Equal(t, "", records[0].ChatGPTLimitations)

	// 再次提交同一表单只显示终态
	req = httptest.NewRequest(http.MethodPost, "/survey/"+form.ID, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ThankYouMessage)
	assert.Len(t, client.Records(), 1)
}

func TestPageController_SubmitUnknownFormRedirects(t *testing.T) {
	r, _ := newTestRouter(t, &recordingClient{})

	req := httptest.NewRequest(http.MethodPost, "/survey/expired", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestOrderedFeatures(t *testing.T) {
	opts := model.HelpfulAIFeatureOptions
	tests := []struct {
		name    string
		checked []string
		order   string
		want    []string
	}{
		{"click order wins", []string{opts[1], opts[3]}, opts[3] + "\n" + opts[1], []string{opts[3], opts[1]}},
		{"unchecked entries dropped", []string{opts[1]}, opts[3] + "\n" + opts[1], []string{opts[1]}},
		{"no recorded order keeps posted order", []string{opts[1], opts[3]}, "", []string{opts[1], opts[3]}},
		{"unrecorded entries appended", []string{opts[0], opts[2], opts[4]}, opts[4], []string{opts[4], opts[0], opts[2]}},
		{"duplicates collapsed", []string{opts[2]}, opts[2] + "\n" + opts[2], []string{opts[2]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderedFeatures(tt.checked, tt.order))
		})
	}
}

func TestPageController_ShowFormRendersFeatureOrderField(t *testing.T) {
	r, _ := newTestRouter(t, &recordingClient{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="`+model.FeatureOrderField+`"`)
}

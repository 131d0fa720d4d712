package web

import (
	"ai_survey_backend/internal/model"
	"embed"
	"html/template"
	"slices"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"answer": func(a model.AnswerSet, field model.Field) string {
		if p := a.Scalar(field); p != nil {
			return *p
		}
		return ""
	},
	"hasFeature": func(a model.AnswerSet, option string) bool {
		return slices.Contains(a.HelpfulAIFeatures, option)
	},
	"featureOrder": func(a model.AnswerSet) string {
		return strings.Join(a.HelpfulAIFeatures, model.FeatureOrderSeparator)
	},
	"isKind": func(q model.Question, kind string) bool {
		return string(q.Kind) == kind
	},
}

// Templates 解析内嵌的页面模板，供 gin 的 SetHTMLTemplate 使用
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

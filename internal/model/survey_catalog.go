package model

import "slices"

// Field 表单中一个答案的名称，与数据表列名一致
type Field string

const (
	FieldDepartment           Field = "department"
	FieldPrimaryRole          Field = "primary_role"
	FieldRepetitiveTasks      Field = "repetitive_tasks"
	FieldDataWorkHours        Field = "data_work_hours"
	FieldDataWorkExamples     Field = "data_work_examples"
	FieldDocumentWorkExamples Field = "document_work_examples"
	FieldInfoSearchDifficulty Field = "info_search_difficulty"
	FieldAIAssistantTasks     Field = "ai_assistant_tasks"
	FieldHelpfulAIFeatures    Field = "helpful_ai_features"
	FieldOtherFeatureEnabled  Field = "other_feature_enabled"
	FieldOtherFeatureText     Field = "other_feature_text"
	FieldChatGPTExperience    Field = "chatgpt_experience"
	FieldChatGPTLimitations   Field = "chatgpt_limitations"
	FieldWillingnessToLearn   Field = "willingness_to_learn"
	FieldConcerns             Field = "concerns"
)

// 页面专用：勾选顺序由页面脚本记录，浏览器按 DOM 顺序提交复选框
const (
	FeatureOrderField     = "helpful_ai_features_order"
	FeatureOrderSeparator = "\n"
)

const (
	SurveyTitle    = "더웰컴 AI 도입 설문"
	SurveySubtitle = "미래 성장을 위한 여러분의 소중한 의견을 들려주세요."

	ThankYouMessage      = "설문에 참여해 주셔서 진심으로 감사합니다!"
	ErrorMessageTemplate = "오류가 발생했습니다: %s"

	// OtherFeaturePrefix 自由填写的"其他"功能在列表中的前缀
	OtherFeaturePrefix = "기타: "
	// WorkKeyword chatgpt_experience 含有该词时才追问使用局限
	WorkKeyword = "업무"

	DefaultCollection = "survey_responses"
)

var (
	Departments = []string{
		"글로벌 전시본부",
		"글로벌 비즈본부",
		"기획행사실",
		"크리에이티브실 / 디자인 연구소",
		"HM실 (경영지원)",
	}

	DataWorkHourBuckets = []string{"1시간 미만", "1~3시간", "3~5시간", "5~10시간", "10시간 이상"}

	HelpfulAIFeatureOptions = []string{
		"[문서 자동화] 제안서, 보고서, 기사 등 초안 자동 작성 및 요약",
		"[디자인 보조] 발표자료, 홍보물 등 디자인 시안 자동 생성",
		"[데이터 분석] 시장/고객 데이터 분석 및 트렌드 예측",
		"[정보 검색] 사내 문서 및 과거 프로젝트 정보 기반 질의응답",
		"[번역/통역] 외국어 이메일 작성, 해외 자료 번역, 실시간 통역 지원",
		"[개인화 추천] 행사 참가자 대상 맞춤형 세션/네트워킹 추천",
	}

	ChatGPTExperienceOptions = []string{
		"업무에 적극적으로 활용하고 있다.",
		"업무에 가끔 사용해 본다.",
		"개인적인 용도로만 사용해 봤다.",
		"사용해 본 적 없다.",
	}

	WillingnessOptions = []string{"매우 그렇다", "그렇다", "보통이다", "그렇지 않다", "전혀 그렇지 않다"}
)

type QuestionKind string

const (
	KindSingleSelect QuestionKind = "single_select"
	KindText         QuestionKind = "text"
	KindLongText     QuestionKind = "long_text"
	KindMultiSelect  QuestionKind = "multi_select"
)

// Question 问卷中的一道题
// swagger:model
type Question struct {
	Number      string       `json:"number"`
	Field       Field        `json:"field"`
	Label       string       `json:"label"`
	Kind        QuestionKind `json:"kind"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	// Conditional 为 true 时仅在 chatgpt_experience 含 WorkKeyword 时显示
	Conditional bool `json:"conditional,omitempty"`
}

// swagger:model
type QuestionPart struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

var surveyParts = []QuestionPart{
	{
		Title: "PART 1. 응답자 정보",
		Questions: []Question{
			{Number: "1", Field: FieldDepartment, Label: "소속 본부/실을 선택해 주세요.", Kind: KindSingleSelect, Options: Departments},
			{Number: "2", Field: FieldPrimaryRole, Label: "현재 담당하고 계신 주된 직무를 간략히 기재해 주세요.", Kind: KindText,
				Placeholder: "예: CES 서울관 PM, 글로벌 연수 기획"},
		},
	},
	{
		Title: "PART 2. 현재 업무 분석",
		Questions: []Question{
			{Number: "3", Field: FieldRepetitiveTasks, Label: "현재 업무 중, 가장 많은 시간을 차지하는 반복적인 수작업이 있다면 무엇인가요? (3가지 이내)", Kind: KindLongText,
				Placeholder: "예: 매주/매월 작성하는 실적 보고서 데이터 취합, 프로젝트별 정산 증빙 서류 정리 등"},
			{Number: "4", Field: FieldDataWorkHours, Label: "데이터 수집, 분석, 보고와 관련된 업무에 주당 평균 몇 시간 정도를 사용하시나요?", Kind: KindSingleSelect,
				Options: DataWorkHourBuckets},
			{Number: "5", Field: FieldDataWorkExamples, Label: "위 4번과 같은 데이터 관련 업무는 주로 무엇인가요? 구체적인 사례를 들어주세요.", Kind: KindLongText,
				Placeholder: "예: 행사 종료 후 만족도 조사 결과 분석, 특정 산업/기술 관련 시장 동향 리서치 및 요약 등"},
			{Number: "6", Field: FieldDocumentWorkExamples, Label: "기획서, 제안서, 보고서, 이메일 등 문서를 작성하거나, 발표 자료(PPT)를 만드는 데 많은 시간을 쏟는 업무는 무엇인가요?", Kind: KindLongText,
				Placeholder: "예: 신규 사업 제안서 초안 작성, 클라이언트 대상 주간 보고 이메일 작성 등"},
			{Number: "7", Field: FieldInfoSearchDifficulty, Label: "과거 프로젝트 자료, 사내 규정, 담당자 정보 등 업무에 필요한 정보를 찾기 위해 시간을 많이 사용하거나 어려움을 겪은 경험이 있으신가요?", Kind: KindLongText,
				Placeholder: "어떤 종류의 정보였는지 구체적으로 작성해주세요."},
		},
	},
	{
		Title: "PART 3. AI 도입에 대한 아이디어",
		Questions: []Question{
			{Number: "8", Field: FieldAIAssistantTasks, Label: "만약 나만의 AI 어시스턴트가 생긴다면, 현재 업무 중 어떤 부분을 가장 먼저 맡기고 싶으신가요?", Kind: KindLongText,
				Placeholder: "'똑똑한 신입사원'이라 가정하고 자유롭게 상상하여 답변해주세요."},
			{Number: "9", Field: FieldHelpfulAIFeatures, Label: "다음 중 AI 기술이 도입되었을 때, 본인의 업무에 가장 도움이 될 것 같은 기능을 모두 선택해 주세요.", Kind: KindMultiSelect,
				Options: HelpfulAIFeatureOptions},
		},
	},
	{
		Title: "PART 4. AI 기술 수용도 및 우려사항",
		Questions: []Question{
			{Number: "10", Field: FieldChatGPTExperience, Label: "ChatGPT를 업무에 사용해 본 경험이 있으신가요?", Kind: KindSingleSelect,
				Options: ChatGPTExperienceOptions},
			{Number: "11", Field: FieldChatGPTLimitations, Label: "ChatGPT를 업무에 활용하면서 느꼈던 한계점이나 아쉬웠던 점은 무엇이었나요?", Kind: KindLongText,
				Placeholder: "예: 최신 정보나 특정 산업 분야 답변의 정확성이 떨어짐, 내부 자료 기반으로 답변을 생성하지 못함 등", Conditional: true},
			{Number: "12", Field: FieldWillingnessToLearn, Label: "회사에서 새로운 AI 기술이나 툴을 도입한다면, 배우고 활용할 의향이 있으신가요?", Kind: KindSingleSelect,
				Options: WillingnessOptions},
			{Number: "13", Field: FieldConcerns, Label: "업무에 AI를 도입하는 것에 대해 우려되는 점이 있다면 자유롭게 말씀해 주세요.", Kind: KindLongText,
				Placeholder: "예: 내 일자리가 줄어들 것 같다, AI가 만든 결과물을 믿을 수 있을지 걱정된다 등"},
		},
	},
}

// SurveyParts 返回问卷的分节题目，调用方不得修改
func SurveyParts() []QuestionPart {
	return surveyParts
}

// ScalarFields 所有单值（字符串）答案字段，顺序与题号一致
func ScalarFields() []Field {
	return []Field{
		FieldDepartment,
		FieldPrimaryRole,
		FieldRepetitiveTasks,
		FieldDataWorkHours,
		FieldDataWorkExamples,
		FieldDocumentWorkExamples,
		FieldInfoSearchDifficulty,
		FieldAIAssistantTasks,
		FieldOtherFeatureText,
		FieldChatGPTExperience,
		FieldChatGPTLimitations,
		FieldWillingnessToLearn,
		FieldConcerns,
	}
}

func IsHelpfulAIFeature(option string) bool {
	return slices.Contains(HelpfulAIFeatureOptions, option)
}

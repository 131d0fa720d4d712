package service

import (
	"ai_survey_backend/internal/config"
	"ai_survey_backend/internal/model"
	"ai_survey_backend/internal/util"
	"ai_survey_backend/pkg/logger"
	"ai_survey_backend/pkg/monitoring"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const sweepInterval = time.Minute

// SurveySessionService 保存每次访问对应的表单。刷新页面即新开一份空白表单，
// 表单只存在内存里，空闲超过 TTL 后被清理。
type SurveySessionService struct {
	client     PersistenceClient
	collection string
	ttl        time.Duration

	mu    sync.RWMutex
	forms map[string]*SurveyForm
}

func NewSurveySessionService(client PersistenceClient, cfg config.SurveyConfig) *SurveySessionService {
	collection := cfg.Collection
	if collection == "" {
		collection = model.DefaultCollection
	}
	return &SurveySessionService{
		client:     client,
		collection: collection,
		ttl:        cfg.SessionTTL(),
		forms:      make(map[string]*SurveyForm),
	}
}

// Open 新开一份空白表单
func (s *SurveySessionService) Open() *SurveyForm {
	form := NewSurveyForm(model.GenerateUUID(), s.client, s.collection)

	s.mu.Lock()
	s.forms[form.ID] = form
	n := len(s.forms)
	s.mu.Unlock()

	monitoring.SetOpenForms(n)
	logger.Log.Debug("Survey form opened", zap.String("form_id", form.ID))
	return form
}

func (s *SurveySessionService) Get(id string) (*SurveyForm, error) {
	s.mu.RLock()
	form, ok := s.forms[id]
	s.mu.RUnlock()
	if !ok {
		return nil, util.ErrFormNotFound
	}
	return form, nil
}

func (s *SurveySessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}

// Sweep 清理空闲超过 TTL 的表单，提交中的表单保留
func (s *SurveySessionService) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, form := range s.forms {
		idle, ok := form.idle(now)
		if ok && idle > s.ttl {
			delete(s.forms, id)
			removed++
		}
	}
	monitoring.SetOpenForms(len(s.forms))
	return removed
}

// Run 定期清理，直到 ctx 结束
func (s *SurveySessionService) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := s.Sweep(now); removed > 0 {
				logger.Log.Info("Evicted idle survey forms", zap.Int("removed", removed), zap.Int("remaining", s.Len()))
			}
		}
	}
}

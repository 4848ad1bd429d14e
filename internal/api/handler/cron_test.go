package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-review-api/internal/domain"
)

type fakeCronRunner struct {
	triggered []domain.Platform
	busy      map[domain.Platform]bool
}

func (f *fakeCronRunner) TriggerManualSync(_ context.Context, platform domain.Platform) bool {
	f.triggered = append(f.triggered, platform)
	return !f.busy[platform]
}

func (f *fakeCronRunner) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func cronRequest(cronType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)
	params := httprouter.Params{{Key: "type", Value: cronType}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestRunCronJob(t *testing.T) {
	t.Run("all dispara todas as plataformas", func(t *testing.T) {
		runner := &fakeCronRunner{busy: map[domain.Platform]bool{domain.PlatformGoogle: true}}

		rec := httptest.NewRecorder()
		RunCronJob(runner).ServeHTTP(rec, cronRequest(CronJobTypeAll))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, []domain.Platform{domain.PlatformMeta, domain.PlatformGoogle}, runner.triggered)
		assert.Contains(t, rec.Body.String(), `"google":false`)
		assert.Contains(t, rec.Body.String(), `"meta":true`)
	})

	t.Run("meta-review", func(t *testing.T) {
		runner := &fakeCronRunner{}

		rec := httptest.NewRecorder()
		RunCronJob(runner).ServeHTTP(rec, cronRequest(CronJobTypeMetaReview))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, []domain.Platform{domain.PlatformMeta}, runner.triggered)
	})

	t.Run("tipo inválido", func(t *testing.T) {
		runner := &fakeCronRunner{}

		rec := httptest.NewRecorder()
		RunCronJob(runner).ServeHTTP(rec, cronRequest("vendas"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, runner.triggered)
	})
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	GetCronStatus(&fakeCronRunner{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sync_enabled":true}`, rec.Body.String())
}

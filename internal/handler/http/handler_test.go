// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/metrics"
	"github.com/MKhiriev/go-wallet-admin/internal/mock"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testHashKey = "hash"
	testSession = "session-token"
)

// testEnv is a router over mocked services.
type testEnv struct {
	clients      *mock.MockClientService
	balance      *mock.MockBalanceService
	registration *mock.MockRegistrationService
	auth         *mock.MockAuthService
	audit        *mock.MockAuditService
	appInfo      *mock.MockAppInfoService

	handler *Handler
	router  *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		clients:      mock.NewMockClientService(ctrl),
		balance:      mock.NewMockBalanceService(ctrl),
		registration: mock.NewMockRegistrationService(ctrl),
		auth:         mock.NewMockAuthService(ctrl),
		audit:        mock.NewMockAuditService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	bundle, err := i18n.New("")
	require.NoError(t, err)

	services := &service.Services{
		ClientService:       env.clients,
		BalanceService:      env.balance,
		RegistrationService: env.registration,
		AuthService:         env.auth,
		AuditService:        env.audit,
		AppInfoService:      env.appInfo,
	}
	cfg := config.StructuredConfig{App: config.App{HashKey: testHashKey, TokenDuration: time.Hour}}

	env.handler = NewHandler(services, Dependencies{Renderer: renderer, Bundle: bundle, Metrics: metrics.New()}, cfg, logger.Nop())
	env.router = env.handler.Init()
	return env
}

// expectSession makes testSession a valid session of operator "root".
func (e *testEnv) expectSession() {
	e.auth.EXPECT().
		ParseToken(gomock.Any(), testSession).
		Return(models.Token{AdminID: uuid.New(), Login: "root"}, nil).
		AnyTimes()
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSession})
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func csrfToken() string {
	return utils.CSRFToken(testSession, testHashKey)
}

func body(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(b)
}

func cookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{
		JWTSecret:     "router-secret",
		AccessTTLMin:  5,
		OperatorEmail: "operator@hotel.test",
	}
	hash, err := utils.HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	eng := engine.New(repository.NewRoomRepo(), repository.NewGuestRepo(), repository.NewReservationRepo())
	e := echo.New()
	RegisterRoutes(e, handler.NewAuthHandler(cfg, hash), handler.NewOperatorHandler(eng, nil), cfg.JWTSecret)
	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)

	if rec := do(e, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Errorf("/healthz status = %d, want 200", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/rooms", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated /v1/rooms status = %d, want 401", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/v1/reservations", "", `{}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated /v1/reservations status = %d, want 401", rec.Code)
	}
}

func TestFullBookingFlow(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/v1/auth/login", "", `{"email":"operator@hotel.test","password":"s3cret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d; body %s", rec.Code, rec.Body.String())
	}
	var login struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	token := login.Access.Token
	if token == "" {
		t.Fatal("login response carries no access token")
	}

	if rec = do(e, http.MethodPost, "/v1/rooms", token, `{"number":101,"type":"Standard","nightly_rate_cents":15000}`); rec.Code != http.StatusCreated {
		t.Fatalf("create room status = %d; body %s", rec.Code, rec.Body.String())
	}
	if rec = do(e, http.MethodPost, "/v1/guests", token, `{"national_id":"11111111111","name":"Ana","phone":"555-0101"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create guest status = %d; body %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPost, "/v1/reservations", token, `{"national_id":"11111111111","room_number":101,"check_in":"10/01/2031","check_out":"12/01/2031"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create reservation status = %d; body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"total_amount_cents":30000`) {
		t.Errorf("reservation body = %s, want total 30000", rec.Body.String())
	}

	// The same window is now blocked for that room.
	rec = do(e, http.MethodPost, "/v1/reservations", token, `{"national_id":"11111111111","room_number":101,"check_in":"11/01/2031","check_out":"13/01/2031"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("overlapping reservation status = %d, want 409", rec.Code)
	}

	if rec = do(e, http.MethodPost, "/v1/reservations/1/cancel", token, ""); rec.Code != http.StatusOK {
		t.Fatalf("cancel status = %d; body %s", rec.Code, rec.Body.String())
	}
	rec = do(e, http.MethodGet, "/v1/reservations/active", token, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("active reservations = %d %s, want empty items", rec.Code, rec.Body.String())
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func newTestOperatorHandler() *OperatorHandler {
	eng := engine.New(repository.NewRoomRepo(), repository.NewGuestRepo(), repository.NewReservationRepo())
	return NewOperatorHandler(eng, nil)
}

// jsonCtx builds an echo context for a JSON request body.
func jsonCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	if err := Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("Health = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	cfg := config.Config{
		JWTSecret:     "test-secret",
		AccessTTLMin:  15,
		OperatorEmail: "operator@hotel.test",
	}
	hash, err := utils.HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h := NewAuthHandler(cfg, hash)
	e := echo.New()

	c, rec := jsonCtx(e, http.MethodPost, "/v1/auth/login", `{"email":"Operator@hotel.test","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Login status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Operator string `json:"operator"`
		Role     string `json:"role"`
		Access   struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Role != RoleOperator || resp.Access.Token == "" {
		t.Errorf("login response = %+v, want OPERATOR role and a token", resp)
	}

	c, rec = jsonCtx(e, http.MethodPost, "/v1/auth/login", `{"email":"operator@hotel.test","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", rec.Code)
	}

	c, rec = jsonCtx(e, http.MethodPost, "/v1/auth/login", `{"email":"","password":""}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty credentials status = %d, want 400", rec.Code)
	}
}

func TestCreateRoomHandler(t *testing.T) {
	h := newTestOperatorHandler()
	e := echo.New()

	c, rec := jsonCtx(e, http.MethodPost, "/v1/rooms", `{"number":101,"type":"Standard","nightly_rate_cents":15000}`)
	if err := h.CreateRoom(c); err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("CreateRoom status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"FREE"`) {
		t.Errorf("CreateRoom body = %s, want default FREE status", rec.Body.String())
	}

	c, rec = jsonCtx(e, http.MethodPost, "/v1/rooms", `{"number":101,"type":"Deluxe","nightly_rate_cents":25000}`)
	if err := h.CreateRoom(c); err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate room status = %d, want 409", rec.Code)
	}

	c, rec = jsonCtx(e, http.MethodPost, "/v1/rooms", `{"number":102,"type":"Standard","nightly_rate_cents":-5}`)
	if err := h.CreateRoom(c); err != nil {
		t.Fatalf("CreateRoom returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative rate status = %d, want 400", rec.Code)
	}
}

func TestCreateReservationHandlerErrors(t *testing.T) {
	h := newTestOperatorHandler()
	e := echo.New()

	c, rec := jsonCtx(e, http.MethodPost, "/v1/reservations", `{"national_id":"111","room_number":101,"check_in":"not-a-date","check_out":"12/01/2031"}`)
	if err := h.CreateReservation(c); err != nil {
		t.Fatalf("CreateReservation returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", rec.Code)
	}

	c, rec = jsonCtx(e, http.MethodPost, "/v1/reservations", `{"national_id":"111","room_number":101,"check_in":"10/01/2031","check_out":"12/01/2031"}`)
	if err := h.CreateReservation(c); err != nil {
		t.Fatalf("CreateReservation returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown guest status = %d, want 404", rec.Code)
	}
}

func TestReservationFlowThroughHandlers(t *testing.T) {
	h := newTestOperatorHandler()
	e := echo.New()

	c, rec := jsonCtx(e, http.MethodPost, "/v1/rooms", `{"number":101,"type":"Standard","nightly_rate_cents":15000}`)
	if err := h.CreateRoom(c); err != nil || rec.Code != http.StatusCreated {
		t.Fatalf("CreateRoom = %v, status %d", err, rec.Code)
	}
	c, rec = jsonCtx(e, http.MethodPost, "/v1/guests", `{"national_id":"11111111111","name":"Ana","phone":"555-0101"}`)
	if err := h.CreateGuest(c); err != nil || rec.Code != http.StatusCreated {
		t.Fatalf("CreateGuest = %v, status %d", err, rec.Code)
	}

	c, rec = jsonCtx(e, http.MethodPost, "/v1/reservations", `{"national_id":"11111111111","room_number":101,"check_in":"10/01/2031","check_out":"12/01/2031"}`)
	if err := h.CreateReservation(c); err != nil {
		t.Fatalf("CreateReservation returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("CreateReservation status = %d; body %s", rec.Code, rec.Body.String())
	}
	var created reservationResp
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode reservation: %v", err)
	}
	if created.Nights != 2 || created.TotalAmountCents != 30000 {
		t.Errorf("reservation = %+v, want 2 nights and 30000 cents", created)
	}

	// The availability query excludes the booked room inside the window.
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/available?check_in=11/01/2031&check_out=12/01/2031", nil)
	rec = httptest.NewRecorder()
	if err := h.AvailableRooms(e.NewContext(req, rec)); err != nil {
		t.Fatalf("AvailableRooms returned error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("AvailableRooms body = %s, want empty items", rec.Body.String())
	}

	// Complete the reservation and verify the guest history lists it.
	req = httptest.NewRequest(http.MethodPost, "/v1/reservations/1/complete", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.CompleteReservation(c); err != nil {
		t.Fatalf("CompleteReservation returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"COMPLETED"`) {
		t.Fatalf("CompleteReservation = %d %s", rec.Code, rec.Body.String())
	}

	// Resolving a terminal reservation is rejected.
	req = httptest.NewRequest(http.MethodPost, "/v1/reservations/1/cancel", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.CancelReservation(c); err != nil {
		t.Fatalf("CancelReservation returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("second resolve status = %d, want 409", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/guests/11111111111/history", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("national_id")
	c.SetParamValues("11111111111")
	if err := h.GuestHistory(c); err != nil {
		t.Fatalf("GuestHistory returned error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"items":[1]`) {
		t.Errorf("GuestHistory body = %s, want items [1]", rec.Body.String())
	}
}

func TestGuestHistoryUnknownGuest(t *testing.T) {
	h := newTestOperatorHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/guests/000/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("national_id")
	c.SetParamValues("000")
	if err := h.GuestHistory(c); err != nil {
		t.Fatalf("GuestHistory returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown guest status = %d, want 404", rec.Code)
	}
}

func TestAvailableRoomsBadDates(t *testing.T) {
	h := newTestOperatorHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/available?check_in=2031-01-10&check_out=12/01/2031", nil)
	rec := httptest.NewRecorder()
	if err := h.AvailableRooms(e.NewContext(req, rec)); err != nil {
		t.Fatalf("AvailableRooms returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", rec.Code)
	}
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/application/auth"
	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/bootstrap"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/bloodbank-api/internal/interfaces/http"
	"github.com/jhoicas/bloodbank-api/internal/testutil"
)

type server struct {
	app       *fiber.App
	container *bootstrap.Container
}

func newServer(t *testing.T) *server {
	t.Helper()
	c := bootstrap.Build(memory.NewKVStore(), bootstrap.Options{
		Clock: testutil.NewClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)),
		IDs:   testutil.NewSeqIDs("id"),
		JWT:   auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	})
	ctx := context.Background()
	_, err := c.Ledger.Initialize(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Repos.Admins.Create(ctx, &entity.Admin{ID: "adm-1", Username: "admin", Password: "admin123"}))

	app := fiber.New()
	apphttp.Router(app, c.RouterDeps())
	return &server{app: app, container: c}
}

// call envía body como JSON y devuelve status y cuerpo crudo.
func (s *server) call(t *testing.T, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func (s *server) adminToken(t *testing.T) string {
	t.Helper()
	status, raw := s.call(t, http.MethodPost, "/api/auth/admin/login", "", dto.AdminLoginRequest{Username: "admin", Password: "admin123"})
	require.Equal(t, http.StatusOK, status, string(raw))
	return decode[dto.LoginResponse](t, raw).Token
}

func (s *server) registerReceiver(t *testing.T, email string, group entity.BloodGroup) dto.LoginResponse {
	t.Helper()
	in := dto.RegisterRequest{
		UserInput: dto.UserInput{
			Name: "John Doe", Age: 28, Gender: entity.GenderMale, BloodGroup: string(group),
			Email: email, Password: "password", IsReceiver: true,
		},
		ConfirmPassword: "password",
	}
	status, raw := s.call(t, http.MethodPost, "/api/auth/register", "", in)
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[dto.LoginResponse](t, raw)
}

func TestAuth_RegistroLoginYSesion(t *testing.T) {
	s := newServer(t)
	reg := s.registerReceiver(t, "john@example.com", entity.BloodGroupOPos)
	require.NotNil(t, reg.User)
	assert.Equal(t, entity.RoleUser, reg.Session.Role)
	assert.NotContains(t, mustJSON(t, reg.User), "password")

	status, raw := s.call(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		UserInput:       dto.UserInput{Name: "Otro", Age: 30, Gender: entity.GenderMale, BloodGroup: "A+", Email: "JOHN@example.com", Password: "x", IsDonor: true},
		ConfirmPassword: "x",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", decode[dto.ErrorResponse](t, raw).Code)

	status, _ = s.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "john@example.com", Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw = s.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "john@example.com", Password: "password"})
	require.Equal(t, http.StatusOK, status)
	login := decode[dto.LoginResponse](t, raw)

	status, raw = s.call(t, http.MethodGet, "/api/auth/session", login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, login.Session.SubjectID, decode[entity.Session](t, raw).SubjectID)

	status, _ = s.call(t, http.MethodPost, "/api/auth/logout", login.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, raw = s.call(t, http.MethodGet, "/api/auth/session", login.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NO_SESSION", decode[dto.ErrorResponse](t, raw).Code)
}

func TestAuth_SesionSoloParaSuDueno(t *testing.T) {
	s := newServer(t)
	john := s.registerReceiver(t, "john@example.com", entity.BloodGroupOPos)
	admin := s.adminToken(t) // la sesión guardada pasa a ser la del admin

	status, raw := s.call(t, http.MethodGet, "/api/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotContains(t, string(raw), "admin")
	status, _ = s.call(t, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw = s.call(t, http.MethodGet, "/api/auth/session", john.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NO_SESSION", decode[dto.ErrorResponse](t, raw).Code)

	// el logout de otro actor no borra la sesión del admin
	status, _ = s.call(t, http.MethodPost, "/api/auth/logout", john.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, raw = s.call(t, http.MethodGet, "/api/auth/session", admin, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, entity.RoleAdmin, decode[entity.Session](t, raw).Role)
}

func TestRouter_RolesPorGrupo(t *testing.T) {
	s := newServer(t)
	user := s.registerReceiver(t, "john@example.com", entity.BloodGroupOPos)
	admin := s.adminToken(t)

	status, _ := s.call(t, http.MethodGet, "/api/admin/stock", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = s.call(t, http.MethodGet, "/api/me/requests", admin, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = s.call(t, http.MethodGet, "/api/me/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRequestFlow_StockInsuficienteYEntrega(t *testing.T) {
	s := newServer(t)
	user := s.registerReceiver(t, "john@example.com", entity.BloodGroupOPos)
	admin := s.adminToken(t)

	status, raw := s.call(t, http.MethodPut, "/api/admin/stock", admin, dto.SetStockRequest{Quantities: map[string]int{"O+": 3}})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = s.call(t, http.MethodPost, "/api/me/requests", user.Token, dto.SubmitRequestInput{
		BloodGroup: "O+", Quantity: 5, Urgency: entity.UrgencyHigh, HospitalName: "General Hospital", Reason: "Surgery",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	req := decode[entity.BloodRequest](t, raw)
	assert.Equal(t, entity.RequestPending, req.Status)

	status, raw = s.call(t, http.MethodPost, "/api/admin/requests/"+req.ID+"/approve", admin, nil)
	require.Equal(t, http.StatusConflict, status)
	errBody := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)
	require.NotNil(t, errBody.Available)
	assert.Equal(t, 3, *errBody.Available)

	status, raw = s.call(t, http.MethodPost, "/api/admin/stock/O%2B/delta", admin, dto.StockDeltaRequest{Delta: 2})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, 5, decode[entity.BloodStock](t, raw).Quantity)

	status, raw = s.call(t, http.MethodPost, "/api/admin/requests/"+req.ID+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, entity.RequestApproved, decode[entity.BloodRequest](t, raw).Status)

	status, raw = s.call(t, http.MethodPost, "/api/admin/requests/"+req.ID+"/fulfill", admin, dto.FulfillInput{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = s.call(t, http.MethodPost, "/api/admin/requests/"+req.ID+"/fulfill", admin, dto.FulfillInput{CollectionCenter: "Central Blood Bank"})
	require.Equal(t, http.StatusOK, status, string(raw))
	out := decode[struct {
		Request entity.BloodRequest `json:"request"`
		Supply  entity.BloodSupply  `json:"supply"`
	}](t, raw)
	assert.Equal(t, entity.RequestFulfilled, out.Request.Status)
	assert.Equal(t, req.ID, out.Supply.RequestID)
	assert.Equal(t, 5, out.Supply.Quantity)

	status, raw = s.call(t, http.MethodGet, "/api/admin/stock", admin, nil)
	require.Equal(t, http.StatusOK, status)
	for _, row := range decode[[]entity.BloodStock](t, raw) {
		if row.BloodGroup == entity.BloodGroupOPos {
			assert.Equal(t, 0, row.Quantity)
		}
	}

	status, raw = s.call(t, http.MethodPost, "/api/admin/requests/"+req.ID+"/reject", admin, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INVALID_TRANSITION", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = s.call(t, http.MethodGet, "/api/me/notifications", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	notes := decode[struct {
		Notifications []entity.Notification `json:"notifications"`
		Unread        int                   `json:"unread"`
	}](t, raw)
	assert.Len(t, notes.Notifications, 2)
	assert.Equal(t, 2, notes.Unread)

	status, raw = s.call(t, http.MethodPatch, "/api/me/notifications/read-all", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, decode[dto.CountResponse](t, raw).Count)

	status, raw = s.call(t, http.MethodGet, "/api/admin/supplies/"+out.Supply.ID+"/receipt", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestAdmin_NoEncontradosYValidacion(t *testing.T) {
	s := newServer(t)
	admin := s.adminToken(t)

	status, raw := s.call(t, http.MethodPost, "/api/admin/requests/no-existe/approve", admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = s.call(t, http.MethodGet, "/api/admin/users/no-existe", admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "USER_NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)

	status, _ = s.call(t, http.MethodGet, "/api/admin/requests?status=Perdida", admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.call(t, http.MethodPut, "/api/admin/stock", admin, dto.SetStockRequest{Quantities: map[string]int{"Z+": 1}})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.call(t, http.MethodGet, "/api/admin/supplies/no-existe/receipt", admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdmin_DonacionesMuevenStock(t *testing.T) {
	s := newServer(t)
	admin := s.adminToken(t)

	status, raw := s.call(t, http.MethodPost, "/api/admin/users", admin, dto.UserInput{
		Name: "Jane Smith", Age: 35, Gender: entity.GenderFemale, BloodGroup: "A+",
		Email: "jane@example.com", Password: "password", IsDonor: true,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	jane := decode[dto.UserResponse](t, raw)

	status, raw = s.call(t, http.MethodPost, "/api/admin/donations", admin, dto.RecordDonationInput{
		UserID: jane.ID, CollectionCenter: "Central Blood Bank", Quantity: 2,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	don := decode[entity.Donation](t, raw)
	assert.Equal(t, entity.BloodGroupAPos, don.BloodGroup)

	row, err := s.container.Ledger.GetByGroup(context.Background(), entity.BloodGroupAPos)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Quantity)

	status, _ = s.call(t, http.MethodDelete, "/api/admin/donations/"+don.ID, admin, nil)
	assert.Equal(t, http.StatusNoContent, status)
	row, err = s.container.Ledger.GetByGroup(context.Background(), entity.BloodGroupAPos)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Quantity)

	status, raw = s.call(t, http.MethodGet, "/api/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, status)
	dash := decode[dto.AdminDashboardDTO](t, raw)
	assert.Equal(t, 1, dash.TotalDonors)
	assert.Equal(t, 0, dash.TotalDonations)
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

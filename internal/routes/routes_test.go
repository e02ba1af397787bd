package routes

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/analytics"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

type testServer struct {
	engine   *gin.Engine
	repos    *infraRepo.Repositories
	provider *storage.MemoryProvider
	cfg      *config.Config
}

type stubGenerator struct{}

func (stubGenerator) GenerateText(context.Context, string) (string, error) {
	return "Corte preciso e elegante.", nil
}

func (stubGenerator) GenerateImage(context.Context, string) ([]byte, string, error) {
	return []byte{0x89, 0x50}, "image/png", nil
}

func newTestServer(t *testing.T, gen ai.Generator) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:       "secret",
		AdminPassphrase: "navalha",
		Timezone:        "UTC",
	}
	p := storage.NewMemoryProvider()
	repos := infraRepo.New(storage.New(p, "barberpro_"))
	d := audit.NewDispatcher(audit.New())
	t.Cleanup(d.Close)

	r := gin.New()
	err := RegisterRoutes(r, Deps{
		Config: cfg,
		Repos:  repos,
		Audit:  d,
		AI:     ai.New(gen, time.Second),
	})
	if err != nil {
		t.Fatalf("register routes: %v", err)
	}

	return &testServer{engine: r, repos: repos, provider: p, cfg: cfg}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"passphrase": "navalha"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: %d %s", w.Code, w.Body.String())
	}
	var out struct {
		Token string `json:"token"`
	}
	decode(t, w, &out)
	return out.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e httperr.HTTPError
	decode(t, w, &e)
	return e.Code
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	if w := s.do(t, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	if w := s.do(t, http.MethodGet, "/metrics", "", nil); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "barberpro_") {
		t.Fatalf("metrics: %d", w.Code)
	}
}

func TestPublicCatalogServesSeeds(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/public/services", "", nil)
	var services []models.Service
	decode(t, w, &services)
	if w.Code != http.StatusOK || len(services) != 3 {
		t.Fatalf("services: %d %d", w.Code, len(services))
	}

	w = s.do(t, http.MethodGet, "/api/public/professionals", "", nil)
	var pros []models.Professional
	decode(t, w, &pros)
	if len(pros) != 2 || pros[0].AvatarURL == "" {
		t.Fatalf("professionals: %+v", pros)
	}

	if w := s.do(t, http.MethodGet, "/api/public/logo", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("absent logo should be 404, got %d", w.Code)
	}
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t, nil)
	date := futureDate()

	booking := gin.H{
		"clientName":     "João",
		"clientPhone":    "11999990000",
		"clientCpf":      "123.456.789-00",
		"serviceId":      "1",
		"professionalId": "1",
		"date":           date,
		"time":           "10:00",
		"status":         "completed",
	}

	w := s.do(t, http.MethodPost, "/api/public/appointments", "", booking)
	if w.Code != http.StatusCreated {
		t.Fatalf("book: %d %s", w.Code, w.Body.String())
	}
	var ap models.Appointment
	decode(t, w, &ap)
	if ap.Status != models.StatusPending {
		t.Fatalf("new booking must be pending, got %s", ap.Status)
	}

	w = s.do(t, http.MethodPost, "/api/public/appointments", "", booking)
	if w.Code != http.StatusConflict || errorCode(t, w) != "time_conflict" {
		t.Fatalf("double booking: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/public/availability?professional_id=1&date="+date, "", nil)
	var avail struct {
		Slots []string `json:"slots"`
	}
	decode(t, w, &avail)
	for _, slot := range avail.Slots {
		if slot == "10:00" {
			t.Fatalf("booked slot still offered: %v", avail.Slots)
		}
	}
	if len(avail.Slots) != 7 {
		t.Fatalf("expected 7 free slots, got %v", avail.Slots)
	}

	if w := s.do(t, http.MethodGet, "/api/public/availability?date="+date, "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("missing professional_id: %d", w.Code)
	}
}

func TestPortal(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/portal/login", "", gin.H{"cpf": "123.456.789-00"})
	if w.Code != http.StatusNotFound || errorCode(t, w) != "client_not_found" {
		t.Fatalf("unknown client login: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/portal/register", "", gin.H{"name": "João", "cpf": "123.456.789-00", "phone": "11"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/portal/register", "", gin.H{"name": "Outro", "cpf": "12345678900"})
	if w.Code != http.StatusConflict || errorCode(t, w) != "cpf_already_registered" {
		t.Fatalf("duplicate register: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/portal/login", "", gin.H{"cpf": "123.456.789-00"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var login struct {
		Token  string        `json:"token"`
		Client models.Client `json:"client"`
	}
	decode(t, w, &login)
	if login.Client.Cpf != "12345678900" || login.Token == "" {
		t.Fatalf("unexpected login %+v", login)
	}

	_ = s.repos.Appointments.ReplaceAll(context.Background(), []models.Appointment{
		{ID: "a1", ClientName: "João", ClientCpf: "12345678900", ServiceID: "1", ProfessionalID: "2", Date: "2025-01-02", Time: "09:00", Status: models.StatusCompleted},
		{ID: "a2", ClientName: "Maria", ClientCpf: "98765432100", ServiceID: "1", ProfessionalID: "1", Date: "2025-01-02", Time: "10:00", Status: models.StatusPending},
		{ID: "a3", ClientName: "João", ClientCpf: "12345678900", ServiceID: "gone", ProfessionalID: "1", Date: "2025-01-05", Time: "11:00", Status: models.StatusPending},
	})

	w = s.do(t, http.MethodGet, "/api/portal/me", login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
	var me struct {
		Appointments []struct {
			ID          string `json:"id"`
			ServiceName string `json:"serviceName"`
		} `json:"appointments"`
	}
	decode(t, w, &me)
	if len(me.Appointments) != 2 || me.Appointments[0].ID != "a3" || me.Appointments[0].ServiceName != "Desconhecido" {
		t.Fatalf("unexpected portal appointments %+v", me.Appointments)
	}

	if w := s.do(t, http.MethodGet, "/api/admin/appointments", login.Token, nil); w.Code != http.StatusForbidden {
		t.Fatalf("client token on admin route: %d", w.Code)
	}
}

func TestAdminLogin(t *testing.T) {
	s := newTestServer(t, nil)

	if w := s.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"passphrase": "errada"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong passphrase: %d", w.Code)
	}
	if w := s.do(t, http.MethodGet, "/api/admin/services", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: %d", w.Code)
	}
}

func TestAdminCatalogCRUD(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/admin/products", token, gin.H{"name": "Pomada", "price": 35.5, "stock": 10})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created models.Product
	decode(t, w, &created)

	w = s.do(t, http.MethodPut, "/api/admin/products/"+created.ID, token, gin.H{"name": "Pomada Matte", "price": 40, "stock": 8})
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/public/products", "", nil)
	var products []models.Product
	decode(t, w, &products)
	if len(products) != 1 || products[0].Name != "Pomada Matte" || products[0].ID != created.ID {
		t.Fatalf("unexpected products %+v", products)
	}

	if w := s.do(t, http.MethodPost, "/api/admin/products", token, gin.H{"name": "X", "price": -1}); w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_price" {
		t.Fatalf("negative price: %d %s", w.Code, w.Body.String())
	}

	if w := s.do(t, http.MethodDelete, "/api/admin/products/"+created.ID, token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := s.do(t, http.MethodDelete, "/api/admin/products/"+created.ID, token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d", w.Code)
	}

	w = s.do(t, http.MethodPost, "/api/admin/expenses", token, gin.H{"description": "Aluguel", "amount": 1500, "category": "lazer", "date": "2025-03-01"})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_category" {
		t.Fatalf("bad category: %d %s", w.Code, w.Body.String())
	}
}

func TestAdminAppointments(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.adminToken(t)

	_ = s.repos.Appointments.ReplaceAll(context.Background(), []models.Appointment{
		{ID: "a1", ClientName: "A", ServiceID: "1", ProfessionalID: "1", Date: "2025-01-02", Time: "09:00", Status: models.StatusPending},
		{ID: "a2", ClientName: "B", ServiceID: "2", ProfessionalID: "1", Date: "2025-01-03", Time: "09:00", Status: models.StatusCancelled},
	})

	w := s.do(t, http.MethodGet, "/api/admin/appointments?status=pending", token, nil)
	var items []map[string]any
	decode(t, w, &items)
	if len(items) != 1 || items[0]["professionalName"] != `Carlos "Navalha" Silva` {
		t.Fatalf("unexpected list %+v", items)
	}

	if w := s.do(t, http.MethodGet, "/api/admin/appointments?status=archived", token, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad status filter: %d", w.Code)
	}

	w = s.do(t, http.MethodPatch, "/api/admin/appointments/a1/status", token, gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPatch, "/api/admin/appointments/a2/status", token, gin.H{"status": "confirmed"})
	if w.Code != http.StatusConflict || errorCode(t, w) != "invalid_state" {
		t.Fatalf("reopen cancelled: %d %s", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPatch, "/api/admin/appointments/zz/status", token, gin.H{"status": "confirmed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown appointment: %d", w.Code)
	}

	if w := s.do(t, http.MethodDelete, "/api/admin/appointments/a2", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
}

func TestAdminAnalytics(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.adminToken(t)
	ctx := context.Background()

	_ = s.repos.Services.ReplaceAll(ctx, []models.Service{{ID: "s", Name: "Corte", Price: 250, Duration: 30}})
	_ = s.repos.Appointments.ReplaceAll(ctx, []models.Appointment{
		{ID: "1", ClientName: "A", ServiceID: "s", Date: "2025-03-01", Status: models.StatusCompleted},
		{ID: "2", ClientName: "B", ServiceID: "s", Date: "2025-03-02", Status: models.StatusConfirmed},
		{ID: "3", ClientName: "C", ServiceID: "s", Date: "2025-03-03", Status: models.StatusPending},
	})
	_ = s.repos.Expenses.ReplaceAll(ctx, []models.Expense{
		{ID: "e", Description: "Aluguel", Amount: 300, Category: models.CategoryAluguel, Date: "2025-03-05"},
	})

	w := s.do(t, http.MethodGet, "/api/admin/analytics/dashboard", token, nil)
	var d analytics.Dashboard
	decode(t, w, &d)
	if d.TotalRevenue != 500 || d.TotalServices != 3 || d.MaxRevenue != 500 {
		t.Fatalf("unexpected dashboard %+v", d)
	}

	w = s.do(t, http.MethodGet, "/api/admin/analytics/financial", token, nil)
	var f analytics.Financial
	decode(t, w, &f)
	if f.NetProfit != 200 || f.TotalExpenses != 300 {
		t.Fatalf("unexpected financial %+v", f)
	}
}

func TestAdminClients(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.adminToken(t)

	_, _, _ = s.repos.Clients.Add(context.Background(), models.Client{Name: "Maria Souza", Cpf: "98765432100"})
	_, _, _ = s.repos.Clients.Add(context.Background(), models.Client{Name: "João", Cpf: "12345678900"})

	w := s.do(t, http.MethodGet, "/api/admin/clients?query=maria", token, nil)
	var clients []models.Client
	decode(t, w, &clients)
	if len(clients) != 1 || clients[0].Name != "Maria Souza" {
		t.Fatalf("unexpected clients %+v", clients)
	}
}

func TestBrandingAndAI(t *testing.T) {
	s := newTestServer(t, stubGenerator{})
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/admin/ai/copy", token, gin.H{"type": "service", "name": "Corte", "keywords": "tesoura"})
	var copyOut struct {
		Text string `json:"text"`
	}
	decode(t, w, &copyOut)
	if copyOut.Text != "Corte preciso e elegante." {
		t.Fatalf("unexpected copy %q", copyOut.Text)
	}

	if w := s.do(t, http.MethodPost, "/api/admin/ai/copy", token, gin.H{"type": "poem", "name": "x"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad kind: %d", w.Code)
	}

	w = s.do(t, http.MethodPost, "/api/admin/ai/logo", token, gin.H{"prompt": "vintage"})
	var logoOut struct {
		Logo string `json:"logo"`
	}
	decode(t, w, &logoOut)
	if !strings.HasPrefix(logoOut.Logo, "data:image/png;base64,") {
		t.Fatalf("unexpected logo %q", logoOut.Logo)
	}

	if w := s.do(t, http.MethodPut, "/api/admin/logo", token, gin.H{"logo": "data:text/plain;base64,AA=="}); w.Code != http.StatusBadRequest || errorCode(t, w) != "logo_not_image" {
		t.Fatalf("non-image logo: %d %s", w.Code, w.Body.String())
	}

	if w := s.do(t, http.MethodPut, "/api/admin/logo", token, gin.H{"logo": logoOut.Logo}); w.Code != http.StatusOK {
		t.Fatalf("save logo: %d %s", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodGet, "/api/public/logo", "", nil)
	decode(t, w, &logoOut)
	if !strings.HasPrefix(logoOut.Logo, "data:image/png;base64,") {
		t.Fatalf("stored logo %q", logoOut.Logo)
	}
}

func TestAIUnconfigured(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.adminToken(t)

	w := s.do(t, http.MethodPost, "/api/admin/ai/copy", token, gin.H{"type": "bio", "name": "André"})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), ai.MsgNotConfigured) {
		t.Fatalf("unconfigured copy: %d %s", w.Code, w.Body.String())
	}
	if w := s.do(t, http.MethodPost, "/api/admin/ai/logo", token, gin.H{"prompt": "x"}); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("unconfigured logo: %d", w.Code)
	}
}

func TestStorageUnavailable(t *testing.T) {
	s := newTestServer(t, nil)
	s.provider.SetError(errors.New("disk gone"))

	w := s.do(t, http.MethodGet, "/api/public/services", "", nil)
	if w.Code != http.StatusServiceUnavailable || errorCode(t, w) != "storage_unavailable" {
		t.Fatalf("expected 503, got %d %s", w.Code, w.Body.String())
	}
}

func TestRateLimitedBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := infraRepo.New(storage.New(storage.NewMemoryProvider(), ""))
	r := gin.New()
	_ = RegisterRoutes(r, Deps{
		Config:      &config.Config{JWTSecret: "s", AdminPassphrase: "p", Timezone: "UTC"},
		Repos:       repos,
		AI:          ai.New(nil, time.Second),
		RateLimiter: middleware.NewRateLimiter(ctx, 0.001, 1),
	})

	codes := []int{}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/public/appointments", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.1:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusBadRequest || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
}

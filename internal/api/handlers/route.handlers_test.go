package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"condotrack/internal/model"
	"condotrack/internal/service/route"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore mirrors the RouteStore contract in memory
type memStore struct {
	records []*model.RouteRecord
}

func (m *memStore) Insert(ctx context.Context, record *model.RouteRecord) (string, error) {
	record.ID = primitive.NewObjectID()
	m.records = append(m.records, record)
	return record.ID.Hex(), nil
}

func (m *memStore) FindByCondID(ctx context.Context, condID string) ([]*model.RouteRecord, error) {
	result := make([]*model.RouteRecord, 0)
	for _, r := range m.records {
		if r.CondID == condID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *memStore) End(ctx context.Context, id string, endedAt time.Time) (bool, error) {
	for _, r := range m.records {
		if r.ID.Hex() == id {
			r.Status = model.RouteStatusEnded
			ts := endedAt
			r.EndedAt = &ts
			return true, nil
		}
	}
	return false, nil
}

func newTestRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRouteHandlers(r.Group("/api"), NewRouteHandler(route.NewRouteService(store)))
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const declareBody = `{
	"condId": "c1",
	"trackerId": "t1",
	"origin": {"lat": 0, "lng": 0, "description": "A"},
	"destination": {"lat": 1, "lng": 1, "description": "B"}
}`

func TestDeclareRouteEndpoint(t *testing.T) {
	r := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/api/route", declareBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body)
	}

	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID == "" {
		t.Error("response carries no id")
	}
	if resp.Message == "" {
		t.Error("response carries no message")
	}
}

func TestDeclareRouteEndpoint_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"no condId":      `{"trackerId":"t1","origin":{"description":"A"},"destination":{"description":"B"}}`,
		"no trackerId":   `{"condId":"c1","origin":{"description":"A"},"destination":{"description":"B"}}`,
		"no origin":      `{"condId":"c1","trackerId":"t1","destination":{"description":"B"}}`,
		"no destination": `{"condId":"c1","trackerId":"t1","origin":{"description":"A"}}`,
		"not json":       `not json`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			store := &memStore{}
			r := newTestRouter(store)

			w := perform(r, http.MethodPost, "/api/route", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if len(store.records) != 0 {
				t.Error("invalid request reached the store")
			}
		})
	}
}

func TestListRoutesEndpoint(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	perform(r, http.MethodPost, "/api/route", declareBody)

	w := perform(r, http.MethodGet, "/api/routes/c1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var records []model.RouteRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Status != model.RouteStatusActive {
		t.Errorf("status = %q, want %q", records[0].Status, model.RouteStatusActive)
	}
}

func TestListRoutesEndpoint_EmptyGroup(t *testing.T) {
	r := newTestRouter(&memStore{})

	w := perform(r, http.MethodGet, "/api/routes/empty", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestEndRouteEndpoint(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	w := perform(r, http.MethodPost, "/api/route", declareBody)
	var created struct {
		ID string `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = perform(r, http.MethodPost, "/api/route/end", `{"routeId":"`+created.ID+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body)
	}

	w = perform(r, http.MethodGet, "/api/routes/c1", "")
	var records []model.RouteRecord
	json.Unmarshal(w.Body.Bytes(), &records)
	if len(records) != 1 || records[0].Status != model.RouteStatusEnded {
		t.Fatalf("expected the record ended, got %s", w.Body)
	}
	if records[0].EndedAt == nil {
		t.Error("endedAt not set after end")
	}
}

func TestEndRouteEndpoint_Failures(t *testing.T) {
	r := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/api/route/end", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing routeId: status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = perform(r, http.MethodPost, "/api/route/end", `{"routeId":"`+primitive.NewObjectID().Hex()+`"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown routeId: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

package handlers

import (
	"container-tracking-service/internal/adapters/repositories"
	"container-tracking-service/internal/api/dto"
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func handlerFixture() *ContainerHandler {
	valid := &domain.ContainerRecord{
		ContainerID:      "MSCU1301003",
		Carrier:          "MSC",
		OriginPort:       "Shanghai",
		DestinationPort:  "Rotterdam",
		Vessel:           "MSC Oscar",
		Region:           "Indian Ocean",
		DistanceNM:       10000,
		SpeedKts:         20,
		CongestionFactor: 1.0,
		WindProxy:        0,
		NominalHours:     500,
	}
	other := &domain.ContainerRecord{
		ContainerID:      "MAEU1301010",
		Carrier:          "Maersk",
		OriginPort:       "Singapore",
		DestinationPort:  "Jebel Ali",
		Vessel:           "Maersk Essex",
		Region:           "Arabian Sea",
		DistanceNM:       3200,
		SpeedKts:         16,
		CongestionFactor: 1.1,
		WindProxy:        3,
		NominalHours:     210,
	}
	// Broken on purpose: scoring must skip it without failing the request.
	invalid := &domain.ContainerRecord{
		ContainerID: "XXXX0000000",
		Carrier:     "MSC",
	}

	scorer := &services.Scorer{
		Repo:    repositories.NewMemoryContainerRepository(valid, other, invalid),
		Weights: services.DefaultWeights(),
		Risk:    services.RiskTable{"Indian Ocean": 0.25, "Arabian Sea": 0.3},
	}

	return &ContainerHandler{
		Scorer:     scorer,
		Summarizer: &services.Summarizer{},
	}
}

func TestContainerHandlerGet(t *testing.T) {
	h := handlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/container?cn=MSCU1301003", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.GetContainerResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Container.ContainerID != "MSCU1301003" {
		t.Fatalf("container id = %q", res.Container.ContainerID)
	}
	if res.Container.Carrier != "MSC" {
		t.Fatalf("carrier = %q, want MSC", res.Container.Carrier)
	}
	if res.Container.Metrics.PredictedHours != 500 {
		t.Fatalf("predicted = %v, want 500", res.Container.Metrics.PredictedHours)
	}
	if res.Summary == "" {
		t.Fatal("summary is empty")
	}
}

func TestContainerHandlerGetIsCaseInsensitive(t *testing.T) {
	h := handlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/container?cn=mscu1301003", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestContainerHandlerGetNotFound(t *testing.T) {
	h := handlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/container?cn=ZIMU9999999", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestContainerHandlerGetRequiresID(t *testing.T) {
	h := handlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/container", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestContainerHandlerListSkipsInvalidRecords(t *testing.T) {
	h := handlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/containers", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListContainersResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// The repository holds three records but one violates invariants.
	if len(res.Containers) != 2 {
		t.Fatalf("got %d containers, want 2", len(res.Containers))
	}
}

func TestContainerHandlerMethodNotAllowed(t *testing.T) {
	h := handlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/containers", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

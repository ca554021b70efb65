// File: services/assistant/assistant_test.go
package assistant

import (
	"context"
	"sync"
	"time"

	"ttravels/models"
	"ttravels/utils"
)

func init() {
	utils.InitializeLogger()
}

// anchorDate is the fixed "today" every test resolves dates against.
var anchorDate = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)

type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	// respond overrides response/err when set.
	respond func(prompt string) (string, error)
	prompts []string
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.respond != nil {
		return f.respond(prompt)
	}
	return f.response, f.err
}

type fakeFlights struct {
	results []models.FlightOption
	err     error
	calls   int
}

func (f *fakeFlights) SearchFlights(ctx context.Context, origin, destination, departureDate, returnDate string) ([]models.FlightOption, error) {
	f.calls++
	return f.results, f.err
}

type fakeHotels struct {
	results   []models.HotelOption
	err       error
	lastQuery models.HotelQuery
	calls     int
}

func (f *fakeHotels) SearchHotels(ctx context.Context, q models.HotelQuery) ([]models.HotelOption, error) {
	f.calls++
	f.lastQuery = q
	return f.results, f.err
}

type fakeAttractions struct {
	results []models.Attraction
	err     error
	calls   int
}

func (f *fakeAttractions) SearchAttractions(ctx context.Context, destination string) ([]models.Attraction, error) {
	f.calls++
	return f.results, f.err
}

// memContextStore is an in-memory TripContextStore for tests.
type memContextStore struct {
	mu   sync.Mutex
	data map[string]models.TripContext
}

func newMemContextStore() *memContextStore {
	return &memContextStore{data: make(map[string]models.TripContext)}
}

func (m *memContextStore) Get(ctx context.Context, id string) (models.TripContext, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[id], nil
}

func (m *memContextStore) Set(ctx context.Context, id string, tc models.TripContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = tc
	return nil
}

func (m *memContextStore) Clear(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

type testDeps struct {
	llm         *fakeLLM
	flights     *fakeFlights
	hotels      *fakeHotels
	attractions *fakeAttractions
	ctxStore    *memContextStore
}

func newTestService() (*DefaultAssistantService, *testDeps) {
	deps := &testDeps{
		llm:         &fakeLLM{},
		flights:     &fakeFlights{},
		hotels:      &fakeHotels{},
		attractions: &fakeAttractions{},
		ctxStore:    newMemContextStore(),
	}
	svc := &DefaultAssistantService{
		LLM:           deps.llm,
		Flights:       deps.flights,
		Hotels:        deps.hotels,
		Attractions:   deps.attractions,
		CtxStore:      deps.ctxStore,
		Conversations: NewMemoryConversationStore(),
		Now:           func() time.Time { return anchorDate },
	}
	return svc, deps
}

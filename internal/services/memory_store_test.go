package services

import (
	"context"
	"errors"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

var errInjected = domain.PersistenceError{Op: "insert", Err: errors.New("injected failure")}

// memGraph is an in-memory trip graph. failOn names a resource whose next
// Create fails; failAfter lets that many creates of it succeed first.
type memGraph struct {
	nextID      int64
	trips       map[int64]models.Trip
	budgets     []models.Budget
	expenses    []models.Expense
	itineraries []models.Itinerary
	travelers   []models.Traveler

	failOn    string
	failAfter int
	calls     []string
	commits   int
	rollbacks int
}

func newMemGraph() *memGraph {
	return &memGraph{trips: map[int64]models.Trip{}}
}

func (g *memGraph) id() int64 {
	g.nextID++
	return g.nextID
}

func (g *memGraph) hit(resource string) error {
	g.calls = append(g.calls, resource)
	if g.failOn != resource {
		return nil
	}
	if g.failAfter > 0 {
		g.failAfter--
		return nil
	}
	return errInjected
}

func (g *memGraph) stores() Stores {
	return Stores{
		Trips:       memTrips{g: g},
		Budgets:     memBudgets{g: g},
		Expenses:    memExpenses{g: g},
		Itineraries: memItineraries{g: g},
		Travelers:   memTravelers{g: g},
	}
}

type memSnapshot struct {
	nextID      int64
	trips       map[int64]models.Trip
	budgets     []models.Budget
	expenses    []models.Expense
	itineraries []models.Itinerary
	travelers   []models.Traveler
}

func (g *memGraph) snapshot() memSnapshot {
	trips := make(map[int64]models.Trip, len(g.trips))
	for k, v := range g.trips {
		trips[k] = v
	}
	return memSnapshot{
		nextID:      g.nextID,
		trips:       trips,
		budgets:     append([]models.Budget(nil), g.budgets...),
		expenses:    append([]models.Expense(nil), g.expenses...),
		itineraries: append([]models.Itinerary(nil), g.itineraries...),
		travelers:   append([]models.Traveler(nil), g.travelers...),
	}
}

func (g *memGraph) restore(s memSnapshot) {
	g.nextID = s.nextID
	g.trips = s.trips
	g.budgets = s.budgets
	g.expenses = s.expenses
	g.itineraries = s.itineraries
	g.travelers = s.travelers
}

// memUoW restores the graph when fn fails, like a rolled back transaction.
type memUoW struct{ g *memGraph }

func (u memUoW) Do(ctx context.Context, fn func(st Stores) error) error {
	snap := u.g.snapshot()
	if err := fn(u.g.stores()); err != nil {
		u.g.restore(snap)
		u.g.rollbacks++
		return err
	}
	u.g.commits++
	return nil
}

type memTrips struct {
	TripStore
	g *memGraph
}

func (m memTrips) Create(_ context.Context, t *models.Trip) error {
	if err := m.g.hit("trip"); err != nil {
		return err
	}
	t.ID = m.g.id()
	m.g.trips[t.ID] = *t
	return nil
}

func (m memTrips) GetByID(_ context.Context, id int64) (models.Trip, error) {
	t, ok := m.g.trips[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", ID: id}
	}
	return t, nil
}

func (m memTrips) List(context.Context) ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range m.g.trips {
		out = append(out, t)
	}
	return out, nil
}

func (m memTrips) Update(_ context.Context, t models.Trip) error {
	if _, ok := m.g.trips[t.ID]; !ok {
		return domain.NotFoundError{Resource: "trip", ID: t.ID}
	}
	m.g.trips[t.ID] = t
	return nil
}

func (m memTrips) Delete(_ context.Context, id int64) error {
	if _, ok := m.g.trips[id]; !ok {
		return domain.NotFoundError{Resource: "trip", ID: id}
	}
	delete(m.g.trips, id)
	return nil
}

type memBudgets struct {
	BudgetStore
	g *memGraph
}

func (m memBudgets) Create(_ context.Context, b *models.Budget) error {
	if err := m.g.hit("budget"); err != nil {
		return err
	}
	b.ID = m.g.id()
	m.g.budgets = append(m.g.budgets, *b)
	return nil
}

func (m memBudgets) GetByID(_ context.Context, id int64) (models.Budget, error) {
	for _, b := range m.g.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Budget{}, domain.NotFoundError{Resource: "budget", ID: id}
}

func (m memBudgets) Update(_ context.Context, b models.Budget) error {
	for i := range m.g.budgets {
		if m.g.budgets[i].ID == b.ID {
			m.g.budgets[i] = b
			return nil
		}
	}
	return domain.NotFoundError{Resource: "budget", ID: b.ID}
}

func (m memBudgets) ListByTrip(_ context.Context, tripID int64) ([]models.Budget, error) {
	out := []models.Budget{}
	for _, b := range m.g.budgets {
		if b.TripID == tripID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memExpenses struct {
	ExpenseStore
	g *memGraph
}

func (m memExpenses) Create(_ context.Context, e *models.Expense) error {
	if err := m.g.hit("expense"); err != nil {
		return err
	}
	e.ID = m.g.id()
	m.g.expenses = append(m.g.expenses, *e)
	return nil
}

type memItineraries struct {
	ItineraryStore
	g *memGraph
}

func (m memItineraries) Create(_ context.Context, it *models.Itinerary) error {
	if err := m.g.hit("itinerary"); err != nil {
		return err
	}
	it.ID = m.g.id()
	m.g.itineraries = append(m.g.itineraries, *it)
	return nil
}

func (m memItineraries) ListByTrip(_ context.Context, tripID int64) ([]models.Itinerary, error) {
	out := []models.Itinerary{}
	for _, it := range m.g.itineraries {
		if it.TripID == tripID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memTravelers struct {
	TravelerStore
	g *memGraph
}

func (m memTravelers) Create(_ context.Context, tr *models.Traveler) error {
	if err := m.g.hit("traveler"); err != nil {
		return err
	}
	tr.ID = m.g.id()
	m.g.travelers = append(m.g.travelers, *tr)
	return nil
}

func (m memTravelers) ListByTrip(_ context.Context, tripID int64) ([]models.Traveler, error) {
	out := []models.Traveler{}
	for _, tr := range m.g.travelers {
		if tr.TripID == tripID {
			out = append(out, tr)
		}
	}
	return out, nil
}

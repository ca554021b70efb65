package models

// Task is one executable trip sub-goal.
type Task string

const (
	TaskPlanItinerary   Task = "plan_itinerary"
	TaskFindHotels      Task = "find_hotels"
	TaskFindFlights     Task = "find_flights"
	TaskFindAttractions Task = "find_attractions"
)

// AllTasks lists every task in execution order.
var AllTasks = []Task{TaskPlanItinerary, TaskFindHotels, TaskFindFlights, TaskFindAttractions}

// TaskSet is an ordered, duplicate-free set of tasks. Never empty after
// Normalize: planning is the default when nothing else was detected.
type TaskSet []Task

func (ts TaskSet) Contains(t Task) bool {
	for _, v := range ts {
		if v == t {
			return true
		}
	}
	return false
}

// Add appends t if not already present, preserving order.
func (ts TaskSet) Add(t Task) TaskSet {
	if ts.Contains(t) {
		return ts
	}
	return append(ts, t)
}

// Normalize returns the set, defaulting to {plan_itinerary} when empty.
func (ts TaskSet) Normalize() TaskSet {
	if len(ts) == 0 {
		return TaskSet{TaskPlanItinerary}
	}
	return ts
}

// TripContext is the accumulated, partially filled slot set for an
// in-progress planning dialogue. A slot, once set to a non-empty value, is
// only overwritten by a later non-empty value, never cleared implicitly.
type TripContext struct {
	Destination   string   `json:"destination,omitempty"`
	Origin        string   `json:"origin,omitempty"`
	Days          int      `json:"days,omitempty"`
	DepartureDate string   `json:"departure_date,omitempty"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Budget        string   `json:"budget,omitempty"`
	Adults        int      `json:"adults,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	Transport     string   `json:"transport,omitempty"`

	// PendingTasks carries the tasks requested when the dialogue began, so
	// answering "5 days" mid-conversation still yields the full plan asked
	// for three turns earlier.
	PendingTasks TaskSet `json:"pending_tasks,omitempty"`
}

// IsEmpty reports whether no slot has been filled and no dialogue is
// pending.
func (c TripContext) IsEmpty() bool {
	return c.Destination == "" && c.Origin == "" && c.Days == 0 &&
		c.DepartureDate == "" && c.ReturnDate == "" && c.Budget == "" &&
		c.Adults == 0 && len(c.Interests) == 0 && c.Transport == "" &&
		len(c.PendingTasks) == 0
}

// Merge copies every non-empty slot of other into c. Empty values in other
// never clear values already present in c.
func (c *TripContext) Merge(other TripContext) {
	if other.Destination != "" {
		c.Destination = other.Destination
	}
	if other.Origin != "" {
		c.Origin = other.Origin
	}
	if other.Days > 0 {
		c.Days = other.Days
	}
	if other.DepartureDate != "" {
		c.DepartureDate = other.DepartureDate
	}
	if other.ReturnDate != "" {
		c.ReturnDate = other.ReturnDate
	}
	if other.Budget != "" {
		c.Budget = other.Budget
	}
	if other.Adults > 0 {
		c.Adults = other.Adults
	}
	if len(other.Interests) > 0 {
		c.Interests = other.Interests
	}
	if other.Transport != "" {
		c.Transport = other.Transport
	}
	if len(other.PendingTasks) > 0 {
		c.PendingTasks = other.PendingTasks
	}
}

// Travelers returns the effective traveler count, defaulting to def.
func (c TripContext) Travelers(def int) int {
	if c.Adults > 0 {
		return c.Adults
	}
	return def
}

// DayPlan is one entry of the day-by-day itinerary.
type DayPlan struct {
	Day     int    `json:"day"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// Itinerary is the structured output of the itinerary generation pipeline.
type Itinerary struct {
	Summary         string    `json:"summary"`
	EstimatedBudget string    `json:"estimated_budget"`
	DayByDay        []DayPlan `json:"day_by_day"`
}

// TripPlan is the aggregated result of one orchestration run.
type TripPlan struct {
	Details       TripContext    `json:"details"`
	Itinerary     *Itinerary     `json:"itinerary_object,omitempty"`
	ItineraryText string         `json:"itinerary_text,omitempty"`
	Hotels        []HotelOption  `json:"hotels,omitempty"`
	Flights       []FlightOption `json:"flights,omitempty"`
	Attractions   []Attraction   `json:"attractions,omitempty"`
}

// Clone returns a deep-enough copy for the modification engine, which must
// derive a new plan rather than mutate the one it was given.
func (p *TripPlan) Clone() *TripPlan {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Itinerary != nil {
		it := *p.Itinerary
		it.DayByDay = append([]DayPlan(nil), p.Itinerary.DayByDay...)
		cp.Itinerary = &it
	}
	cp.Hotels = append([]HotelOption(nil), p.Hotels...)
	cp.Flights = append([]FlightOption(nil), p.Flights...)
	cp.Attractions = append([]Attraction(nil), p.Attractions...)
	cp.Details.Interests = append([]string(nil), p.Details.Interests...)
	cp.Details.PendingTasks = append(TaskSet(nil), p.Details.PendingTasks...)
	return &cp
}

package command

import (
	"sync"

	"github.com/kapu/pokedex-web-go/internal/domain"
)

type EventKind string

const (
	EventStatus  EventKind = "status"
	EventDetail  EventKind = "detail"
	EventGrid    EventKind = "grid"
	EventControl EventKind = "control"
)

// Event is one Surface call captured by a Recorder.
type Event struct {
	Kind    EventKind
	Status  domain.Status
	Detail  domain.DetailView
	Grid    domain.GridView
	Enabled bool
}

// Recorder is an in-memory Surface. It keeps the latest state of every region
// plus the ordered list of updates that produced it.
type Recorder struct {
	mu           sync.Mutex
	status       domain.Status
	detail       domain.DetailView
	grid         domain.GridView
	batchEnabled bool
	events       []Event
}

func NewRecorder() *Recorder {
	return &Recorder{batchEnabled: true}
}

func (r *Recorder) SetStatus(status domain.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	r.events = append(r.events, Event{Kind: EventStatus, Status: status})
}

func (r *Recorder) ShowDetail(view domain.DetailView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detail = view
	r.events = append(r.events, Event{Kind: EventDetail, Detail: view})
}

func (r *Recorder) ShowGrid(view domain.GridView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grid = view
	r.events = append(r.events, Event{Kind: EventGrid, Grid: view})
}

func (r *Recorder) SetBatchEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batchEnabled = enabled
	r.events = append(r.events, Event{Kind: EventControl, Enabled: enabled})
}

func (r *Recorder) Status() domain.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Recorder) Detail() domain.DetailView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.detail
}

func (r *Recorder) Grid() domain.GridView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.grid
}

func (r *Recorder) BatchEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batchEnabled
}

// Events returns a copy of every recorded update in call order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}

// EventsOf filters Events by kind.
func (r *Recorder) EventsOf(kind EventKind) []Event {
	var filtered []Event
	for _, event := range r.Events() {
		if event.Kind == kind {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// ABOUTME: Reactive meal-summary cache keyed by the selected date.
// ABOUTME: Recomputes on store changes; superseded results are discarded.
package summaries

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/notify"
	"github.com/harperreed/nosh/internal/nutrition"
)

// Store is the slice of the repository the watcher needs: entries for a
// date, and the nutritables they reference.
type Store interface {
	ListEntriesByDate(date time.Time) ([]models.Entry, error)
	GetNutritablesByIDs(ids []int64) ([]*models.Nutritable, error)
}

// Watcher keeps derived meal summaries current for one selected date.
//
// Every entries or nutritables change on the bus, and every date change,
// triggers a full recompute: fetch the date's entries, then (only once the
// entries are known) the distinct nutritables they reference, then run the
// aggregation. Each recompute cycle carries a generation number; a cycle
// whose generation has been superseded by the time its result arrives is
// dropped, so at most one cycle is ever authoritative and the last selected
// date wins.
type Watcher struct {
	store Store
	bus   *notify.Bus
	subID uuid.UUID

	mu      sync.Mutex
	date    time.Time
	gen     uint64
	cancel  context.CancelFunc
	current nutrition.MealSummaries

	updates chan nutrition.MealSummaries
	onError func(error)
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithErrorHandler installs a hook for store errors. Without one, errors
// leave the previous summaries in place silently.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New creates a Watcher for the given date, subscribes it to the bus, and
// starts the initial computation.
func New(store Store, bus *notify.Bus, date time.Time, opts ...Option) *Watcher {
	w := &Watcher{
		store:   store,
		bus:     bus,
		date:    models.Day(date),
		current: nutrition.ComputeMealSummaries(nil, nil),
		updates: make(chan nutrition.MealSummaries, 1),
	}
	for _, opt := range opts {
		opt(w)
	}

	var events <-chan notify.Change
	w.subID, events = bus.Subscribe()

	w.wg.Add(1)
	go w.loop(events)

	w.recompute()
	return w
}

// loop consumes change events until the subscription is closed.
func (w *Watcher) loop(events <-chan notify.Change) {
	defer w.wg.Done()
	for change := range events {
		switch change.Table {
		case notify.TableEntries, notify.TableNutritables:
			w.recompute()
		}
	}
}

// Date returns the currently selected date.
func (w *Watcher) Date() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.date
}

// SetDate switches the watcher to a new date. Any in-flight recompute for
// the old date is cancelled and its result, should it still arrive, is
// discarded.
func (w *Watcher) SetDate(date time.Time) {
	w.mu.Lock()
	w.date = models.Day(date)
	w.mu.Unlock()
	w.recompute()
}

// Summaries returns the most recently computed meal summaries.
func (w *Watcher) Summaries() nutrition.MealSummaries {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Updates returns a channel that receives each newly applied summary set.
// Delivery is coalescing: a consumer that lags sees only the latest value.
func (w *Watcher) Updates() <-chan nutrition.MealSummaries {
	return w.updates
}

// Close unsubscribes from the bus and stops the event loop. Pending
// recompute results are discarded.
func (w *Watcher) Close() {
	w.mu.Lock()
	w.gen++ // orphan any in-flight cycle
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()

	w.bus.Unsubscribe(w.subID)
	w.wg.Wait()
}

// recompute starts a new computation cycle for the current date,
// superseding whatever cycle may still be running.
func (w *Watcher) recompute() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.gen++
	gen := w.gen
	date := w.date
	w.mu.Unlock()

	go func() {
		defer cancel()

		entries, err := w.store.ListEntriesByDate(date)
		if err != nil {
			w.reportError(err)
			return
		}
		if ctx.Err() != nil {
			return
		}

		// The nutritable fetch is gated on the entry fetch: the id set is
		// not known before the entries are.
		var tables []models.Nutritable
		if len(entries) > 0 {
			resolved, err := w.store.GetNutritablesByIDs(distinctNutritableIDs(entries))
			if err != nil {
				w.reportError(err)
				return
			}
			if ctx.Err() != nil {
				return
			}
			for _, n := range resolved {
				tables = append(tables, *n)
			}
		}

		w.apply(gen, nutrition.ComputeMealSummaries(entries, tables))
	}()
}

// apply installs a cycle's result unless the cycle has been superseded.
func (w *Watcher) apply(gen uint64, s nutrition.MealSummaries) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.current = s
	w.mu.Unlock()

	// Coalescing push: replace a pending update rather than block.
	select {
	case w.updates <- s:
	default:
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- s:
		default:
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

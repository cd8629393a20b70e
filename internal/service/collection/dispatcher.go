package collection

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"

	"github.com/datafield/asset-library-backend/internal/draft"
	"github.com/datafield/asset-library-backend/internal/model/request"
)

// Dispatcher adapts CollectionService to the draft.ActionDispatcher
// contract: each CreateResource call runs the create asynchronously and
// delivers exactly one Completed or Failed event to the current
// subscribers. Delivery is serialized under one mutex so subscribers can
// treat callbacks as single-threaded.
type Dispatcher struct {
	svc     CollectionService
	ownerID uuid.UUID

	mu        sync.Mutex
	nextID    int
	completed map[int]func(draft.CreatedEntity)
	failed    map[int]func()
}

func NewDispatcher(svc CollectionService, ownerID uuid.UUID) *Dispatcher {
	return &Dispatcher{
		svc:       svc,
		ownerID:   ownerID,
		completed: make(map[int]func(draft.CreatedEntity)),
		failed:    make(map[int]func()),
	}
}

func (d *Dispatcher) SubscribeCompleted(fn func(draft.CreatedEntity)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.completed[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.completed, id)
	}
}

func (d *Dispatcher) SubscribeFailed(fn func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.failed[id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.failed, id)
	}
}

// CreateResource never blocks the caller. The eventual outcome arrives
// through the subscriptions; an unsubscribed listener misses late events.
func (d *Dispatcher) CreateResource(req draft.CreateRequest) {
	go func() {
		created, err := d.svc.Create(context.Background(), &request.CreateCollection{
			Name:      req.Name,
			AssetType: req.AssetType,
			Settings:  req.Settings,
		}, d.ownerID)

		d.mu.Lock()
		defer d.mu.Unlock()

		if err != nil {
			for _, fn := range d.failed {
				fn()
			}
			return
		}

		for _, fn := range d.completed {
			fn(draft.CreatedEntity{UID: created.UID, Name: created.Name})
		}
	}()
}

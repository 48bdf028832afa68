package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/feed"
	"github.com/alexanderramin/itinera/internal/importer"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/scheduler"
	"github.com/alexanderramin/itinera/internal/sequence"
)

// persistJob is one queued storage write with its telemetry labels.
type persistJob struct {
	useCase string
	fields  map[string]any
	write   func(ctx context.Context, repo repository.ItemRepo) error
}

// tripSession pairs one trip's coordinator with its snapshot
// subscription and write queue. The mutex serializes mutations and
// snapshot arrivals: each mutation's re-derivation completes before the
// next is accepted. Writes drain through a single goroutine per trip so
// an order batch can never overtake the insert it refers to.
type tripSession struct {
	mu     sync.Mutex
	coord  *sequence.Coordinator
	cancel func()
	jobs   chan persistJob
	closed bool
}

type itineraryService struct {
	items    repository.ItemRepo
	uow      db.UnitOfWork
	bus      feed.Bus
	observer UseCaseObserver
	dayStart scheduler.Clock

	mu       sync.Mutex
	sessions map[string]*tripSession

	writes sync.WaitGroup
}

// NewItineraryService wires the reorder engine to the storage
// collaborator. Pass observers to receive persistence telemetry; the
// first non-nil one wins.
func NewItineraryService(items repository.ItemRepo, uow db.UnitOfWork, bus feed.Bus, observers ...UseCaseObserver) ItineraryService {
	return &itineraryService{
		items:    items,
		uow:      uow,
		bus:      bus,
		observer: useCaseObserverOrNoop(observers),
		dayStart: scheduler.DefaultDayStart,
		sessions: make(map[string]*tripSession),
	}
}

// NewItineraryServiceWithDayStart is NewItineraryService with a
// non-default day-start policy.
func NewItineraryServiceWithDayStart(items repository.ItemRepo, uow db.UnitOfWork, bus feed.Bus, dayStart scheduler.Clock, observers ...UseCaseObserver) ItineraryService {
	svc := NewItineraryService(items, uow, bus, observers...).(*itineraryService)
	svc.dayStart = dayStart
	return svc
}

// session returns the trip's live session, hydrating from the store and
// subscribing to the snapshot feed on first access.
func (s *itineraryService) session(ctx context.Context, tripID string) (*tripSession, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[tripID]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	snapshot, err := s.items.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("hydrating trip %s: %w", tripID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[tripID]; ok {
		// Another caller hydrated while we read; theirs wins.
		return sess, nil
	}

	sess := &tripSession{
		coord: sequence.NewWithDayStart(tripID, snapshot, s.dayStart),
		jobs:  make(chan persistJob, 64),
	}
	ch, cancel := s.bus.Subscribe(tripID)
	sess.cancel = cancel
	go func() {
		for snap := range ch {
			sess.mu.Lock()
			sess.coord.ApplySnapshot(snap)
			sess.mu.Unlock()
		}
	}()
	go func() {
		for job := range sess.jobs {
			s.runPersist(tripID, job)
			s.writes.Done()
		}
	}()

	s.sessions[tripID] = sess
	return sess, nil
}

func (s *itineraryService) Schedule(ctx context.Context, tripID string) ([]domain.ItineraryItem, error) {
	sess, err := s.session(ctx, tripID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.coord.Items(), nil
}

func (s *itineraryService) AddPlace(ctx context.Context, tripID string, cand contract.PlaceCandidate, atDay int, atIndex *int) (domain.ItineraryItem, error) {
	sess, err := s.session(ctx, tripID)
	if err != nil {
		return domain.ItineraryItem{}, err
	}

	item := importer.Convert(tripID, []contract.PlaceCandidate{cand})[0]

	sess.mu.Lock()
	inserted, _ := sess.coord.Insert(item, atDay, atIndex)
	stored := inserted
	s.persistLocked(sess, persistJob{
		useCase: "add_place",
		fields:  map[string]any{"item_id": stored.ID},
		write: func(ctx context.Context, repo repository.ItemRepo) error {
			return repo.Create(ctx, &stored)
		},
	})
	sess.mu.Unlock()
	return inserted, nil
}

func (s *itineraryService) MoveItem(ctx context.Context, tripID string, fromIndex, toIndex int) ([]domain.ItineraryItem, error) {
	sess, err := s.session(ctx, tripID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	batch, err := sess.coord.Move(fromIndex, toIndex)
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	items := sess.coord.Items()
	s.persistLocked(sess, persistJob{
		useCase: "move_item",
		fields:  map[string]any{"writes": len(batch.Writes)},
		write: func(ctx context.Context, repo repository.ItemRepo) error {
			return repo.ApplyOrderWrites(ctx, batch.Writes)
		},
	})
	sess.mu.Unlock()
	return items, nil
}

func (s *itineraryService) RemoveItem(ctx context.Context, tripID, itemID string) error {
	sess, err := s.session(ctx, tripID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	found := sess.coord.Remove(itemID)
	if found {
		s.persistLocked(sess, persistJob{
			useCase: "remove_item",
			fields:  map[string]any{"item_id": itemID},
			write: func(ctx context.Context, repo repository.ItemRepo) error {
				return repo.Delete(ctx, itemID)
			},
		})
	}
	sess.mu.Unlock()
	if !found {
		return fmt.Errorf("removing item %s: %w", itemID, repository.ErrNotFound)
	}
	return nil
}

func (s *itineraryService) EditItem(ctx context.Context, tripID, itemID string, edit contract.ItemEdit) (domain.ItineraryItem, error) {
	sess, err := s.session(ctx, tripID)
	if err != nil {
		return domain.ItineraryItem{}, err
	}

	sess.mu.Lock()
	found := sess.coord.Edit(itemID, edit)
	var updated domain.ItineraryItem
	if found {
		for _, it := range sess.coord.Items() {
			if it.ID == itemID {
				updated = it
				break
			}
		}
		stored := updated
		stored.UpdatedAt = time.Now().UTC()
		s.persistLocked(sess, persistJob{
			useCase: "edit_item",
			fields:  map[string]any{"item_id": itemID},
			write: func(ctx context.Context, repo repository.ItemRepo) error {
				return repo.Update(ctx, &stored)
			},
		})
	}
	sess.mu.Unlock()
	if !found {
		return domain.ItineraryItem{}, fmt.Errorf("editing item %s: %w", itemID, repository.ErrNotFound)
	}
	return updated, nil
}

func (s *itineraryService) ImportSuggestions(ctx context.Context, tripID string, schema *importer.SuggestionSchema) (int, error) {
	if err := importer.ValidateSuggestions(schema); err != nil {
		return 0, err
	}

	sess, err := s.session(ctx, tripID)
	if err != nil {
		return 0, err
	}

	items := importer.Convert(tripID, schema.Suggestions)

	sess.mu.Lock()
	startIndex := domain.IntFromPtrWithDefault(sess.coord.AppendIndex(), schema.StartIndex)
	batch := sess.coord.BatchInsert(items, startIndex)

	// Stamp the assigned orders onto the stored copies so persisted rows
	// reproduce the schedule.
	byID := make(map[string]int, len(batch.Writes))
	for _, w := range batch.Writes {
		byID[w.ItemID] = w.Order
	}
	stored := make([]domain.ItineraryItem, len(items))
	copy(stored, items)
	for i := range stored {
		if order, ok := byID[stored[i].ID]; ok {
			stored[i].Order = &order
		}
	}

	s.persistLocked(sess, persistJob{
		useCase: "import_suggestions",
		fields:  map[string]any{"count": len(stored)},
		write: func(ctx context.Context, repo repository.ItemRepo) error {
			for i := range stored {
				if err := repo.Create(ctx, &stored[i]); err != nil {
					return err
				}
			}
			return nil
		},
	})
	sess.mu.Unlock()
	return len(stored), nil
}

func (s *itineraryService) Resequence(ctx context.Context, tripID string) error {
	sess, err := s.session(ctx, tripID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	batch := sess.coord.Resequence()
	if !batch.Empty() {
		s.persistLocked(sess, persistJob{
			useCase: "resequence",
			fields:  map[string]any{"writes": len(batch.Writes)},
			write: func(ctx context.Context, repo repository.ItemRepo) error {
				return repo.ApplyOrderWrites(ctx, batch.Writes)
			},
		})
	}
	sess.mu.Unlock()
	return nil
}

func (s *itineraryService) CloseTrip(tripID string) {
	s.mu.Lock()
	sess, ok := s.sessions[tripID]
	if ok {
		delete(s.sessions, tripID)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	if sess.cancel != nil {
		sess.cancel()
	}
	sess.mu.Lock()
	sess.closed = true
	close(sess.jobs)
	sess.mu.Unlock()
}

func (s *itineraryService) Flush() {
	s.writes.Wait()
}

// persistLocked queues a fire-and-forget write. The caller holds
// sess.mu, so jobs enter the queue in mutation order. If the session
// was torn down between lookup and enqueue, the write still runs on a
// detached goroutine; in-flight persistence is never cancelled.
func (s *itineraryService) persistLocked(sess *tripSession, job persistJob) {
	s.writes.Add(1)
	if sess.closed {
		tripID := sess.coord.TripID()
		go func() {
			defer s.writes.Done()
			s.runPersist(tripID, job)
		}()
		return
	}
	sess.jobs <- job
}

// runPersist executes one queued write against the store. Failures are
// observed, not retried: the in-memory state stays authoritative until
// the next snapshot overwrites it. Successful writes publish a fresh
// snapshot to all subscribers.
func (s *itineraryService) runPersist(tripID string, job persistJob) {
	// Detached from the caller: the UI action has already returned.
	ctx := context.Background()
	started := time.Now()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return job.write(ctx, repository.NewSQLiteItemRepo(tx))
	})

	fields := job.fields
	if fields == nil {
		fields = map[string]any{}
	}
	fields["trip_id"] = tripID
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      job.useCase,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	if err != nil {
		return
	}

	if snapshot, listErr := s.items.ListByTrip(ctx, tripID); listErr == nil {
		s.bus.Publish(tripID, snapshot)
	}
}

package overdue

import (
	"log"
	"sync"
	"time"

	"github.com/utilityhub/UtilityHub/app/repository"
)

// Sweeper is the scheduler that moves past-due work into Overdue status:
// pending bills whose due date has passed and pending meter readings older
// than the configured age. Both sweeps are idempotent, so overlapping or
// repeated runs settle on the same state.
type Sweeper struct {
	bills    repository.BillRepository
	readings repository.MeterReadingRepository

	interval      time.Duration
	readingMaxAge time.Duration

	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewSweeper creates a sweeper over the given repositories.
func NewSweeper(bills repository.BillRepository, readings repository.MeterReadingRepository, interval, readingMaxAge time.Duration) *Sweeper {
	return &Sweeper{
		bills:         bills,
		readings:      readings,
		interval:      interval,
		readingMaxAge: readingMaxAge,
		stopCh:        make(chan struct{}),
	}
}

// Start launches the background sweep loop. An immediate sweep runs first
// so restarts catch up without waiting a full interval.
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.runOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop shuts the loop down and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.once.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *Sweeper) runOnce() {
	billCount, readingCount, err := s.SweepOnce(time.Now())
	if err != nil {
		log.Printf("overdue sweep failed: %v", err)
		return
	}
	if billCount > 0 || readingCount > 0 {
		log.Printf("overdue sweep: %d bills, %d readings marked", billCount, readingCount)
	}
}

// SweepOnce performs one sweep as of the given instant and reports how
// many bills and readings were marked.
func (s *Sweeper) SweepOnce(asOf time.Time) (int, int64, error) {
	candidates, err := s.bills.GetOverdueCandidates(asOf)
	if err != nil {
		return 0, 0, err
	}
	marked := 0
	for _, bill := range candidates {
		if err := s.bills.MarkOverdue(bill.BillID); err != nil {
			log.Printf("overdue sweep: marking bill %s failed: %v", bill.BillID, err)
			continue
		}
		marked++
	}

	readings, err := s.readings.MarkPendingOverdueBefore(asOf.Add(-s.readingMaxAge))
	if err != nil {
		return marked, 0, err
	}

	return marked, readings, nil
}

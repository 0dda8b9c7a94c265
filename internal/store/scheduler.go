package store

import (
	"sync"

	"github.com/roylee0704/gron"
	"likability/internal/providers"
	"likability/internal/store/interfaces"
	"likability/internal/structures"
)

// Scheduler runs a periodic safety flush of all documents. Every mutating
// operation already persists synchronously; the flush covers the case where
// a save failed and changes were kept in memory only.
type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	repo   RepositoryInterface
	cron *gron.Cron

	// opsMu keeps the periodic flush and the shutdown persist from
	// overlapping; collection-level safety is the repository's locks.
	opsMu sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Persistence.SaveInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.repo.PersistAll()
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Flushed documents to %s", s.config.Persistence.Dir)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.repo.Restore()
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting documents to disk...")
	err := s.repo.PersistAll()
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, repo RepositoryInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		repo:   repo,
	}
}

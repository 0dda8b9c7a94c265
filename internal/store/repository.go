package store

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"likability/internal/models"
	"likability/internal/providers"
	"likability/internal/structures"
)

// Document file names, identical to the ones the original deployment wrote.
const (
	AffinityDocument  = "likability_data.json"
	ProfileDocument   = "user_profile_data.json"
	BlacklistDocument = "blacklist_data.json"
)

// RepositoryInterface owns the three in-memory collections and their backing
// documents. After Restore the in-memory state is authoritative; saves are
// full rewrites and a failed save degrades to memory-only until the next one.
//
// Record fields are mutated in place, so every read-modify-persist cycle must
// run inside the collection's With* method. The background flush takes the
// same locks, one collection at a time.
type RepositoryInterface interface {
	Restore() error
	WithAffinity(fn func())
	WithProfiles(fn func())
	WithBlacklist(fn func())
	AffinityRecord(uid string) *models.AffinityRecord
	ProfileRecord(uid string) *models.ProfileRecord
	Blacklist() *models.Blacklist
	SaveAffinity()
	SaveProfiles()
	SaveBlacklist()
	PersistAll() error
	Counts() map[string]int
}

type Repository struct {
	conf    *structures.Config
	fm      *FileManager
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	affinity  *models.AffinityTable
	profiles  *models.ProfileTable
	blacklist *models.Blacklist

	// One mutex per collection. Held for the whole read-modify-persist
	// cycle via With*, and per leg by PersistAll.
	affinityMu  sync.Mutex
	profilesMu  sync.Mutex
	blacklistMu sync.Mutex
}

func NewRepository(conf *structures.Config, fm *FileManager, logger providers.Logger, metrics providers.MetricsProviderInterface) RepositoryInterface {
	return &Repository{
		conf:      conf,
		fm:        fm,
		logger:    logger,
		metrics:   metrics,
		affinity:  models.NewAffinityTable(),
		profiles:  models.NewProfileTable(),
		blacklist: models.NewBlacklist(),
	}
}

func (r *Repository) path(doc string) string {
	return filepath.Join(r.conf.Persistence.Dir, doc)
}

// Restore creates the data directory and loads the three documents. A
// missing or unreadable document is logged and treated as no data yet.
func (r *Repository) Restore() error {
	if err := os.MkdirAll(r.conf.Persistence.Dir, 0o755); err != nil {
		return err
	}

	var affinity map[string]*models.AffinityRecord
	if err := r.fm.Load(r.path(AffinityDocument), &affinity); err != nil {
		r.logger.Warnf(providers.TypeApp, "Failed to load %s, starting empty: %s", AffinityDocument, err)
		r.metrics.IncPersistenceFailures(AffinityDocument)
		affinity = nil
	}
	r.affinity.PutData(affinity)

	var profiles map[string]*models.ProfileRecord
	if err := r.fm.Load(r.path(ProfileDocument), &profiles); err != nil {
		r.logger.Warnf(providers.TypeApp, "Failed to load %s, starting empty: %s", ProfileDocument, err)
		r.metrics.IncPersistenceFailures(ProfileDocument)
		profiles = nil
	}
	r.profiles.PutData(profiles)

	var blacklist map[string]bool
	if err := r.fm.Load(r.path(BlacklistDocument), &blacklist); err != nil {
		r.logger.Warnf(providers.TypeApp, "Failed to load %s, starting empty: %s", BlacklistDocument, err)
		r.metrics.IncPersistenceFailures(BlacklistDocument)
		blacklist = nil
	}
	r.blacklist.PutData(blacklist)

	r.metrics.SetRecordsTotal(AffinityDocument, r.affinity.Len())
	r.metrics.SetRecordsTotal(ProfileDocument, r.profiles.Len())
	r.metrics.SetRecordsTotal(BlacklistDocument, r.blacklist.Len())

	r.logger.Infof(providers.TypeApp, "Restored %d affinity, %d profile, %d blacklist records from %s",
		r.affinity.Len(), r.profiles.Len(), r.blacklist.Len(), r.conf.Persistence.Dir)
	return nil
}

// WithAffinity runs fn while holding the affinity collection's lock.
func (r *Repository) WithAffinity(fn func()) {
	r.affinityMu.Lock()
	defer r.affinityMu.Unlock()
	fn()
}

// WithProfiles runs fn while holding the profile collection's lock.
func (r *Repository) WithProfiles(fn func()) {
	r.profilesMu.Lock()
	defer r.profilesMu.Unlock()
	fn()
}

// WithBlacklist runs fn while holding the blacklist's lock.
func (r *Repository) WithBlacklist(fn func()) {
	r.blacklistMu.Lock()
	defer r.blacklistMu.Unlock()
	fn()
}

// AffinityRecord returns the user's record, creating and persisting a
// defaulted one on first access. Callers must hold the collection lock
// via WithAffinity.
func (r *Repository) AffinityRecord(uid string) *models.AffinityRecord {
	if rec, ok := r.affinity.Get(uid); ok {
		return rec
	}
	rec := &models.AffinityRecord{
		Score: r.conf.Likability.InitialScore,
	}
	r.affinity.Set(uid, rec)
	r.SaveAffinity()
	return rec
}

// ProfileRecord returns the user's profile, creating and persisting an empty
// one on first access. Callers must hold the collection lock via WithProfiles.
func (r *Repository) ProfileRecord(uid string) *models.ProfileRecord {
	if rec, ok := r.profiles.Get(uid); ok {
		return rec
	}
	rec := &models.ProfileRecord{}
	r.profiles.Set(uid, rec)
	r.SaveProfiles()
	return rec
}

func (r *Repository) Blacklist() *models.Blacklist {
	return r.blacklist
}

// The Save* methods are best-effort: a failure is logged and counted, the
// in-memory state stays authoritative until the next successful save.
// Callers must hold the collection lock via the matching With* method.

func (r *Repository) SaveAffinity() {
	_ = r.persist(AffinityDocument, r.affinity.Snapshot(), r.affinity.Len())
}

func (r *Repository) SaveProfiles() {
	_ = r.persist(ProfileDocument, r.profiles.Snapshot(), r.profiles.Len())
}

func (r *Repository) SaveBlacklist() {
	_ = r.persist(BlacklistDocument, r.blacklist.Snapshot(), r.blacklist.Len())
}

// PersistAll rewrites all three documents, returning the first error. Used
// by the scheduler flush and the shutdown path. Each leg takes its
// collection's lock so an in-flight service mutation finishes first and
// no two writers hit the same document.
func (r *Repository) PersistAll() error {
	var errs [3]error
	r.WithAffinity(func() { errs[0] = r.persist(AffinityDocument, r.affinity.Snapshot(), r.affinity.Len()) })
	r.WithProfiles(func() { errs[1] = r.persist(ProfileDocument, r.profiles.Snapshot(), r.profiles.Len()) })
	r.WithBlacklist(func() { errs[2] = r.persist(BlacklistDocument, r.blacklist.Snapshot(), r.blacklist.Len()) })

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) persist(doc string, snapshot any, count int) error {
	start := time.Now()
	if err := r.fm.Save(snapshot, r.path(doc)); err != nil {
		r.logger.Errorf(providers.TypeApp, "Failed to persist %s: %s", doc, err)
		r.metrics.IncPersistenceFailures(doc)
		return err
	}
	r.metrics.ObservePersistenceDuration(time.Since(start))
	r.metrics.SetRecordsTotal(doc, count)
	return nil
}

func (r *Repository) Counts() map[string]int {
	return map[string]int{
		AffinityDocument:  r.affinity.Len(),
		ProfileDocument:   r.profiles.Len(),
		BlacklistDocument: r.blacklist.Len(),
	}
}

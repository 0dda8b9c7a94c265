package controllers

import (
	"fmt"
	"time"

	"likability/internal/store"
	"likability/internal/structures"
)

type StatusController struct {
	repo      store.RepositoryInterface
	startTime time.Time
}

func (sc *StatusController) Stats(req *structures.CommandRequest) string {
	uptime := time.Since(sc.startTime)
	counts := sc.repo.Counts()
	return fmt.Sprintf("status: ok\nuptime: %s\naffinity records: %d\nprofile records: %d\nblacklisted: %d",
		formatDuration(uptime),
		counts[store.AffinityDocument],
		counts[store.ProfileDocument],
		counts[store.BlacklistDocument])
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewStatusController(repo store.RepositoryInterface) *StatusController {
	return &StatusController{
		repo:      repo,
		startTime: time.Now(),
	}
}

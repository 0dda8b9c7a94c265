package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"likability/internal/models"
	"likability/internal/providers"
	"likability/internal/store"
	"likability/internal/structures"
)

// DateLayout is the calendar-date format stored in last_sign_date.
const DateLayout = "2006-01-02"

type LikabilityServiceInterface interface {
	Draw(uid string) *models.DrawResult
	GetStatus(uid string) *models.AffinityStatus
	Adjust(operatorUID, targetUID string, delta int) *models.OpResult
	AddAdmin(uid string)
	IsAdmin(uid string) bool
}

// LikabilityService runs every read-modify-persist cycle under the
// repository's affinity lock, which it shares with the background flush;
// two concurrent draws must not both read the pre-draw score.
type LikabilityService struct {
	conf    *structures.Config
	repo    store.RepositoryInterface
	admins  *AdminRegistry
	logger  providers.Logger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewLikabilityService(conf *structures.Config, repo store.RepositoryInterface, admins *AdminRegistry, logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) LikabilityServiceInterface {
	return &LikabilityService{
		conf:    conf,
		repo:    repo,
		admins:  admins,
		logger:  logger,
		cache:   cache,
		metrics: metrics,
	}
}

// drawNumber maps (uid, day) to a draw number in [0,100]. The xxhash of the
// concatenated strings seeds the PRNG, so the outcome is reproducible for a
// given user-day and independent across users and days.
func drawNumber(uid, day string) int {
	seed := xxhash.Sum64String(uid + day)
	rng := rand.New(rand.NewSource(int64(seed)))
	return rng.Intn(101)
}

func clampScore(score, maxScore int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// Draw runs the once-per-day random draw for uid. A second call on the same
// calendar date fails without mutating anything.
func (ls *LikabilityService) Draw(uid string) *models.DrawResult {
	var res *models.DrawResult

	ls.repo.WithAffinity(func() {
		rec := ls.repo.AffinityRecord(uid)
		today := time.Now().Format(DateLayout)

		if rec.LastDrawDate == today {
			ls.metrics.IncAlreadyDrawn()
			res = &models.DrawResult{
				Success: false,
				Message: MsgAlreadyDrawn,
			}
			return
		}

		result := drawNumber(uid, today)
		payout, ok := structures.PayoutFor(ls.conf.Payouts, result)
		if !ok {
			ls.logger.Warnf(providers.TypeOps, "Draw number %d not covered by the payout table", result)
		}

		rec.Score = clampScore(rec.Score+payout.Delta, ls.conf.Likability.MaxScore)
		rec.TotalDrawDays++
		rec.LastDrawDate = today
		ls.repo.SaveAffinity()
		ls.invalidate(uid)

		ls.metrics.IncDraws(providers.DrawOutcome(payout.Delta))
		ls.logger.Debugf(providers.TypeOps, "Draw for %s: result=%d delta=%d score=%d", uid, result, payout.Delta, rec.Score)

		res = &models.DrawResult{
			Success:           true,
			Message:           payout.Message,
			Result:            result,
			Change:            payout.Delta,
			CurrentLikability: rec.Score,
			MaxLikability:     ls.conf.Likability.MaxScore,
		}
	})

	return res
}

// GetStatus classifies the user's current standing. Read-only apart from the
// lazily created record on first access.
func (ls *LikabilityService) GetStatus(uid string) *models.AffinityStatus {
	var status *models.AffinityStatus

	ls.repo.WithAffinity(func() {
		rec := ls.repo.AffinityRecord(uid)
		maxScore := ls.conf.Likability.MaxScore

		ratio := 0.0
		if maxScore > 0 {
			ratio = float64(rec.Score) / float64(maxScore)
		}

		status = &models.AffinityStatus{
			CurrentLikability: rec.Score,
			MaxLikability:     maxScore,
			Ratio:             ratio,
			Level:             structures.LevelFor(ls.conf.Levels, ratio),
			TotalSignDays:     rec.TotalDrawDays,
		}
	})

	return status
}

// Adjust applies an admin-only score change to the target user.
func (ls *LikabilityService) Adjust(operatorUID, targetUID string, delta int) *models.OpResult {
	if !ls.admins.IsAdmin(operatorUID) {
		ls.metrics.IncPermissionDenied("adjust")
		ls.logger.Warnf(providers.TypeAudit, "Denied adjust of %s by non-admin %s", targetUID, operatorUID)
		return &models.OpResult{
			Success: false,
			Message: MsgPermissionDenied,
		}
	}

	var res *models.OpResult

	ls.repo.WithAffinity(func() {
		rec := ls.repo.AffinityRecord(targetUID)
		rec.Score = clampScore(rec.Score+delta, ls.conf.Likability.MaxScore)
		ls.repo.SaveAffinity()
		ls.invalidate(targetUID)

		ls.logger.Infof(providers.TypeAudit, "Admin %s adjusted %s by %d, score now %d", operatorUID, targetUID, delta, rec.Score)

		res = &models.OpResult{
			Success:           true,
			Message:           fmt.Sprintf("好感度设置成功，当前好感度为%d/%d", rec.Score, ls.conf.Likability.MaxScore),
			CurrentLikability: rec.Score,
			MaxLikability:     ls.conf.Likability.MaxScore,
		}
	})

	return res
}

func (ls *LikabilityService) AddAdmin(uid string) {
	ls.admins.Add(uid)
	ls.logger.Infof(providers.TypeAudit, "Added admin %s", uid)
}

func (ls *LikabilityService) IsAdmin(uid string) bool {
	return ls.admins.IsAdmin(uid)
}

func (ls *LikabilityService) invalidate(uid string) {
	ls.cache.Del(PromptCacheKey(uid))
	ls.cache.Del(StatusCacheKey(uid))
}

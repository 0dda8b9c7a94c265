package services

import (
	"fmt"

	"likability/internal/models"
	"likability/internal/providers"
	"likability/internal/store"
)

type ProfileServiceInterface interface {
	SetNickname(uid, nickname string) *models.OpResult
	SetImpression(uid, impression string) *models.OpResult
	GetProfile(uid string) *models.Profile
	IsBlacklisted(uid string) bool
	AddToBlacklist(operatorUID, targetUID string) *models.OpResult
	RemoveFromBlacklist(operatorUID, targetUID string) *models.OpResult
}

// ProfileService runs its read-modify-persist cycles under the repository's
// per-collection locks, shared with the background flush. Profile and
// blacklist documents are independent and their cycles never overlap.
type ProfileService struct {
	repo    store.RepositoryInterface
	admins  *AdminRegistry
	logger  providers.Logger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewProfileService(repo store.RepositoryInterface, admins *AdminRegistry, logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) ProfileServiceInterface {
	return &ProfileService{
		repo:    repo,
		admins:  admins,
		logger:  logger,
		cache:   cache,
		metrics: metrics,
	}
}

func (ps *ProfileService) SetNickname(uid, nickname string) *models.OpResult {
	ps.repo.WithProfiles(func() {
		rec := ps.repo.ProfileRecord(uid)
		rec.Nickname = nickname
		ps.repo.SaveProfiles()
		ps.cache.Del(PromptCacheKey(uid))
	})

	return &models.OpResult{
		Success: true,
		Message: fmt.Sprintf("昵称设置成功：%s", nickname),
	}
}

func (ps *ProfileService) SetImpression(uid, impression string) *models.OpResult {
	ps.repo.WithProfiles(func() {
		rec := ps.repo.ProfileRecord(uid)
		rec.Impression = impression
		ps.repo.SaveProfiles()
		ps.cache.Del(PromptCacheKey(uid))
	})

	return &models.OpResult{
		Success: true,
		Message: fmt.Sprintf("印象设置成功：%s", impression),
	}
}

func (ps *ProfileService) GetProfile(uid string) *models.Profile {
	var profile *models.Profile

	ps.repo.WithProfiles(func() {
		rec := ps.repo.ProfileRecord(uid)
		profile = &models.Profile{
			Nickname:   rec.Nickname,
			Impression: rec.Impression,
		}
	})

	return profile
}

func (ps *ProfileService) IsBlacklisted(uid string) bool {
	return ps.repo.Blacklist().Has(uid)
}

func (ps *ProfileService) AddToBlacklist(operatorUID, targetUID string) *models.OpResult {
	if !ps.admins.IsAdmin(operatorUID) {
		ps.metrics.IncPermissionDenied("blacklist_add")
		ps.logger.Warnf(providers.TypeAudit, "Denied blacklisting of %s by non-admin %s", targetUID, operatorUID)
		return &models.OpResult{
			Success: false,
			Message: MsgPermissionDenied,
		}
	}

	ps.repo.WithBlacklist(func() {
		ps.repo.Blacklist().Add(targetUID)
		ps.repo.SaveBlacklist()
		ps.cache.Del(PromptCacheKey(targetUID))
	})

	ps.logger.Infof(providers.TypeAudit, "Admin %s blacklisted %s", operatorUID, targetUID)

	return &models.OpResult{
		Success: true,
		Message: fmt.Sprintf("用户 %s 已添加到黑名单", targetUID),
	}
}

// RemoveFromBlacklist is idempotent; removing a user never added succeeds.
func (ps *ProfileService) RemoveFromBlacklist(operatorUID, targetUID string) *models.OpResult {
	if !ps.admins.IsAdmin(operatorUID) {
		ps.metrics.IncPermissionDenied("blacklist_remove")
		ps.logger.Warnf(providers.TypeAudit, "Denied unblacklisting of %s by non-admin %s", targetUID, operatorUID)
		return &models.OpResult{
			Success: false,
			Message: MsgPermissionDenied,
		}
	}

	ps.repo.WithBlacklist(func() {
		if ps.repo.Blacklist().Has(targetUID) {
			ps.repo.Blacklist().Remove(targetUID)
			ps.repo.SaveBlacklist()
			ps.cache.Del(PromptCacheKey(targetUID))
		}
	})

	ps.logger.Infof(providers.TypeAudit, "Admin %s unblacklisted %s", operatorUID, targetUID)

	return &models.OpResult{
		Success: true,
		Message: fmt.Sprintf("用户 %s 已从黑名单移除", targetUID),
	}
}

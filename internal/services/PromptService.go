package services

import (
	"fmt"
	"strings"

	"likability/internal/providers"
)

type PromptServiceInterface interface {
	Compose(uid string) string
}

// PromptService assembles the natural-language summary of a user's standing
// that gets prepended to the agent's prompt.
type PromptService struct {
	likability LikabilityServiceInterface
	profiles   ProfileServiceInterface
	cache      providers.CacheProviderInterface
}

func NewPromptService(likability LikabilityServiceInterface, profiles ProfileServiceInterface, cache providers.CacheProviderInterface) PromptServiceInterface {
	return &PromptService{
		likability: likability,
		profiles:   profiles,
		cache:      cache,
	}
}

func (ps *PromptService) Compose(uid string) string {
	if ps.profiles.IsBlacklisted(uid) {
		return MsgBlacklistedPrompt
	}

	key := PromptCacheKey(uid)
	if cached, ok := ps.cache.Get(key); ok {
		return string(cached)
	}

	status := ps.likability.GetStatus(uid)
	profile := ps.profiles.GetProfile(uid)

	var parts []string
	if profile.Nickname != "" {
		parts = append(parts, fmt.Sprintf("用户昵称：%s", profile.Nickname))
	}
	if profile.Impression != "" {
		parts = append(parts, fmt.Sprintf("用户印象：%s", profile.Impression))
	}
	parts = append(parts, fmt.Sprintf("关系状态：（%s）", status.Level))

	prompt := strings.Join(parts, "\n")
	ps.cache.Set(key, []byte(prompt))
	return prompt
}

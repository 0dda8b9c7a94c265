package controllers

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"likability/internal/providers"
	"likability/internal/services"
	"likability/internal/structures"
)

// CommandController turns chat commands into service calls and renders the
// structured results as reply text.
type CommandController struct {
	logger     providers.Logger
	likability services.LikabilityServiceInterface
	profiles   services.ProfileServiceInterface
	prompt     services.PromptServiceInterface
	cache      providers.CacheProviderInterface
}

func NewCommandController(logger providers.Logger, likability services.LikabilityServiceInterface, profiles services.ProfileServiceInterface, prompt services.PromptServiceInterface, cache providers.CacheProviderInterface) *CommandController {
	return &CommandController{
		logger:     logger,
		likability: likability,
		profiles:   profiles,
		prompt:     prompt,
		cache:      cache,
	}
}

func (cc *CommandController) serveFromCacheOrCompute(cacheKey string, compute func() string) string {
	if data, ok := cc.cache.Get(cacheKey); ok {
		return string(data)
	}
	reply := compute()
	cc.cache.Set(cacheKey, []byte(reply))
	return reply
}

func (cc *CommandController) Draw(req *structures.CommandRequest) string {
	res := cc.likability.Draw(req.UID)
	if !res.Success {
		return res.Message
	}
	return fmt.Sprintf("你抽到了 %d！%s\n当前好感度：%d/%d",
		res.Result, res.Message, res.CurrentLikability, res.MaxLikability)
}

func (cc *CommandController) Status(req *structures.CommandRequest) string {
	return cc.serveFromCacheOrCompute(services.StatusCacheKey(req.UID), func() string {
		status := cc.likability.GetStatus(req.UID)
		return fmt.Sprintf("当前好感度：%d/%d（%s）\n累计签到天数：%d",
			status.CurrentLikability, status.MaxLikability, status.Level, status.TotalSignDays)
	})
}

func (cc *CommandController) Profile(req *structures.CommandRequest) string {
	profile := cc.profiles.GetProfile(req.UID)
	nickname := profile.Nickname
	if nickname == "" {
		nickname = "未设置"
	}
	impression := profile.Impression
	if impression == "" {
		impression = "未设置"
	}
	return fmt.Sprintf("昵称：%s\n印象：%s", nickname, impression)
}

func (cc *CommandController) SetNickname(req *structures.CommandRequest) string {
	if len(req.Args) == 0 {
		return "用法：nick <昵称>"
	}
	res := cc.profiles.SetNickname(req.UID, strings.Join(req.Args, " "))
	return res.Message
}

func (cc *CommandController) SetImpression(req *structures.CommandRequest) string {
	if len(req.Args) == 0 {
		return "用法：impression <印象>"
	}
	res := cc.profiles.SetImpression(req.UID, strings.Join(req.Args, " "))
	return res.Message
}

func (cc *CommandController) Adjust(req *structures.CommandRequest) string {
	if len(req.Args) < 2 {
		return "用法：adjust <用户> <数值>"
	}
	res := cc.likability.Adjust(req.UID, req.Args[0], cast.ToInt(req.Args[1]))
	return res.Message
}

func (cc *CommandController) Ban(req *structures.CommandRequest) string {
	if len(req.Args) == 0 {
		return "用法：ban <用户>"
	}
	res := cc.profiles.AddToBlacklist(req.UID, req.Args[0])
	return res.Message
}

func (cc *CommandController) Unban(req *structures.CommandRequest) string {
	if len(req.Args) == 0 {
		return "用法：unban <用户>"
	}
	res := cc.profiles.RemoveFromBlacklist(req.UID, req.Args[0])
	return res.Message
}

func (cc *CommandController) AddAdmin(req *structures.CommandRequest) string {
	if !cc.likability.IsAdmin(req.UID) {
		cc.logger.Warnf(providers.TypeAudit, "Denied addadmin by non-admin %s", req.UID)
		return services.MsgPermissionDenied
	}
	if len(req.Args) == 0 {
		return "用法：addadmin <用户>"
	}
	cc.likability.AddAdmin(req.Args[0])
	return fmt.Sprintf("已添加管理员：%s", req.Args[0])
}

func (cc *CommandController) Prompt(req *structures.CommandRequest) string {
	return cc.prompt.Compose(req.UID)
}

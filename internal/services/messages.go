package services

// User-facing reply fragments. The embedding host renders these verbatim.
const (
	MsgAlreadyDrawn      = "今天已经抽过卡了哦~明天再来吧！"
	MsgPermissionDenied  = "权限不足，仅管理员可执行此操作"
	MsgBlacklistedPrompt = "（当前用户惹你生气了，你暂时不想理他）"
)

func PromptCacheKey(uid string) string { return "prompt:" + uid }
func StatusCacheKey(uid string) string { return "status:" + uid }

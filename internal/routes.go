package internal

import (
	"likability/internal/controllers"
	"likability/internal/providers"
)

func InitCommands(commandController *controllers.CommandController, statusController *controllers.StatusController) providers.CommandRouterProviderInterface {
	router := providers.NewCommandRouterProvider()

	router.Register("draw", commandController.Draw)
	router.Register("status", commandController.Status)
	router.Register("profile", commandController.Profile)
	router.Register("nick", commandController.SetNickname)
	router.Register("impression", commandController.SetImpression)
	router.Register("adjust", commandController.Adjust)
	router.Register("ban", commandController.Ban)
	router.Register("unban", commandController.Unban)
	router.Register("addadmin", commandController.AddAdmin)
	router.Register("prompt", commandController.Prompt)
	router.Register("stats", statusController.Stats)
	return router
}

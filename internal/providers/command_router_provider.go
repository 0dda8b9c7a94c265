package providers

import (
	"sort"

	"likability/internal/structures"
)

type CommandRouterProviderInterface interface {
	Register(name string, handler structures.CommandHandler)
	Resolve(name string) (structures.CommandHandler, bool)
	Commands() []string
}

type CommandRouterProvider struct {
	handlers map[string]structures.CommandHandler
}

func (rp *CommandRouterProvider) Register(name string, handler structures.CommandHandler) {
	rp.handlers[name] = handler
}

func (rp *CommandRouterProvider) Resolve(name string) (structures.CommandHandler, bool) {
	handler, ok := rp.handlers[name]
	return handler, ok
}

func (rp *CommandRouterProvider) Commands() []string {
	names := make([]string, 0, len(rp.handlers))
	for name := range rp.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewCommandRouterProvider() CommandRouterProviderInterface {
	return &CommandRouterProvider{
		handlers: make(map[string]structures.CommandHandler),
	}
}

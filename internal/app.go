package internal

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"likability/internal/providers"
	"likability/internal/store/interfaces"
	"likability/internal/structures"
)

// App is the chat-command front of the ledger: it reads one command per line
// from stdin ("<command> <uid> [args...]") and prints the reply.
type App struct {
	conf      *structures.Config
	logger    providers.Logger
	scheduler interfaces.SchedulerInterface
	router    providers.CommandRouterProviderInterface
	metrics   providers.MetricsProviderInterface
}

func NewApp(conf *structures.Config, logger providers.Logger, scheduler interfaces.SchedulerInterface, router providers.CommandRouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	err := scheduler.Restore()
	if err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}

	scheduler.Init()

	return &App{
		conf:      conf,
		logger:    logger,
		scheduler: scheduler,
		router:    router,
		metrics:   metrics,
	}, nil
}

func (a *App) Dispatch(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	if len(fields) < 2 {
		return a.usage()
	}

	req := &structures.CommandRequest{
		Command: fields[0],
		UID:     fields[1],
		Args:    fields[2:],
	}

	handler, ok := a.router.Resolve(req.Command)
	if !ok {
		return a.usage()
	}

	return providers.MetricsMiddleware(a.metrics, handler)(req)
}

func (a *App) usage() string {
	return "用法：<命令> <用户ID> [参数...]\n可用命令：" + strings.Join(a.router.Commands(), ", ")
}

func (a *App) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-stop:
			a.logger.Infof(providers.TypeApp, "Shutdown signal received")
			return a.shutdown()
		case line, ok := <-lines:
			if !ok {
				return a.shutdown()
			}
			if reply := a.Dispatch(line); reply != "" {
				fmt.Println(reply)
			}
		}
	}
}

func (a *App) shutdown() error {
	a.scheduler.Stop()

	if err := a.scheduler.Persist(); err != nil {
		return err
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

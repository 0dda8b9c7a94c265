package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"likability/internal/providers"
	"likability/internal/structures"
	"likability/internal/testutil"
)

type fakeScheduler struct {
	inited     bool
	stopped    bool
	restored   bool
	persisted  bool
	restoreErr error
}

func (f *fakeScheduler) Init()          { f.inited = true }
func (f *fakeScheduler) Stop()          { f.stopped = true }
func (f *fakeScheduler) Restore() error { f.restored = true; return f.restoreErr }
func (f *fakeScheduler) Persist() error { f.persisted = true; return nil }

func newTestApp(t *testing.T) (*App, *fakeScheduler, *testutil.MockLogger) {
	t.Helper()
	conf := &structures.Config{AppName: "test"}
	logger := &testutil.MockLogger{}
	scheduler := &fakeScheduler{}
	metrics := providers.NewMetricsProvider(conf)

	router := providers.NewCommandRouterProvider()
	router.Register("echo", func(req *structures.CommandRequest) string {
		return req.UID + ":" + strings.Join(req.Args, ",")
	})
	router.Register("ping", func(req *structures.CommandRequest) string {
		return "pong"
	})

	app, err := NewApp(conf, logger, scheduler, router, metrics)
	require.NoError(t, err)
	return app, scheduler, logger
}

func TestNewApp_RestoresAndStartsScheduler(t *testing.T) {
	_, scheduler, _ := newTestApp(t)
	assert.True(t, scheduler.restored)
	assert.True(t, scheduler.inited)
}

func TestNewApp_RestoreFailureIsNotFatal(t *testing.T) {
	conf := &structures.Config{AppName: "test"}
	logger := &testutil.MockLogger{}
	scheduler := &fakeScheduler{restoreErr: assert.AnError}
	router := providers.NewCommandRouterProvider()

	app, err := NewApp(conf, logger, scheduler, router, providers.NewMetricsProvider(conf))
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.True(t, scheduler.inited)

	var sawError bool
	for _, e := range logger.Entries() {
		if e.Level == "error" {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

func TestDispatch_RoutesToHandler(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, "u1:a,b", app.Dispatch("echo u1 a b"))
	assert.Equal(t, "pong", app.Dispatch("ping u1"))
}

func TestDispatch_SquashesWhitespace(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, "u1:a", app.Dispatch("  echo   u1   a  "))
}

func TestDispatch_EmptyLineIsSilent(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, "", app.Dispatch(""))
	assert.Equal(t, "", app.Dispatch("   "))
}

func TestDispatch_MissingUIDShowsUsage(t *testing.T) {
	app, _, _ := newTestApp(t)

	reply := app.Dispatch("echo")
	assert.Contains(t, reply, "用法：")
	assert.Contains(t, reply, "echo, ping")
}

func TestDispatch_UnknownCommandShowsUsage(t *testing.T) {
	app, _, _ := newTestApp(t)

	reply := app.Dispatch("nosuch u1")
	assert.Contains(t, reply, "用法：")
	assert.Contains(t, reply, "echo, ping")
}

func TestShutdown_StopsAndPersists(t *testing.T) {
	app, scheduler, _ := newTestApp(t)

	require.NoError(t, app.shutdown())
	assert.True(t, scheduler.stopped)
	assert.True(t, scheduler.persisted)
}

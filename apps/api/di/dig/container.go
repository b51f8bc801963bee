package dig_container

import (
	"context"
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/elimu/apps/api/echo"
	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
	exportsvc "github.com/trezcool/elimu/services/export"
	logsvc "github.com/trezcool/elimu/services/logger"
	"github.com/trezcool/elimu/services/metrics"
	"github.com/trezcool/elimu/services/outbox"
	"github.com/trezcool/elimu/storage/blob"
	"github.com/trezcool/elimu/storage/database"
	"github.com/trezcool/elimu/storage/inmem"
)

type (
	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	// StorageCloser releases the storage backing the school store.
	StorageCloser func() error
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newRepository(conf *core.Config, loggerParam DBLoggerParam) (school.Repository, StorageCloser, error) {
	if conf.Storage.Engine == "memory" {
		loggerParam.Logger.Warn("memory storage: data is lost on shutdown")
		return inmem.NewSlotRepository(inmem.Open()), func() error { return nil }, nil
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, nil, errors.Wrap(err, "setting up database")
	}
	loggerParam.Logger.Info(fmt.Sprintf("storage ready : %s", conf.Storage.Engine))
	return database.NewSlotRepository(db), db.Close, nil
}

func newStore(repo school.Repository, logger core.Logger, rec *metrics.Recorder) *school.Store {
	store := school.NewStore(repo, logger, rec)
	store.Load(context.Background())
	return store
}

func newValidate(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)
	return validate
}

func newDispatcher(conf *core.Config) school.Dispatcher {
	return outbox.NewConsoleOutbox(conf)
}

func newExporter(conf *core.Config, store *school.Store, logger core.Logger) (*exportsvc.Exporter, error) {
	sink, err := blob.Open(context.Background(), conf.Export)
	if err != nil {
		return nil, errors.Wrap(err, "setting up export sink")
	}
	return exportsvc.NewExporter(store, sink, logger), nil
}

// newScheduler returns nil when no export schedule is configured.
func newScheduler(conf *core.Config, exporter *exportsvc.Exporter, logger core.Logger) (*exportsvc.Scheduler, error) {
	if conf.Export.Schedule == "" {
		return nil, nil
	}
	return exportsvc.NewScheduler(exporter, conf.Export.Schedule, logger)
}

type serverParams struct {
	dig.In
	Conf       *core.Config
	Logger     core.Logger
	SchoolSvc  *school.Service
	Exporter   *exportsvc.Exporter
	Recorder   *metrics.Recorder
	Translator ut.Translator
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		SchoolSvc:  p.SchoolSvc,
		Exporter:   p.Exporter,
		Metrics:    p.Recorder.Handler(),
		Translator: p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	return NewWithConfig(core.NewConfig)
}

// NewWithConfig is New with a custom configuration provider.
func NewWithConfig(newConfig func() *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newRepository))
	must(c.Provide(metrics.NewRecorder))
	must(c.Provide(newStore))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidate))
	must(c.Provide(newDispatcher))
	must(c.Provide(school.NewService))
	must(c.Provide(newExporter))
	must(c.Provide(newScheduler))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}

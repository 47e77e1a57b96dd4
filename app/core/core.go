package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/campus-assist/campus-assist/app/store"
	"github.com/campus-assist/campus-assist/app/store/memstore"
	"github.com/campus-assist/campus-assist/pkg/i18n"
	"github.com/campus-assist/campus-assist/pkg/nlp"
	"github.com/campus-assist/campus-assist/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	stores *memstore.Provider
	nlp    *nlp.Client

	httpEngine *gin.Engine

	localizer i18n.Localizer
	metrics   *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(0)

	core := &Core{
		cfg:        cfg,
		stores:     memstore.MustSetupProvider(),
		nlp:        nlp.New(cfg.NLP.BaseURL, cfg.NLP.Timeout()),
		httpEngine: gin.New(),
		localizer:  i18n.NewDefaultLocalizer(),
		metrics:    NewMetrics("campus", "assist"),
	}

	return core
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() store.ConversationStore {
	return s.stores.ConversationStore()
}

func (s *Core) MessageStore() store.MessageStore {
	return s.stores.MessageStore()
}

func (s *Core) NLP() *nlp.Client {
	return s.nlp
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Localizer() i18n.Localizer {
	return s.localizer
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

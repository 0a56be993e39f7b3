package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/innerguide/guide-api/internal/core/srv"
	"github.com/innerguide/guide-api/internal/store/sqlstore"
	"github.com/innerguide/guide-api/pkg/geo"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	geo        *geo.Client
	httpClient *http.Client
	httpEngine *gin.Engine

	metrics *Metrics
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

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 3},
		geo:        geo.New(cfg.Geo.Endpoint, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second),
		metrics:    NewMetrics("guide_api", "core"),
	}

	// setup store
	setupSqliteStore(core)

	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI)) // ai provider select

	return core
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func setupSqliteStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.SQLite)
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Geo() *geo.Client {
	return s.geo
}

func (s *Core) HttpClient() *http.Client {
	return s.httpClient
}

func (s *Core) HttpEngine() *gin.Engine {
	if s.httpEngine == nil {
		s.httpEngine = gin.New()
		s.httpEngine.Use(gin.Recovery())
	}
	return s.httpEngine
}

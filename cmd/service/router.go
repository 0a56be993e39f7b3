package service

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/innerguide/guide-api/cmd/service/handler"
	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/internal/response"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)

	s.Engine.Use(I18n(), AcceptLanguage())
	s.Engine.Use(Cors)

	s.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/mode", func(c *gin.Context) {
			response.APISuccess(c, s.Core.Srv().AI().Name())
		})

		authed := apiV1.Group("")
		authed.Use(Authorization(s.Core))

		journal := authed.Group("/journal")
		{
			journal.GET("/list", s.ListJournal)
			journal.GET("", s.GetJournal)
			journal.POST("", ipLimit("journal_modify"), s.CreateJournal)
			journal.PUT("", ipLimit("journal_modify"), s.UpdateJournal)
			journal.DELETE("", ipLimit("journal_modify"), s.DeleteJournal)
			journal.POST("/:id/insight", ipLimit("insight"), s.GenerateInsight)
		}

		mood := authed.Group("/mood")
		{
			mood.GET("/list", s.ListMood)
			mood.GET("", s.GetMood)
			mood.POST("", ipLimit("mood_modify"), s.CreateMood)
			mood.DELETE("", ipLimit("mood_modify"), s.DeleteMood)
		}

		authed.GET("/settings", s.GetSettings)
		authed.PUT("/settings", s.SaveSettings)
		authed.GET("/preferences", s.GetPreferences)
		authed.PUT("/preferences", s.SavePreferences)

		authed.GET("/analytics", s.Analytics)

		transfer := authed.Group("/transfer")
		{
			transfer.GET("/export", s.Export)
			transfer.POST("/import", ipLimit("import"), s.Import)
			transfer.GET("/copies", s.ListCopies)
			transfer.POST("/import/:copyid/rerun", ipLimit("import"), s.ReimportCopy)
			transfer.POST("/clear", ipLimit("clear"), s.ClearAll)
		}

		tools := authed.Group("/tools")
		{
			tools.GET("/moon", s.MoonPhase)
		}
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/innerguide/guide-api/internal/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/innerguide/guide-api/internal/response"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/moon"
	"github.com/innerguide/guide-api/pkg/utils"
)

type MoonPhaseRequest struct {
	Date string `json:"date" form:"date"`
}

func (s *HttpSrv) MoonPhase(c *gin.Context) {
	var (
		err error
		req MoonPhaseRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	at := time.Now()
	if req.Date != "" {
		at, err = time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			response.APIError(c, errors.New("MoonPhase.Date.parse", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
			return
		}
	}

	response.APISuccess(c, moon.At(at))
}

package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/innerguide/guide-api/internal/logic/v1"
	"github.com/innerguide/guide-api/internal/response"
	"github.com/innerguide/guide-api/pkg/utils"
)

type CreateMoodRequest struct {
	Mood  int    `json:"mood" binding:"required"`
	Notes string `json:"notes"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

func (s *HttpSrv) CreateMood(c *gin.Context) {
	var (
		err error
		req CreateMoodRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewMoodLogic(c, s.Core).CreateMoodEntry(v1.CreateMoodArgs{
		Mood:  req.Mood,
		Notes: req.Notes,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type GetMoodRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

func (s *HttpSrv) GetMood(c *gin.Context) {
	var (
		err error
		req GetMoodRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewMoodLogic(c, s.Core).GetMoodEntry(req.ID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type ListMoodRequest struct {
	Page     uint64 `json:"page" form:"page"`
	PageSize uint64 `json:"pagesize" form:"pagesize"`
}

func (s *HttpSrv) ListMood(c *gin.Context) {
	var (
		err error
		req ListMoodRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 || req.PageSize > 100 {
		req.PageSize = 20
	}

	list, err := v1.NewMoodLogic(c, s.Core).ListMoodEntries(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}

type DeleteMoodRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

func (s *HttpSrv) DeleteMood(c *gin.Context) {
	var (
		err error
		req DeleteMoodRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewMoodLogic(c, s.Core).DeleteMoodEntry(req.ID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

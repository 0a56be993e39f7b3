package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/innerguide/guide-api/internal/logic/v1"
	"github.com/innerguide/guide-api/internal/response"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

type CreateJournalRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content" binding:"required"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Mood    int      `json:"mood"`
	Tags    []string `json:"tags"`
	City    string   `json:"city"`
	Country string   `json:"country"`
}

func (s *HttpSrv) CreateJournal(c *gin.Context) {
	var (
		err error
		req CreateJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).CreateJournalEntry(types.CreateJournalArgs{
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
		Time:    req.Time,
		Mood:    req.Mood,
		Tags:    req.Tags,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type GetJournalRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

func (s *HttpSrv) GetJournal(c *gin.Context) {
	var (
		err error
		req GetJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).GetJournalEntry(req.ID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type ListJournalRequest struct {
	Page     uint64 `json:"page" form:"page"`
	PageSize uint64 `json:"pagesize" form:"pagesize"`
}

func (s *HttpSrv) ListJournal(c *gin.Context) {
	var (
		err error
		req ListJournalRequest
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

	list, err := v1.NewJournalLogic(c, s.Core).ListJournalEntries(req.Page, req.PageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}

type UpdateJournalRequest struct {
	ID      string   `json:"id" binding:"required"`
	Title   string   `json:"title"`
	Content string   `json:"content" binding:"required"`
	Mood    int      `json:"mood"`
	Tags    []string `json:"tags"`
}

func (s *HttpSrv) UpdateJournal(c *gin.Context) {
	var (
		err error
		req UpdateJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewJournalLogic(c, s.Core).UpdateJournalEntry(req.ID, types.UpdateJournalArgs{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type DeleteJournalRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

func (s *HttpSrv) DeleteJournal(c *gin.Context) {
	var (
		err error
		req DeleteJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewJournalLogic(c, s.Core).DeleteJournalEntry(req.ID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) GenerateInsight(c *gin.Context) {
	entryID, _ := c.Params.Get("id")

	insight, err := v1.NewInsightLogic(c, s.Core).GenerateInsight(entryID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, insight)
}

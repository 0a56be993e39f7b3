package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/innerguide/guide-api/internal/logic/v1"
	"github.com/innerguide/guide-api/internal/response"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/utils"
)

func (s *HttpSrv) Export(c *gin.Context) {
	doc, err := v1.NewTransferLogic(c, s.Core).Export()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, doc)
}

func (s *HttpSrv) Analytics(c *gin.Context) {
	summary, err := v1.NewTransferLogic(c, s.Core).Analytics()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, summary)
}

func (s *HttpSrv) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.APIError(c, errors.New("Import.FormFile", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.APIError(c, errors.New("Import.fileHeader.Open", i18n.ERROR_INTERNAL, err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.APIError(c, errors.New("Import.io.ReadAll", i18n.ERROR_INTERNAL, err))
		return
	}

	result, err := v1.NewTransferLogic(c, s.Core).ImportFile(fileHeader.Filename, content)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}

func (s *HttpSrv) ListCopies(c *gin.Context) {
	list, err := v1.NewTransferLogic(c, s.Core).ListCopies()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}

func (s *HttpSrv) ReimportCopy(c *gin.Context) {
	copyID, _ := c.Params.Get("copyid")

	result, err := v1.NewTransferLogic(c, s.Core).ReimportCopy(copyID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}

type ClearAllRequest struct {
	Confirmation string `json:"confirmation" binding:"required"`
}

func (s *HttpSrv) ClearAll(c *gin.Context) {
	var (
		err error
		req ClearAllRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewTransferLogic(c, s.Core).ClearAll(req.Confirmation); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

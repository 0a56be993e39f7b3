package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
)

const (
	LOCALIZER_CONTEXT_KEY = "response.localizer"
	LANGUAGE_CONTEXT_KEY  = "response.language"
)

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LOCALIZER_CONTEXT_KEY, l)
	}
}

func localize(c *gin.Context, key string) string {
	lang := c.GetString(LANGUAGE_CONTEXT_KEY)
	if lang == "" {
		lang = i18n.DEFAULT_LANG
	}
	if v, exist := c.Get(LOCALIZER_CONTEXT_KEY); exist {
		if l, ok := v.(*i18n.Localizer); ok {
			return l.Get(lang, key)
		}
	}
	return key
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Meta: Meta{
			Code:    http.StatusOK,
			Message: "ok",
		},
		Data: data,
	})
	c.Abort()
}

func APIError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	key := i18n.ERROR_INTERNAL

	if e, ok := errors.As(err); ok {
		code = e.StatusCode()
		if e.MessageKey() != "" {
			key = e.MessageKey()
		}
		if code >= http.StatusInternalServerError {
			slog.Error("api error", slog.String("location", e.Location()), slog.String("error", e.Error()))
		} else {
			slog.Debug("api error", slog.String("location", e.Location()), slog.String("error", e.Error()))
		}
	} else {
		slog.Error("api error", slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(code, Body{
		Meta: Meta{
			Code:    code,
			Message: localize(c, key),
		},
	})
}

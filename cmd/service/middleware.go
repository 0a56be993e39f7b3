package service

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/innerguide/guide-api/internal/core"
	v1 "github.com/innerguide/guide-api/internal/logic/v1"
	"github.com/innerguide/guide-api/internal/response"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/utils"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

func AcceptLanguage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := ctx.Request.Header.Get("Accept-Language")
		if lang == "" {
			ctx.Set(v1.LANGUAGE_KEY, i18n.DEFAULT_LANG)
			ctx.Set(response.LANGUAGE_CONTEXT_KEY, i18n.DEFAULT_LANG)
			return
		}

		res := utils.ParseAcceptLanguage(lang)
		if len(res) == 0 {
			ctx.Set(v1.LANGUAGE_KEY, i18n.DEFAULT_LANG)
			ctx.Set(response.LANGUAGE_CONTEXT_KEY, i18n.DEFAULT_LANG)
			return
		}

		matched := lo.If(strings.Contains(res[0].Tag, "zh"), "zh-CN").Else(i18n.DEFAULT_LANG)
		ctx.Set(v1.LANGUAGE_KEY, matched)
		ctx.Set(response.LANGUAGE_CONTEXT_KEY, matched)
	}
}

const ACCESS_TOKEN_HEADER_KEY = "X-Access-Token"

// Authorization is a static shared-token gate. With no token configured
// the API stays open, which is the expected single-user local setup.
func Authorization(core *core.Core) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		expected := core.Cfg().Security.AccessToken
		if expected == "" {
			return
		}

		got := ctx.GetHeader(ACCESS_TOKEN_HEADER_KEY)
		if got == "" {
			response.APIError(ctx, errors.New("middleware.Authorization.GetHeader.nil", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}
		if got != expected {
			response.APIError(ctx, errors.New("middleware.Authorization.token.mismatch", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden))
			return
		}
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Access-Token")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
	}
	c.Next()
}

func UseLimit(core *core.Core, operation string, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !core.UseLimiter(genKeyFunc(c), operation, 30).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}

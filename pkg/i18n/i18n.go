package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Localizer struct {
	bundle *goi18n.Bundle
	allow  []string
}

func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)

	bundle.AddMessages(language.English, enMessages...)
	bundle.AddMessages(language.MustParse("zh-CN"), cnMessages...)

	return &Localizer{
		bundle: bundle,
		allow:  langs,
	}
}

// Get resolves a message key for the requested language, falling back
// to english and finally to the key itself.
func (l *Localizer) Get(lang, key string) string {
	if key == "" {
		key = ERROR_INTERNAL
	}
	msg, err := goi18n.NewLocalizer(l.bundle, lang, DEFAULT_LANG).Localize(&goi18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return key
	}
	return msg
}

var enMessages = []*goi18n.Message{
	{ID: ERROR_INTERNAL, Other: "Something went wrong, your data was left untouched"},
	{ID: ERROR_NOTFOUND, Other: "Not found"},
	{ID: ERROR_INVALIDARGUMENT, Other: "Invalid request"},
	{ID: ERROR_PERMISSION_DENIED, Other: "Permission denied"},
	{ID: ERROR_UNAUTHORIZED, Other: "Unauthorized"},
	{ID: ERROR_EXIST, Other: "Already exists"},
	{ID: ERROR_TOO_MANY_REQUESTS, Other: "Too many requests, slow down"},
	{ID: ERROR_PAYLOAD_TOO_LARGE, Other: "File is too large"},
	{ID: ERROR_MOOD_OUT_OF_RANGE, Other: "Mood must be between 1 and 5"},
	{ID: ERROR_EMPTY_CONTENT, Other: "Content cannot be empty"},
	{ID: ERROR_UNSUPPORTED_FORMAT, Other: "Unsupported file format"},
	{ID: ERROR_CONFIRMATION_MISMATCH, Other: "Confirmation phrase does not match"},
	{ID: ERROR_AI_UNAVAILABLE, Other: "AI analysis is not configured"},
	{ID: ERROR_IMPORT_NOTHING_USABLE, Other: "No usable entries found in this file"},
	{ID: ERROR_EXPORT_DOC_INVALID, Other: "This does not look like an export document"},
}

var cnMessages = []*goi18n.Message{
	{ID: ERROR_INTERNAL, Other: "出错了，你的数据没有受到影响"},
	{ID: ERROR_NOTFOUND, Other: "未找到相关内容"},
	{ID: ERROR_INVALIDARGUMENT, Other: "请求参数有误"},
	{ID: ERROR_PERMISSION_DENIED, Other: "没有权限"},
	{ID: ERROR_UNAUTHORIZED, Other: "未授权"},
	{ID: ERROR_EXIST, Other: "已经存在"},
	{ID: ERROR_TOO_MANY_REQUESTS, Other: "请求过于频繁，请稍后再试"},
	{ID: ERROR_PAYLOAD_TOO_LARGE, Other: "文件过大"},
	{ID: ERROR_MOOD_OUT_OF_RANGE, Other: "心情值需要在 1 到 5 之间"},
	{ID: ERROR_EMPTY_CONTENT, Other: "内容不能为空"},
	{ID: ERROR_UNSUPPORTED_FORMAT, Other: "不支持的文件格式"},
	{ID: ERROR_CONFIRMATION_MISMATCH, Other: "确认短语不匹配"},
	{ID: ERROR_AI_UNAVAILABLE, Other: "AI 分析未配置"},
	{ID: ERROR_IMPORT_NOTHING_USABLE, Other: "文件中没有可导入的内容"},
	{ID: ERROR_EXPORT_DOC_INVALID, Other: "这看起来不是一个导出文件"},
}

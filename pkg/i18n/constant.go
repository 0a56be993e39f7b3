package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOTFOUND          = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_PERMISSION_DENIED = "error.permission.denied"
	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_EXIST             = "error.exist"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_PAYLOAD_TOO_LARGE = "error.payloadTooLarge"

	ERROR_MOOD_OUT_OF_RANGE      = "error.mood.outofrange"
	ERROR_EMPTY_CONTENT          = "error.empty.content"
	ERROR_UNSUPPORTED_FORMAT     = "error.unsupported.format"
	ERROR_CONFIRMATION_MISMATCH  = "error.confirmation.mismatch"
	ERROR_AI_UNAVAILABLE         = "error.ai.unavailable"
	ERROR_IMPORT_NOTHING_USABLE  = "error.import.nothingusable"
	ERROR_EXPORT_DOC_INVALID     = "error.export.doc.invalid"
)

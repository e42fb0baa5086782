package consts

// HTTP 状态码，详见 RFC 7231 §6。
const (
	StatusOK          = 200
	StatusNoContent   = 204
	StatusNotModified = 304

	StatusBadRequest       = 400
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusRequestTimeout   = 408

	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusServiceUnavailable  = 503
)

var statusMessages = map[int]string{
	StatusOK:          "OK",
	StatusNoContent:   "No Content",
	StatusNotModified: "Not Modified",

	StatusBadRequest:       "Bad Request",
	StatusForbidden:        "Forbidden",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
	StatusRequestTimeout:   "Request Timeout",

	StatusInternalServerError: "Internal Server Error",
	StatusNotImplemented:      "Not Implemented",
	StatusServiceUnavailable:  "Service Unavailable",
}

// StatusMessage 返回状态码对应的原因短语，未知状态码返回 "Unknown Status Code"。
func StatusMessage(statusCode int) string {
	if s, ok := statusMessages[statusCode]; ok {
		return s
	}
	return "Unknown Status Code"
}

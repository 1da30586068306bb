package status

import (
	"fmt"
	"slices"
)

// Code is an HTTP status code (status-code in RFC 7230 et al.).
//
// Any uint16 value is a valid Code, since XHR requests may carry arbitrary
// 16-bit status codes. Only values in [100, 599] have a defined status class;
// a value outside the named set below reports Registered() == false and a
// placeholder Title.
//
// The named set follows the IANA Hypertext Transfer Protocol (HTTP) Status
// Code Registry, with one addition: 418 I'm a teapot, which the registry
// inexplicably omits.
type Code uint16

// 1xx Informational
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102
)

// 2xx Success
const (
	Ok                          Code = 200
	Created                     Code = 201
	Accepted                    Code = 202
	NonAuthoritativeInformation Code = 203
	NoContent                   Code = 204
	ResetContent                Code = 205
	PartialContent              Code = 206
	MultiStatus                 Code = 207
	AlreadyReported             Code = 208
	ImUsed                      Code = 226
)

// 3xx Redirection
const (
	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308
)

// 4xx Client Error
const (
	BadRequest                  Code = 400
	Unauthorized                Code = 401
	PaymentRequired             Code = 402
	Forbidden                   Code = 403
	NotFound                    Code = 404
	MethodNotAllowed            Code = 405
	NotAcceptable               Code = 406
	ProxyAuthenticationRequired Code = 407
	RequestTimeout              Code = 408
	Conflict                    Code = 409
	Gone                        Code = 410
	LengthRequired              Code = 411
	PreconditionFailed          Code = 412
	PayloadTooLarge             Code = 413
	UriTooLong                  Code = 414
	UnsupportedMediaType        Code = 415
	RangeNotSatisfiable         Code = 416
	ExpectationFailed           Code = 417
	ImATeapot                   Code = 418
	MisdirectedRequest          Code = 421
	UnprocessableEntity         Code = 422
	Locked                      Code = 423
	FailedDependency            Code = 424
	UpgradeRequired             Code = 426
	PreconditionRequired        Code = 428
	TooManyRequests             Code = 429
	RequestHeaderFieldsTooLarge Code = 431
	UnavailableForLegalReasons  Code = 451
)

// 5xx Server Error
const (
	InternalServerError           Code = 500
	NotImplemented                Code = 501
	BadGateway                    Code = 502
	ServiceUnavailable            Code = 503
	GatewayTimeout                Code = 504
	HttpVersionNotSupported       Code = 505
	VariantAlsoNegotiates         Code = 506
	InsufficientStorage           Code = 507
	LoopDetected                  Code = 508
	NotExtended                   Code = 510
	NetworkAuthenticationRequired Code = 511
)

// titles holds the canonical display string for every registered code. The
// strings are kept verbatim from the registry tables this package descends
// from ("Ok", "Im Used", "Im A Teapot", "Uri Too Long") because the title
// member of a problem document is matched on the wire; see DESIGN.md.
var titles = map[Code]string{
	Continue:           "Continue",
	SwitchingProtocols: "Switching Protocols",
	Processing:         "Processing",

	Ok:                          "Ok",
	Created:                     "Created",
	Accepted:                    "Accepted",
	NonAuthoritativeInformation: "Non Authoritative Information",
	NoContent:                   "No Content",
	ResetContent:                "Reset Content",
	PartialContent:              "Partial Content",
	MultiStatus:                 "Multi Status",
	AlreadyReported:             "Already Reported",
	ImUsed:                      "Im Used",

	MultipleChoices:   "Multiple Choices",
	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	UseProxy:          "Use Proxy",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:                  "Bad Request",
	Unauthorized:                "Unauthorized",
	PaymentRequired:             "Payment Required",
	Forbidden:                   "Forbidden",
	NotFound:                    "Not Found",
	MethodNotAllowed:            "Method Not Allowed",
	NotAcceptable:               "Not Acceptable",
	ProxyAuthenticationRequired: "Proxy Authentication Required",
	RequestTimeout:              "Request Timeout",
	Conflict:                    "Conflict",
	Gone:                        "Gone",
	LengthRequired:              "Length Required",
	PreconditionFailed:          "Precondition Failed",
	PayloadTooLarge:             "Payload Too Large",
	UriTooLong:                  "Uri Too Long",
	UnsupportedMediaType:        "Unsupported Media Type",
	RangeNotSatisfiable:         "Range Not Satisfiable",
	ExpectationFailed:           "Expectation Failed",
	ImATeapot:                   "Im A Teapot",
	MisdirectedRequest:          "Misdirected Request",
	UnprocessableEntity:         "Unprocessable Entity",
	Locked:                      "Locked",
	FailedDependency:            "Failed Dependency",
	UpgradeRequired:             "Upgrade Required",
	PreconditionRequired:        "Precondition Required",
	TooManyRequests:             "Too Many Requests",
	RequestHeaderFieldsTooLarge: "Request Header Fields Too Large",
	UnavailableForLegalReasons:  "Unavailable For Legal Reasons",

	InternalServerError:           "Internal Server Error",
	NotImplemented:                "Not Implemented",
	BadGateway:                    "Bad Gateway",
	ServiceUnavailable:            "Service Unavailable",
	GatewayTimeout:                "Gateway Timeout",
	HttpVersionNotSupported:       "HTTP Version Not Supported",
	VariantAlsoNegotiates:         "Variant Also Negotiates",
	InsufficientStorage:           "Insufficient Storage",
	LoopDetected:                  "Loop Detected",
	NotExtended:                   "Not Extended",
	NetworkAuthenticationRequired: "Network Authentication Required",
}

// RegisteredCodes returns all codes of the closed named set, in ascending order.
// Mostly useful for exhaustive tests and documentation generators.
func RegisteredCodes() []Code {
	codes := make([]Code, 0, len(titles))
	for c := range titles {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// FromInt maps any integer to a Code. Values of registered codes yield that
// code; everything else is carried verbatim as an unregistered code, so the
// numeric value always round-trips. Inputs outside [0, 65535] are truncated
// to uint16 like any Go integer conversion.
func FromInt(n int) Code {
	return Code(n)
}

// Int returns the canonical numeric value of the code.
func (c Code) Int() int {
	return int(c)
}

// Registered reports whether c is in the closed named set.
func (c Code) Registered() bool {
	_, ok := titles[c]
	return ok
}

// Title returns the canonical display string for the code. For unregistered
// codes the title is a placeholder chosen by the status class of the value.
// Title is total: it never fails, for any input.
func (c Code) Title() string {
	if title, ok := titles[c]; ok {
		return title
	}
	switch c / 100 {
	case 4:
		return "<Unregistered Client Error>"
	case 5:
		return "<Unregistered Server Error>"
	default:
		return "<Unregistered Status Code>"
	}
}

// String renders the code as "<number> <title>", e.g. "404 Not Found".
func (c Code) String() string {
	return fmt.Sprintf("%d %s", uint16(c), c.Title())
}

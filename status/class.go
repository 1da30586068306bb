package status

// Class is the status class of a code, i.e. its leading digit.
type Class uint16

const (
	// ClassUnknown covers every value outside [100, 599].
	ClassUnknown Class = 0
	// ClassInformational is the 1xx class.
	ClassInformational Class = 1
	// ClassSuccess is the 2xx class.
	ClassSuccess Class = 2
	// ClassRedirection is the 3xx class.
	ClassRedirection Class = 3
	// ClassClientError is the 4xx class.
	ClassClientError Class = 4
	// ClassServerError is the 5xx class.
	ClassServerError Class = 5
)

// Class returns the status class of the code.
func (c Code) Class() Class {
	if c < 100 || c > 599 {
		return ClassUnknown
	}
	return Class(c / 100)
}

// Default returns the x00 code of the class, the recommended stand-in for a
// code that a peer does not know how to handle (e.g. treat 123 as 100). For
// ClassUnknown there is no defined stand-in and Default returns Code(0).
func (cl Class) Default() Code {
	if cl == ClassUnknown {
		return Code(0)
	}
	return Code(cl * 100)
}

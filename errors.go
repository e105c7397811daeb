package img2text

import "errors"

// Kind classifies the errors returned by this package.
type Kind int

const (
	// KindOther is any error that does not carry a Kind.
	KindOther Kind = iota
	// KindType means a value of the wrong shape was passed in.
	KindType
	// KindValue means an argument was malformed, such as a character that
	// is not exactly one rune or a scale factor that is not a number.
	KindValue
	// KindDecode means the image file could not be opened or decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindValue:
		return "value"
	case KindDecode:
		return "decode"
	}
	return "other"
}

// Error is a Kind-tagged error. When Msg is empty the message of the
// wrapped error is reported unchanged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or KindOther.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

func typeError(msg string) error {
	return &Error{Kind: KindType, Msg: msg}
}

func valueError(msg string, err error) error {
	return &Error{Kind: KindValue, Msg: msg, Err: err}
}

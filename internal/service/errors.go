package service

type ErrorKind int

const (
	KindInvalid ErrorKind = iota
	KindNotFound
	KindForbidden
	KindConflict
)

// Error adalah kesalahan bisnis yang dibawa service ke layer HTTP.
// Handler yang memetakan Kind ke status code.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalid(msg string) error   { return &Error{Kind: KindInvalid, Message: msg} }
func notFound(msg string) error  { return &Error{Kind: KindNotFound, Message: msg} }
func forbidden(msg string) error { return &Error{Kind: KindForbidden, Message: msg} }
func conflict(msg string) error  { return &Error{Kind: KindConflict, Message: msg} }

package serror

import "fmt"

type SimError struct {
	Err string
}

func New(format string, args ...interface{}) *SimError {
	return &SimError{Err: fmt.Sprintf(format, args...)}
}

func (e *SimError) Error() string {
	return e.Err
}

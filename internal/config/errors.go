package config

import (
	"errors"
	"fmt"
)

// UnknownVariableError reports a key in a values file or override layer
// that no compiled-in default declares.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// TypeMismatchError reports a value whose type does not match the
// variable's declared type.
type TypeMismatchError struct {
	Name string
	Want string
	Got  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("variable %q expects %s, got %v (%T)", e.Name, e.Want, e.Got, e.Got)
}

// IsUnknownVariable reports whether err is an UnknownVariableError.
func IsUnknownVariable(err error) bool {
	var uve *UnknownVariableError
	return errors.As(err, &uve)
}

// IsTypeMismatch reports whether err is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	var tme *TypeMismatchError
	return errors.As(err, &tme)
}

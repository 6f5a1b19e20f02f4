package env

import "fmt"

type Error struct {
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to access environment variable: %s", e.Name)
}

type ConvError struct {
	Name string
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("unable to convert environment variable: %s", e.Name)
}

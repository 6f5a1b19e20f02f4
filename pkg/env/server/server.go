package server

import (
	"os"
	"strconv"

	"github.com/duneview/duneview/pkg/env"
)

const defaultPort = 8080

type Env struct {
	Address string
	Port    int
}

func NewServerEnv() *Env {
	return &Env{}
}

func (e *Env) Populate() error {
	e.Address = os.Getenv("ADDRESS")

	e.Port = defaultPort
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return &env.ConvError{Name: "PORT"}
		}
		e.Port = p
	}

	return nil
}

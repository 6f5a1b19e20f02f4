package handlers

import (
	"net/http"

	duneview "github.com/duneview/duneview/pkg"
)

func Form(cfg *duneview.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderForm(cfg, w, nil)
	})
}

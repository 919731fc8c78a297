// Package site serves the embedded landing page.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the embedded landing page to the mux root. The page
// links out to the JSON endpoints and the API docs.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
}

package greeter

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Body is returned for every request to the root path
const Body = "Hello from Flask on EC2 via GitHub Actions! (v1.0)"

// ContentType is the content type of the greeting
const ContentType = "text/plain; charset=utf-8"

// handler answers the root path and nothing else
type handler struct{}

// NewHandler returns the http.Handler serving the greeting.
// Any method on "/" gets a 200 with Body; every other path is a 404.
func NewHandler() http.Handler {
	return handler{}
}

func (handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		logRequest(req, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, Body)
	logRequest(req, http.StatusOK)
}

func logRequest(req *http.Request, status int) {
	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("remote", req.RemoteAddr).
		Int("status", status).
		Msg("request")
}

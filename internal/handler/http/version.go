package http

import (
	"net/http"
)

// getServerVersion reports the build version as plain text. The client shows
// it on the profile screen next to its own build info.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// routeNotFound answers both unknown paths and known paths requested with
// an unregistered method. Both are reported as 404 so that callers cannot
// probe which routes exist.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, fmt.Sprintf("cannot %s %s", r.Method, r.URL.Path), http.StatusNotFound)
}

// Copyright 2022, 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spashell

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
)

// NormalizedStatus maps an error to the HTTP status code to report to
// clients. Fragments and assets that don't exist are 404, inaccessible ones
// 403, fragments that upstream failed to deliver keep upstream's status, and
// timeouts are 504. Everything else is a 500.
func NormalizedStatus(err error) int {
	var serr *StatusError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		return http.StatusForbidden
	case errors.As(err, &serr) && serr.StatusCode >= 400:
		return serr.StatusCode
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// NormalizedHttpError writes a normalized HTTP error message and status code
// for the specified error, without leaking any internal details of the error.
func NormalizedHttpError(w http.ResponseWriter, err error) {
	code := NormalizedStatus(err)
	http.Error(w, http.StatusText(code), code)
}

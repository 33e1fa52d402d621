// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/community-service/internal/logging"
)

// TransactionMiddleware wraps each mutating request in a database transaction.
// The transaction is rolled back when the handler answers with a status >= 400.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(ww, r.WithContext(txCtx))

				if ww.Status() >= http.StatusBadRequest {
					return fmt.Errorf("request failed with status %d", ww.Status())
				}

				return nil
			})

			if err != nil {
				logger.Debugf("transaction for %s %s not committed: %v", r.Method, r.URL.Path, err)
			}
		})
	}
}

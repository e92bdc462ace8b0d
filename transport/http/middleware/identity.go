package middleware

import (
	"context"
	"net/http"
	"shareit/internal/domains/user/model"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"

	"github.com/google/uuid"
)

// SharerUser stores the acting user from X-Sharer-User-Id in the request context.
// A missing header passes through; endpoints that need a user reject the request themselves.
func (a *appMiddleware) SharerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(constant.RequestHeaderSharerUserID)
		if userID == "" {
			next.ServeHTTP(w, r)

			return
		}

		if err := uuid.Validate(userID); err != nil {
			response.WithError(w, r, failure.BadRequestFromString(model.MessageMissingHeader))

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

type UserFinder interface {
	Find(ctx context.Context, userID int64) (*user.User, error)
}

type Handler struct {
	users UserFinder
}

func NewHandler(users UserFinder) *Handler {
	return &Handler{users: users}
}

type VerifyResponse struct {
	User *user.Data `json:"user"`
}

// Verify answers whether the presented token still belongs to an existing
// user. It must run after RequireToken.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	userID, ok := claims.UserID()
	if !ok {
		web.RespondUnauthorized(w, fmt.Errorf("claim user_id is missing or not an integer: %v", claims["user_id"]), message.Unauthorized)
		return
	}

	u, err := h.users.Find(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondUnauthorized(w, err, message.Unauthorized)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.TokenValid
	web.RespondOK(w, &msg, &VerifyResponse{User: user.NewData(u)})
}

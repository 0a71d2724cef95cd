package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/middleware"
	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
	"github.com/ferdiebergado/parentdesk/internal/platform/validation"
	"github.com/ferdiebergado/parentdesk/internal/user"
)

type Handler struct {
	svc       user.Service
	validator validation.Validator
}

func NewHandler(svc user.Service, validator validation.Validator) *Handler {
	return &Handler{
		svc:       svc,
		validator: validator,
	}
}

type ListResponse struct {
	Users []user.Data `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]user.Data, 0, len(users))
	for i := range users {
		data = append(data, *user.NewData(&users[i]))
	}

	web.RespondOK(w, nil, &ListResponse{Users: data})
}

type UserStats struct {
	ChildrenCount     int `json:"children_count"`
	ConversationCount int `json:"conversation_count"`
}

type DetailsResponse struct {
	User  *user.Data `json:"user"`
	Stats UserStats  `json:"stats"`
}

func (h *Handler) FindUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	details, err := h.svc.Details(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, message.UserNotFound)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &DetailsResponse{
		User: user.NewData(&details.User),
		Stats: UserStats{
			ChildrenCount:     details.ChildrenCount,
			ConversationCount: details.ConversationCount,
		},
	})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ClaimsFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	adminID, ok := claims.UserID()
	if !ok {
		web.RespondUnauthorized(w, errors.New("claim user_id is missing or not an integer"), message.Unauthorized)
		return
	}

	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	if err := auth.RequireNotSelf(claims, userID); err != nil {
		web.RespondForbidden(w, err, message.NoSelfDelete)
		return
	}

	params := user.DeleteParams{
		AdminID:   adminID,
		UserID:    userID,
		IPAddress: middleware.ClientIP(r),
	}
	if err := h.svc.Delete(r.Context(), params); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			web.RespondNotFound(w, err, message.UserNotFound)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.UserDeleted
	web.RespondOK[struct{}](w, &msg, nil)
}

type StatsResponse struct {
	Users         int `json:"users"`
	Children      int `json:"children"`
	Conversations int `json:"conversations"`
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, &StatsResponse{
		Users:         stats.Users,
		Children:      stats.Children,
		Conversations: stats.Conversations,
	})
}

type userIDParam struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// pathUserID reads the {id} path value, writing a 400 response when it is
// not a positive integer.
func (h *Handler) pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		web.RespondBadRequest(w, fmt.Errorf("parse user id %q: %w", raw, err), message.InvalidInput,
			map[string]string{"id": "id must be a number"})
		return 0, false
	}

	if errs := h.validator.ValidateStruct(userIDParam{ID: id}); errs != nil {
		web.RespondBadRequest(w, fmt.Errorf("%w: user id %d", validation.ErrInvalid, id), message.InvalidInput, errs)
		return 0, false
	}

	return id, true
}

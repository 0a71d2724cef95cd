package conversation

import (
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateRequest struct {
	Title string `json:"title,omitempty" validate:"max=255"`
}

type Data struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewData(c *Conversation) *Data {
	return &Data{
		ID:        c.ID,
		Title:     c.Title,
		StartedAt: c.StartedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type ListResponse struct {
	Conversations []Data `json:"conversations"`
}

type ItemResponse struct {
	Conversation *Data `json:"conversation"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	conversations, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]Data, 0, len(conversations))
	for i := range conversations {
		data = append(data, *NewData(&conversations[i]))
	}

	web.RespondOK(w, nil, &ListResponse{Conversations: data})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	c, err := h.svc.Create(r.Context(), ownerID, req.Title)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.ConversationCreated
	web.RespondCreated(w, &msg, &ItemResponse{Conversation: NewData(c)})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	conversationID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"id": "id must be a positive integer"})
		return
	}

	if err := h.svc.Delete(r.Context(), conversationID, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.ConversationNotFound)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.ConversationDeleted
	web.RespondOK[struct{}](w, &msg, nil)
}

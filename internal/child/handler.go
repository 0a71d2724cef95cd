package child

import (
	"errors"
	"fmt"
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

// SaveRequest is the payload of both create and update; an update replaces
// every field.
type SaveRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name,omitempty" validate:"max=100"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender     string `json:"gender" validate:"required,oneof=boy girl other"`
	SchoolYear string `json:"school_year,omitempty" validate:"max=100"`
	SchoolName string `json:"school_name,omitempty" validate:"max=255"`
	Address    string `json:"address,omitempty" validate:"max=500"`
}

func (req *SaveRequest) params(ownerID int64) (Params, error) {
	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return Params{}, fmt.Errorf("parse birth date: %w", err)
	}

	return Params{
		OwnerID:    ownerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  birthDate,
		Gender:     req.Gender,
		SchoolYear: req.SchoolYear,
		SchoolName: req.SchoolName,
		Address:    req.Address,
	}, nil
}

type ListResponse struct {
	Children []Data `json:"children"`
}

type ItemResponse struct {
	Child *Data `json:"child"`
}

var birthDateErrs = map[string]string{"birth_date": "birth_date cannot be in the future"}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	children, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]Data, 0, len(children))
	for i := range children {
		data = append(data, *NewData(&children[i]))
	}

	web.RespondOK(w, nil, &ListResponse{Children: data})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	params, ok := saveParams(w, r, ownerID)
	if !ok {
		return
	}

	c, err := h.svc.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrBirthDateInFuture) {
			web.RespondUnprocessableEntity(w, err, message.InvalidInput, birthDateErrs)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.ChildCreated
	web.RespondCreated(w, &msg, &ItemResponse{Child: NewData(c)})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	childID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"id": "id must be a positive integer"})
		return
	}

	params, ok := saveParams(w, r, ownerID)
	if !ok {
		return
	}

	c, err := h.svc.Update(r.Context(), childID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.ChildNotFound)
		case errors.Is(err, ErrBirthDateInFuture):
			web.RespondUnprocessableEntity(w, err, message.InvalidInput, birthDateErrs)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := message.ChildUpdated
	web.RespondOK(w, &msg, &ItemResponse{Child: NewData(c)})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized)
		return
	}

	childID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"id": "id must be a positive integer"})
		return
	}

	if err := h.svc.Delete(r.Context(), childID, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.ChildNotFound)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := message.ChildDeleted
	web.RespondOK[struct{}](w, &msg, nil)
}

// saveParams reads the payload stored by the DecodePayload and ValidateInput
// middlewares, writing a 400 response when it is missing.
func saveParams(w http.ResponseWriter, r *http.Request, ownerID int64) (Params, bool) {
	req, err := web.ParamsFromContext[SaveRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return Params{}, false
	}

	params, err := req.params(ownerID)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"birth_date": "birth_date must be a date in the format 2006-01-02"})
		return Params{}, false
	}

	return params, true
}

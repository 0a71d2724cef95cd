package web_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
)

type item struct {
	ID int64 `json:"id"`
}

func TestOK(t *testing.T) {
	t.Parallel()

	msg := "Done."
	rec := httptest.NewRecorder()
	web.OK(rec, http.StatusCreated, &msg, &item{ID: 7})

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusCreated)
	}
	web.AssertContentType(t, res)

	body := web.DecodeJSONResponse[web.OKResponse[item]](t, res)
	if body.Message != msg {
		t.Errorf("body.Message = %q, want: %q", body.Message, msg)
	}
	if body.Data.ID != 7 {
		t.Errorf("body.Data.ID = %d, want: %d", body.Data.ID, 7)
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		code    int
		msg     string
	}{
		{"unauthorized", func(w http.ResponseWriter) {
			web.RespondUnauthorized(w, errors.New("expired"), "Unauthorized.")
		}, http.StatusUnauthorized, "Unauthorized."},
		{"forbidden", func(w http.ResponseWriter) {
			web.RespondForbidden(w, errors.New("not admin"), "Forbidden.")
		}, http.StatusForbidden, "Forbidden."},
		{"not found", func(w http.ResponseWriter) {
			web.RespondNotFound(w, errors.New("no rows"), "Not found.")
		}, http.StatusNotFound, "Not found."},
		{"internal error hides reason", func(w http.ResponseWriter) {
			web.RespondInternalServerError(w, errors.New("connection refused"))
		}, http.StatusInternalServerError, "An unexpected error occurred."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tc.respond(rec)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.code {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tc.code)
			}
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
			if body.Message != tc.msg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tc.msg)
			}
		})
	}
}

func TestRespondBadRequest_FieldErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.RespondBadRequest(rec, errors.New("bad id"), "Invalid input.", map[string]string{"id": "id must be a number"})

	res := rec.Result()
	defer res.Body.Close()

	body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
	if got := body.Errors["id"]; got != "id must be a number" {
		t.Errorf("body.Errors[%q] = %q, want: %q", "id", got, "id must be a number")
	}
}

package child_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/parentdesk/internal/auth"
	"github.com/ferdiebergado/parentdesk/internal/child"
	"github.com/ferdiebergado/parentdesk/internal/pkg/message"
	"github.com/ferdiebergado/parentdesk/internal/pkg/web"
	"github.com/ferdiebergado/parentdesk/internal/platform/jwt"
)

const ownerID = int64(7)

var (
	ownerClaims = jwt.Claims{"user_id": json.Number("7"), "email": "parent@example.com"}
	created     = time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
)

func newRequest(method, target string, claims jwt.Claims, payload any) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	ctx := req.Context()
	if claims != nil {
		ctx = auth.ContextWithClaims(ctx, claims)
	}
	if payload != nil {
		ctx = web.NewContextWithParams(ctx, payload)
	}
	return req.WithContext(ctx)
}

func validSave() child.SaveRequest {
	return child.SaveRequest{
		FirstName:  "Lea",
		BirthDate:  "2019-03-01",
		Gender:     child.GenderGirl,
		SchoolName: "Ecole du Parc",
	}
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		claims  jwt.Claims
		svc     *child.StubService
		code    int
		wantIDs []int64
	}{
		{
			name:   "success - lists the caller's children",
			claims: ownerClaims,
			svc: &child.StubService{
				ListFunc: func(_ context.Context, owner int64) ([]child.Child, error) {
					if owner != ownerID {
						return nil, fmt.Errorf("listed children of user %d", owner)
					}
					return []child.Child{
						{ID: 2, UserID: owner, FirstName: "Lea", BirthDate: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), Gender: "girl", CreatedAt: created},
						{ID: 3, UserID: owner, FirstName: "Tom", BirthDate: time.Date(2021, 7, 15, 0, 0, 0, 0, time.UTC), Gender: "boy", CreatedAt: created},
					}, nil
				},
			},
			code:    http.StatusOK,
			wantIDs: []int64{2, 3},
		},
		{
			name:   "error - service fails",
			claims: ownerClaims,
			svc: &child.StubService{
				ListFunc: func(_ context.Context, _ int64) ([]child.Child, error) {
					return nil, child.ErrQueryFailed
				},
			},
			code: http.StatusInternalServerError,
		},
		{
			name: "error - no claims",
			svc:  &child.StubService{},
			code: http.StatusUnauthorized,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			child.NewHandler(tc.svc).List(rec, newRequest(http.MethodGet, "/children", tc.claims, nil))

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tc.code)
			}
			web.AssertContentType(t, res)

			if tc.code != http.StatusOK {
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[child.ListResponse]](t, res)
			if len(body.Data.Children) != len(tc.wantIDs) {
				t.Fatalf("len(body.Data.Children) = %d, want: %d", len(body.Data.Children), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if body.Data.Children[i].ID != id {
					t.Errorf("body.Data.Children[%d].ID = %d, want: %d", i, body.Data.Children[i].ID, id)
				}
			}

			if got := body.Data.Children[0].BirthDate; got != "2019-03-01" {
				t.Errorf("body.Data.Children[0].BirthDate = %q, want: %q", got, "2019-03-01")
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	echo := &child.StubService{
		CreateFunc: func(_ context.Context, params child.Params) (*child.Child, error) {
			if params.OwnerID != ownerID {
				return nil, fmt.Errorf("created child for user %d", params.OwnerID)
			}
			return &child.Child{
				ID: 21, UserID: params.OwnerID, FirstName: params.FirstName, BirthDate: params.BirthDate,
				Gender: params.Gender, SchoolName: params.SchoolName, CreatedAt: created,
			}, nil
		},
	}

	badDate := validSave()
	badDate.BirthDate = "01/03/2019"

	tests := []struct {
		name    string
		claims  jwt.Claims
		payload any
		svc     *child.StubService
		code    int
		wantMsg string
	}{
		{"success - child added", ownerClaims, validSave(), echo, http.StatusCreated, message.ChildCreated},
		{"error - future birth date", ownerClaims, validSave(), &child.StubService{
			CreateFunc: func(_ context.Context, _ child.Params) (*child.Child, error) {
				return nil, child.ErrBirthDateInFuture
			},
		}, http.StatusUnprocessableEntity, message.InvalidInput},
		{"error - service fails", ownerClaims, validSave(), &child.StubService{
			CreateFunc: func(_ context.Context, _ child.Params) (*child.Child, error) {
				return nil, child.ErrQueryFailed
			},
		}, http.StatusInternalServerError, "An unexpected error occurred."},
		{"error - payload missing", ownerClaims, nil, echo, http.StatusBadRequest, message.InvalidInput},
		{"error - unparsable birth date", ownerClaims, badDate, echo, http.StatusBadRequest, message.InvalidInput},
		{"error - no claims", nil, validSave(), echo, http.StatusUnauthorized, message.Unauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			child.NewHandler(tc.svc).Create(rec, newRequest(http.MethodPost, "/children", tc.claims, tc.payload))

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tc.code)
			}
			web.AssertContentType(t, res)

			if tc.code != http.StatusCreated {
				body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
				if body.Message != tc.wantMsg {
					t.Errorf("body.Message = %q, want: %q", body.Message, tc.wantMsg)
				}
				return
			}

			body := web.DecodeJSONResponse[web.OKResponse[child.ItemResponse]](t, res)
			if body.Message != tc.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tc.wantMsg)
			}

			got := body.Data.Child
			if got.ID != 21 || got.FirstName != "Lea" || got.BirthDate != "2019-03-01" || got.SchoolName != "Ecole du Parc" {
				t.Errorf("body.Data.Child = %+v, want the created child", got)
			}
		})
	}
}

func TestHandler_Update(t *testing.T) {
	t.Parallel()

	// only child 11 belongs to the caller
	svc := &child.StubService{
		UpdateFunc: func(_ context.Context, childID int64, params child.Params) (*child.Child, error) {
			if childID != 11 || params.OwnerID != ownerID {
				return nil, fmt.Errorf("update child %d: %w", childID, child.ErrNotFound)
			}
			return &child.Child{ID: childID, UserID: params.OwnerID, FirstName: params.FirstName, BirthDate: params.BirthDate, Gender: params.Gender}, nil
		},
	}

	otherClaims := jwt.Claims{"user_id": json.Number("8")}

	tests := []struct {
		name    string
		claims  jwt.Claims
		id      string
		code    int
		wantMsg string
	}{
		{"success - owner updates", ownerClaims, "11", http.StatusOK, message.ChildUpdated},
		{"error - child of another user", otherClaims, "11", http.StatusNotFound, message.ChildNotFound},
		{"error - missing child", ownerClaims, "12", http.StatusNotFound, message.ChildNotFound},
		{"error - non numeric id", ownerClaims, "abc", http.StatusBadRequest, message.InvalidInput},
		{"error - zero id", ownerClaims, "0", http.StatusBadRequest, message.InvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := newRequest(http.MethodPut, "/children/"+tc.id, tc.claims, validSave())
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			child.NewHandler(svc).Update(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tc.code)
			}

			body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
			if body.Message != tc.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tc.wantMsg)
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	svc := &child.StubService{
		DeleteFunc: func(_ context.Context, childID, owner int64) error {
			if childID != 11 || owner != ownerID {
				return fmt.Errorf("delete child %d: %w", childID, child.ErrNotFound)
			}
			return nil
		},
	}

	tests := []struct {
		name    string
		claims  jwt.Claims
		id      string
		code    int
		wantMsg string
	}{
		{"success - owner deletes", ownerClaims, "11", http.StatusOK, message.ChildDeleted},
		{"error - child of another user", jwt.Claims{"user_id": json.Number("8")}, "11", http.StatusNotFound, message.ChildNotFound},
		{"error - bad id", ownerClaims, "-1", http.StatusBadRequest, message.InvalidInput},
		{"error - no claims", nil, "11", http.StatusUnauthorized, message.Unauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := newRequest(http.MethodDelete, "/children/"+tc.id, tc.claims, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			child.NewHandler(svc).Delete(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tc.code)
			}

			body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
			if body.Message != tc.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tc.wantMsg)
			}
		})
	}
}

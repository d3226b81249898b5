// AngelaMos | 2026
// handler_test.go

package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/authz"
	"github.com/grocerly/backoffice/internal/middleware"
)

func authedRequest(
	method, target, body string,
	sub authz.Subject,
) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, sub.UserID)
	ctx = context.WithValue(ctx, middleware.SubjectKey, sub)
	return req.WithContext(ctx)
}

func TestUpdateMe_AllowsOwnAccount(t *testing.T) {
	repo := new(mockRepository)
	handler := NewHandler(NewService(repo))

	existing := &User{ID: "user-1", Username: "carol", Email: "old@x.test"}
	repo.On("GetByID", mock.Anything, "user-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.ID == "user-1" && u.Email == "new@x.test"
	})).Return(nil)

	sub := authz.Subject{UserID: "user-1", Authenticated: true}
	req := authedRequest(
		http.MethodPut,
		"/users/me",
		`{"email":"new@x.test"}`,
		sub,
	)
	rec := httptest.NewRecorder()

	handler.UpdateMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestUpdateMe_RejectsUnauthenticatedSubject(t *testing.T) {
	repo := new(mockRepository)
	handler := NewHandler(NewService(repo))

	req := httptest.NewRequest(
		http.MethodPut,
		"/users/me",
		strings.NewReader(`{"email":"new@x.test"}`),
	)
	rec := httptest.NewRecorder()

	handler.UpdateMe(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

package transport

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusForbidden, ErrValidation},
		{http.StatusNotFound, ErrValidation},
		{http.StatusConflict, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrTransport},
		{http.StatusServiceUnavailable, ErrTransport},
		{http.StatusMultipleChoices, ErrTransport},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status))
		})
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	e := &Error{Kind: ErrTransport, Method: "GET", Path: "/health", Err: cause}
	assert.Equal(t, "GET /health: transport failure: dial tcp: refused", e.Error())
	assert.ErrorIs(t, e, ErrTransport)
	assert.ErrorIs(t, e, cause)

	e = &Error{Kind: ErrValidation, Status: 404, Method: "GET", Path: "/styles/9", Detail: "not found"}
	assert.Equal(t, "GET /styles/9: request rejected (status 404): not found", e.Error())
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", e)))
	assert.False(t, errors.Is(e, ErrUnauthorized))
}

func TestStatusCodeAndDetail_PlainError(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, 0, StatusCode(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "plain", Detail(err))
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"Incorrect username or password"}`, "Incorrect username or password"},
		{"validation list", `{"detail":[{"loc":["body","username"],"msg":"too short"},{"loc":[],"msg":"bad"}]}`, "username: too short; bad"},
		{"no detail key", `{"error":"x"}`, `{"error":"x"}`},
		{"plain text", "  Bad Gateway \n", "Bad Gateway"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDetail([]byte(tt.body)))
		})
	}
}

func TestParseDetail_Truncates(t *testing.T) {
	long := make([]byte, maxDetailLen+50)
	for i := range long {
		long[i] = 'x'
	}
	got := parseDetail(long)
	assert.Len(t, got, maxDetailLen+3)
}

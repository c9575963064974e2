package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, Status(Validation("bad input")))
	assert.Equal(t, http.StatusUnauthorized, Status(Auth("nope")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("gone")))
	assert.Equal(t, http.StatusUnprocessableEntity, Status(Persistence("save failed", errors.New("disk"))))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal("boom", nil)))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("plain")))
}

func TestMessageHidesCauses(t *testing.T) {
	err := Persistence("there was an error saving the video", errors.New("pq: connection reset"))
	assert.Equal(t, "there was an error saving the video", Message(err))
	assert.NotContains(t, Message(err), "pq:")

	// unclassified errors collapse to a generic message
	assert.Equal(t, "internal server error", Message(errors.New("sql: stack trace")))
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	inner := NotFound("profile not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, Status(wrapped))
	assert.Equal(t, "profile not found", Message(wrapped))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Persistence("save failed", cause)
	assert.ErrorIs(t, err, cause)
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendResponseWritesEnvelopeForFirstErrorCode(t *testing.T) {
	assert.NotZero(t, FUNNELS_INVALID_REQUEST_DATA, "o zero é reservado para 'sem erro interno'")

	recorder := httptest.NewRecorder()
	SendResponse(recorder, http.StatusBadRequest, "", nil, FUNNELS_INVALID_REQUEST_DATA)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), SendInternalError(FUNNELS_INVALID_REQUEST_DATA))
}

func TestSendResponseEmptyBodyWithoutMessageOrData(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendResponse(recorder, http.StatusOK, "", nil, 0)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

package mux

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t, nil)
	_, _ = ts.pitBoss.NewTable(20)

	var expects healthResponse
	assertGet(t, ts.Server, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
	assert.Equal(t, 1, expects.Tables)
}

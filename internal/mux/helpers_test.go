package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cashtable-server/internal/rng"
	"cashtable-server/pkg/room"
	"cashtable-server/pkg/stats"
	"cashtable-server/pkg/wallet"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type testServer struct {
	*httptest.Server
	pitBoss *room.PitBoss
	stats   *stats.Memory
	wallet  *wallet.Memory
}

func newTestServer(t *testing.T, newGenerator func() rng.Generator) *testServer {
	t.Helper()

	if newGenerator == nil {
		newGenerator = func() rng.Generator {
			return rng.NewSeeded(1)
		}
	}

	w := wallet.NewMemory(1000)
	s := stats.NewMemory()
	pb := room.NewPitBoss(w, s, logrus.StandardLogger(), room.Options{NewGenerator: newGenerator})
	ts := httptest.NewServer(NewMux("v1.2.3", pb, s))
	t.Cleanup(func() {
		ts.Close()
		_ = pb.Shutdown(cbg)
	})

	return &testServer{
		Server:  ts,
		pitBoss: pb,
		stats:   s,
		wallet:  w,
	}
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode)
}

package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/topl/brambl-go/pkg/bifrostrpc"
	"github.com/topl/brambl-go/pkg/config"
)

// capturingServer records the last request the node side saw and replies
// with a fixed body.
type capturingServer struct {
	*httptest.Server

	path   string
	header http.Header
	body   []byte
}

func newCapturingServer(t *testing.T, response string) *capturingServer {
	srv := &capturingServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		srv.path = r.URL.Path
		srv.header = r.Header.Clone()
		srv.body = b
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, endpoint string, opts Options) *Client {
	c, err := New(context.Background(), endpoint, opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestGetEndpoint(t *testing.T) {
	c := newTestClient(t, "", Options{})
	require.Equal(t, DefaultEndpoint, c.Endpoint())

	c = newTestClient(t, "http://example:1234/", Options{})
	require.Equal(t, "http://example:1234/", c.Endpoint())
}

func TestMempoolEnvelope(t *testing.T) {
	srv := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1","result":[]}`)
	c := newTestClient(t, srv.URL+"/", Options{})

	_, err := c.GetMempool()
	require.NoError(t, err)

	require.Equal(t, "/nodeView/", srv.path)
	require.Equal(t, "application/json", srv.header.Get("Content-Type"))
	require.Equal(t, DefaultAPIKey, srv.header.Get("x-api-key"))
	require.JSONEq(t, `{"jsonrpc":"2.0","id":"1","method":"mempool","params":[{}]}`, string(srv.body))
}

func TestWithRequestID(t *testing.T) {
	srv := newCapturingServer(t, `{"jsonrpc":"2.0","id":"42","result":{}}`)
	c := newTestClient(t, srv.URL+"/", Options{})

	_, err := c.ChainInfo(WithRequestID("42"))
	require.NoError(t, err)

	var req bifrostrpc.Request
	require.NoError(t, json.Unmarshal(srv.body, &req))
	require.Equal(t, "42", req.ID)
	require.Equal(t, bifrostrpc.JSONRPCVersion, req.JSONRPC)
	require.Equal(t, "info", req.Method)
}

func TestAPIKeyOption(t *testing.T) {
	srv := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1","result":{}}`)
	c := newTestClient(t, srv.URL+"/", Options{APIKey: "secret"})

	_, err := c.ChainInfo()
	require.NoError(t, err)
	require.Equal(t, "secret", srv.header.Get("x-api-key"))

	c.SetAPIKey("rotated")
	_, err = c.ChainInfo()
	require.NoError(t, err)
	require.Equal(t, "rotated", srv.header.Get("x-api-key"))
}

func TestSetEndpoint(t *testing.T) {
	srvOld := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1","result":{}}`)
	srvNew := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1","result":{}}`)
	c := newTestClient(t, srvOld.URL+"/", Options{})

	_, err := c.GetMempool()
	require.NoError(t, err)
	require.Equal(t, "/nodeView/", srvOld.path)

	c.SetEndpoint(srvNew.URL + "/")
	_, err = c.ChainInfo()
	require.NoError(t, err)
	require.Equal(t, "/debug/", srvNew.path)
	require.Equal(t, "/nodeView/", srvOld.path) // untouched by the second call
}

func TestResultPassthrough(t *testing.T) {
	srv := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1","result":{"ok":true}}`)
	c := newTestClient(t, srv.URL+"/", Options{})

	res, err := c.GetMempool()
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(res))
}

func TestNodeError(t *testing.T) {
	srv := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1","error":{"code":1,"message":"x"}}`)
	c := newTestClient(t, srv.URL+"/", Options{})

	_, err := c.GetMempool()
	require.Error(t, err)

	var rpcErr *bifrostrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, int64(1), rpcErr.Code)
	require.Equal(t, "x", rpcErr.Message)
}

func TestTransportError(t *testing.T) {
	t.Run("not JSON", func(t *testing.T) {
		srv := newCapturingServer(t, "gateway says hi")
		c := newTestClient(t, srv.URL+"/", Options{})

		_, err := c.GetMempool()
		require.Error(t, err)
		require.ErrorContains(t, err, "JSON decoding")
	})
	t.Run("HTTP error, unparsable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("nope"))
		}))
		t.Cleanup(srv.Close)
		c := newTestClient(t, srv.URL+"/", Options{})

		_, err := c.GetMempool()
		require.Error(t, err)
		require.ErrorContains(t, err, "HTTP 502")
	})
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		c := newTestClient(t, srv.URL+"/", Options{})

		_, err := c.GetMempool()
		require.Error(t, err)

		var rpcErr *bifrostrpc.Error
		require.False(t, errors.As(err, &rpcErr))
	})
}

func TestNoResult(t *testing.T) {
	srv := newCapturingServer(t, `{"jsonrpc":"2.0","id":"1"}`)
	c := newTestClient(t, srv.URL+"/", Options{})

	_, err := c.GetMempool()
	require.ErrorContains(t, err, "no result returned")
}

func TestNewFromConfig(t *testing.T) {
	c, err := NewFromConfig(context.Background(), config.Config{
		Endpoint: "http://example:1234/",
		APIKey:   "secret",
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	require.Equal(t, "http://example:1234/", c.Endpoint())
	require.Equal(t, "secret", c.apiKey)
}

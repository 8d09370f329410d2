package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "tok_test")
	return srv, client
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/", "")
	assert.Equal(t, "http://localhost:8000", client.BaseURL())
}

func TestNewClientWithoutTokenSendsNoAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"user_id":"u","balances":{}}`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, "").Balances(context.Background(), "u")
	require.NoError(t, err)
}

func TestErrorDetailString(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"bad credentials"}`))
	})

	_, err := client.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "bad credentials", err.Error())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestErrorDetailValidationList(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"field required","type":"value_error.missing"}]}`))
	})

	_, err := client.SubmitKYC(context.Background(), KYCInput{UserID: "alice"})
	require.Error(t, err)
	assert.Equal(t, "field required", err.Error())
}

func TestErrorWithoutJSONBody(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := client.Balances(context.Background(), "alice")
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: upstream down", err.Error())
}

func TestMalformedJSONIsDecodeError(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	})

	_, err := client.Balances(context.Background(), "alice")
	require.Error(t, err)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "/wallet/balances/alice", decodeErr.Path)
}

func TestTransportFailureIsNotDecodeError(t *testing.T) {
	client := NewClient("http://localhost:8000", "")
	client.httpClient.Transport = roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := client.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")

	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestClientConcurrentRequests(t *testing.T) {
	var count atomic.Int32
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		w.Write([]byte(`{"ok":true,"symbol":"BTC-USDT"}`))
	})

	const workers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Health(context.Background())
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(workers), count.Load())
}

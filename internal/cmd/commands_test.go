package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicex/minicex/cli/internal/session"
	"github.com/minicex/minicex/cli/internal/store"
)

func startExchange(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	_, err := execute(t, APICmd(), "", srv.URL)
	require.NoError(t, err)
}

func loadSession(t *testing.T) session.Session {
	t.Helper()
	st, err := store.OpenDefault()
	require.NoError(t, err)
	return session.Get(st)
}

func TestHealthCmdHealthy(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"ok":true,"symbol":"BTC-USDT"}`)
	}))

	out, err := execute(t, HealthCmd(), "", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "API OK (BTC-USDT)")
}

func TestHealthCmdUnreachableStillSucceeds(t *testing.T) {
	isolateHome(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := execute(t, APICmd(), "", url)
	require.NoError(t, err)

	out, err := execute(t, HealthCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "API not reachable")

	_, err = execute(t, HealthCmd(), "", "--strict")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestLoginCmdSavesSession(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/login" && r.Method == http.MethodPost:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "alice", body["user_id"])
			require.Equal(t, "s3cret", body["password"])
			_, _ = io.WriteString(w, `{"access_token":"jwt.abc","user_id":"alice","is_admin":false,"kyc_status":"pending","email":null}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	out, err := execute(t, LoginCmd(), "alice\ns3cret\n")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as alice")

	sess := loadSession(t)
	assert.Equal(t, "jwt.abc", sess.Token)
	assert.Equal(t, "alice", sess.User)
	assert.False(t, sess.IsAdmin)
	assert.Equal(t, "pending", sess.KYCStatus)
}

func TestLoginWithNullEmailClearsPreviousUsersEmail(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"jwt.bob","user_id":"bob","is_admin":false,"kyc_status":"pending","email":null}`)
	}))
	_, err := execute(t, SessionCmd(), "", "save", "--token", "old", "--user", "alice", "--email", "alice@x.com")
	require.NoError(t, err)

	_, err = execute(t, LoginCmd(), "s3cret\n", "--user", "bob")
	require.NoError(t, err)

	sess := loadSession(t)
	assert.Equal(t, "jwt.bob", sess.Token)
	assert.Equal(t, "bob", sess.User)
	assert.Equal(t, "", sess.Email)
	assert.Equal(t, "pending", sess.KYCStatus)
}

func TestSessionSaveWithoutEmailFlagKeepsStoredEmail(t *testing.T) {
	isolateHome(t)
	_, err := execute(t, SessionCmd(), "", "save", "--token", "old", "--user", "alice", "--email", "a@b.com")
	require.NoError(t, err)

	_, err = execute(t, SessionCmd(), "", "save", "--token", "new", "--user", "alice", "--kyc", "submitted")
	require.NoError(t, err)

	sess := loadSession(t)
	assert.Equal(t, "new", sess.Token)
	assert.Equal(t, "a@b.com", sess.Email)
}

func TestLoginCmdBadCredentials(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"bad credentials"}`)
	}))

	_, err := execute(t, LoginCmd(), "alice\nwrong\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed: bad credentials")
	assert.False(t, loadSession(t).LoggedIn())
}

func TestRegisterCmd(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		_, _ = io.WriteString(w, `{"ok":true,"is_admin":true}`)
	}))

	out, err := execute(t, RegisterCmd(), "admin\npw\n")
	require.NoError(t, err)
	assert.Contains(t, out, "registered admin (admin)")
	assert.False(t, loadSession(t).LoggedIn())
}

func TestKYCSubmitUpdatesSession(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/kyc/submit", r.URL.Path)
		require.Equal(t, "Bearer jwt.abc", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["user_id"])
		_, _ = io.WriteString(w, `{"ok":true,"status":"submitted","email":"a@b.com"}`)
	}))
	_, err := execute(t, SessionCmd(), "", "save", "--token", "jwt.abc", "--user", "alice")
	require.NoError(t, err)

	out, err := execute(t, KYCCmd(), "", "submit", "--email", "a@b.com", "--name", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "kyc submitted for a@b.com")

	sess := loadSession(t)
	assert.Equal(t, "submitted", sess.KYCStatus)
	assert.Equal(t, "a@b.com", sess.Email)
	assert.Equal(t, "jwt.abc", sess.Token)
}

func TestBalancesCmd(t *testing.T) {
	isolateHome(t)
	startExchange(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wallet/balances/alice", r.URL.Path)
		require.Equal(t, "Bearer jwt.abc", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"user_id":"alice","kyc_status":"pending","email":null,"balances":{"USDT":{"total":"100","available":"90","locked":"10"},"BTC":{"total":"0","available":"0","locked":"0"}}}`)
	}))
	_, err := execute(t, SessionCmd(), "", "save", "--token", "jwt.abc", "--user", "alice")
	require.NoError(t, err)

	out, err := execute(t, BalancesCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "USDT")
	assert.Contains(t, out, "locked 10")
	assert.Less(t, strings.Index(out, "BTC"), strings.Index(out, "USDT"))
}

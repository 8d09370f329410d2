// Package session stores the authenticated user's session in the durable
// store and derives request headers from it.
package session

import (
	"net/http"

	"github.com/minicex/minicex/cli/internal/store"
)

// Storage keys, one per session field.
const (
	KeyToken     = "token"
	KeyUser      = "user"
	KeyIsAdmin   = "is_admin"
	KeyKYCStatus = "kyc_status"
	KeyEmail     = "email"
)

// DefaultKYCStatus is reported when no KYC status is stored.
const DefaultKYCStatus = "pending"

const (
	adminFlag    = "1"
	nonAdminFlag = "0"
)

// Session is the client-held view of the logged-in user.
type Session struct {
	Token     string
	User      string
	IsAdmin   bool
	KYCStatus string
	Email     string
}

// LoggedIn reports whether a token is present.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// AuthHeaders returns an Authorization bearer header when a token is present,
// and an empty header set otherwise.
func (s Session) AuthHeaders() http.Header {
	h := http.Header{}
	if s.Token != "" {
		h.Set("Authorization", "Bearer "+s.Token)
	}
	return h
}

// SaveOption adjusts what Save writes.
type SaveOption func(map[string]string)

// WithEmail makes Save write email. Without it the stored email is left as is.
func WithEmail(email string) SaveOption {
	return func(values map[string]string) {
		values[KeyEmail] = email
	}
}

// Save overwrites the session in st. An empty kycStatus is stored as
// DefaultKYCStatus. All fields are committed in a single store update.
func Save(st store.Store, token, userID string, isAdmin bool, kycStatus string, opts ...SaveOption) error {
	if kycStatus == "" {
		kycStatus = DefaultKYCStatus
	}
	flag := nonAdminFlag
	if isAdmin {
		flag = adminFlag
	}

	values := map[string]string{
		KeyToken:     token,
		KeyUser:      userID,
		KeyIsAdmin:   flag,
		KeyKYCStatus: kycStatus,
	}
	for _, opt := range opts {
		opt(values)
	}
	return st.Update(values)
}

// Get reads the session from st, filling defaults for missing fields.
func Get(st store.Store) Session {
	token, _ := st.Get(KeyToken)
	user, _ := st.Get(KeyUser)
	flag, _ := st.Get(KeyIsAdmin)
	kyc, _ := st.Get(KeyKYCStatus)
	if kyc == "" {
		kyc = DefaultKYCStatus
	}
	email, _ := st.Get(KeyEmail)

	return Session{
		Token:     token,
		User:      user,
		IsAdmin:   flag == adminFlag,
		KYCStatus: kyc,
		Email:     email,
	}
}

// AuthHeaders reads the session from st and returns its auth headers.
func AuthHeaders(st store.Store) http.Header {
	return Get(st).AuthHeaders()
}

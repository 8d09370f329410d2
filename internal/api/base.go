package api

import (
	"time"

	"github.com/minicex/minicex/cli/internal/config"
	"github.com/minicex/minicex/cli/internal/session"
)

// NewSessionClient builds a client for the configured API URL that
// authenticates with the headers derived from sess.
func NewSessionClient(cfg *config.Config, sess session.Session, timeout ...time.Duration) *Client {
	return newClient(cfg.APIURL(), sess.AuthHeaders(), timeout...)
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/minicex/minicex/cli/internal/config"
	"github.com/minicex/minicex/cli/internal/session"
	"github.com/minicex/minicex/cli/internal/store"
)

// openState opens the durable store and loads the API config from it.
func openState() (*store.FileStore, *config.Config, error) {
	st, err := store.OpenDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return st, config.Load(st), nil
}

// requireSession returns the stored session or an error when no token is stored.
func requireSession(st store.Store) (session.Session, error) {
	sess := session.Get(st)
	if !sess.LoggedIn() {
		return sess, fmt.Errorf("not logged in: run 'cex login' first")
	}
	return sess, nil
}

// prompt writes label to out and reads one trimmed line from reader.
func prompt(reader *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

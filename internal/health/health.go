// Package health probes the exchange API's /health endpoint and reflects the
// outcome in a status indicator.
package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/minicex/minicex/cli/internal/api"
	"github.com/minicex/minicex/cli/internal/ui/components"
)

// Indicator texts.
const (
	TextUnhealthy   = "API?"
	TextUnreachable = "API not reachable"
	TextMalformed   = "API response malformed"
)

// Outcome classifies one probe.
type Outcome int

const (
	Healthy Outcome = iota
	Unhealthy
	Unreachable
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Healthy:
		return "healthy"
	case Unhealthy:
		return "unhealthy"
	case Unreachable:
		return "unreachable"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result describes one probe. Err is set for every outcome except Healthy
// and a well-formed ok=false reply.
type Result struct {
	Outcome Outcome
	Symbol  string
	Err     error
}

// Checker is the part of the API client the prober needs.
type Checker interface {
	Health(ctx context.Context) (*api.Health, error)
}

// Prober runs health checks and writes their outcome to board indicators.
type Prober struct {
	client Checker
	board  *components.Board
}

// NewProber creates a prober that reports to board.
func NewProber(client Checker, board *components.Board) *Prober {
	return &Prober{client: client, board: board}
}

// HealthyText is the indicator text for a healthy reply.
func HealthyText(symbol string) string {
	return "✓ API OK (" + symbol + ")"
}

// PingHealth makes one request to /health and updates the indicator targetID.
// The only returned error is a failed indicator lookup, which happens before
// any request is made. Every probe failure is reported through the indicator
// and the Result.
func (p *Prober) PingHealth(ctx context.Context, targetID string) (Result, error) {
	ind, err := p.board.Lookup(targetID)
	if err != nil {
		return Result{}, err
	}

	res := p.check(ctx)
	switch res.Outcome {
	case Healthy:
		ind.SetText(HealthyText(res.Symbol))
		ind.SetColor(components.ColorHealthy)
	case Unhealthy:
		ind.SetText(TextUnhealthy)
		ind.SetColor(components.ColorFailing)
	case Malformed:
		ind.SetText(TextMalformed)
		ind.SetColor(components.ColorFailing)
	default:
		ind.SetText(TextUnreachable)
		ind.SetColor(components.ColorFailing)
	}

	entry := log.WithField("target", targetID).WithField("outcome", res.Outcome.String())
	if res.Err != nil {
		entry.WithError(res.Err).Debug("health check failed")
	} else {
		entry.Debug("health check done")
	}
	return res, nil
}

func (p *Prober) check(ctx context.Context) Result {
	h, err := p.client.Health(ctx)
	var decodeErr *api.DecodeError
	var statusErr *api.StatusError
	switch {
	case err == nil && h.OK:
		return Result{Outcome: Healthy, Symbol: h.Symbol}
	case err == nil:
		return Result{Outcome: Unhealthy, Symbol: h.Symbol}
	case errors.As(err, &decodeErr):
		return Result{Outcome: Malformed, Err: err}
	case errors.As(err, &statusErr):
		return Result{Outcome: Unhealthy, Err: err}
	default:
		return Result{Outcome: Unreachable, Err: err}
	}
}

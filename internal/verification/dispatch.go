package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/desertwitch/structman/internal/schema"
)

// Policy decides how a run over multiple well-known directories reacts to a
// failing directory.
type Policy int

const (
	// PolicyAbort stops the run at the first failing directory.
	PolicyAbort Policy = iota

	// PolicyContinue verifies all directories and reports every failure.
	PolicyContinue
)

// ParsePolicy resolves a textual policy ("abort" or "continue"). An empty
// string yields [PolicyAbort].
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return PolicyAbort, nil
	case "continue":
		return PolicyContinue, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown policy: %q", s)
	}
}

func (p Policy) String() string {
	if p == PolicyContinue {
		return "continue"
	}

	return "abort"
}

// Result is the outcome of verifying one well-known directory.
type Result struct {
	Kind     schema.Kind
	Path     string
	Report   *Report
	Err      error
	Duration time.Duration
}

// Summary holds the [Result] of every directory attempted during a run.
type Summary struct {
	Results []*Result
}

// Failed returns the [Result] of all failed directories.
func (s *Summary) Failed() []*Result {
	var failed []*Result

	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}

// Total returns a [Report] merged from the [Result] of all directories.
func (s *Summary) Total() *Report {
	total := &Report{}

	for _, r := range s.Results {
		mergeReports(total, r.Report)
	}

	return total
}

// Observer receives progress information during a run over multiple
// well-known directories.
type Observer interface {
	RootStarted(kind schema.Kind, index int, total int)
	RootFinished(result *Result)
}

// VerifyKind verifies the structure of one well-known directory: the path is
// resolved, the matching [schema.Item] looked up in the held configuration and
// the structure verified with [Handler.Verify]. A directory that is not
// configured fails without the filesystem being touched.
func (v *Handler) VerifyKind(kind schema.Kind) (*Report, error) {
	_, report, err := v.verifyKind(kind)

	return report, err
}

func (v *Handler) verifyKind(kind schema.Kind) (string, *Report, error) {
	path, err := v.Resolver.Resolve(kind)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrPathResolution, kind, err)
	}

	item, ok := v.Store.Load().Get(kind)
	if !ok {
		return path, nil, fmt.Errorf("%w: `%s`", ErrFieldNotConfigured, kind)
	}

	report, err := v.Verify(path, item)

	return path, report, err
}

// VerifyAll verifies the given well-known directories in order, or all
// configured directories if none are given. The [Policy] decides whether the
// run stops at the first failing directory. The context is checked between
// directories, a single directory's verification is not interruptible. The
// returned error joins all failures and wraps [ErrVerificationFailed].
func (v *Handler) VerifyAll(ctx context.Context, kinds []schema.Kind, policy Policy, obs Observer) (*Summary, error) {
	if len(kinds) == 0 {
		kinds = v.Store.Load().Configured()
	}

	summary := &Summary{
		Results: make([]*Result, 0, len(kinds)),
	}

	var errs []error

	for i, kind := range kinds {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)

			break
		}

		if obs != nil {
			obs.RootStarted(kind, i, len(kinds))
		}

		start := time.Now()
		path, report, err := v.verifyKind(kind)

		result := &Result{
			Kind:     kind,
			Path:     path,
			Report:   report,
			Err:      err,
			Duration: time.Since(start),
		}
		summary.Results = append(summary.Results, result)

		if obs != nil {
			obs.RootFinished(result)
		}

		if err != nil {
			slog.Error("Structure verification failed.",
				"kind", kind.String(),
				"err", err,
			)

			errs = append(errs, fmt.Errorf("%s: %w", kind, err))

			if policy == PolicyAbort {
				break
			}

			continue
		}

		slog.Info("Structure verified.",
			"kind", kind.String(),
			"path", path,
			"created", len(report.DirsCreated),
		)
	}

	if len(errs) > 0 {
		return summary, fmt.Errorf("%w: %w", ErrVerificationFailed, errors.Join(errs...))
	}

	return summary, nil
}

package issues

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"marvel-metadata/core/decoder"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrRead marks a payload that could not be read at all. It aborts a DecodeAll run.
var ErrRead = errors.New("failed to read payload")

// PayloadResult is the outcome of decoding one payload.
type PayloadResult struct {
	Name   string
	Year   *int
	Result decoder.Result
	// Err is set when the payload could not be decoded (not JSON, no pool).
	Err error
	// Elapsed is the wall time spent decoding.
	Elapsed time.Duration
}

// Service decodes payloads.
type Service struct {
	logger *zap.Logger
	cfg    Config
}

// NewService creates a new decode service.
func NewService(logger *zap.Logger, cfg Config) *Service {
	return &Service{logger: logger, cfg: cfg}
}

// Decode decodes a single payload. Read failures wrap ErrRead; decode failures such as
// decoder.ErrPoolNotFound are returned as is.
func (s *Service) Decode(ctx context.Context, p Payload) (decoder.Result, error) {
	rc, err := p.Open(ctx)
	if err != nil {
		return decoder.Result{}, fmt.Errorf("%w %s: %v", ErrRead, p.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return decoder.Result{}, fmt.Errorf("%w %s: %v", ErrRead, p.Name, err)
	}

	return decoder.Decode(bytes.NewReader(data), p.Year, s.cfg.DecoderOptions())
}

// DecodeAll decodes payloads in parallel, at most Config.Workers at a time. Results
// keep the order of payloads.
//
// A payload that fails to decode is logged and recorded on its result; the others go
// on. Only a read failure or ctx cancellation stops the run.
func (s *Service) DecodeAll(ctx context.Context, payloads []Payload) ([]PayloadResult, error) {
	results := make([]PayloadResult, len(payloads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers())

	for i, p := range payloads {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			res, err := s.Decode(gctx, p)
			elapsed := time.Since(start)

			if errors.Is(err, ErrRead) {
				return err
			}

			results[i] = PayloadResult{Name: p.Name, Year: p.Year, Result: res, Err: err, Elapsed: elapsed}
			s.logResult(results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) logResult(r PayloadResult) {
	fields := []zap.Field{
		zap.String("payload", r.Name),
		zap.Duration("elapsed", r.Elapsed),
	}
	if r.Year != nil {
		fields = append(fields, zap.Int("year", *r.Year))
	}

	if r.Err != nil {
		s.logger.Warn("Skipping payload", append(fields, zap.Error(r.Err))...)
		return
	}

	d := r.Result.Diagnostics
	fields = append(fields,
		zap.Int("pool_size", d.PoolSize),
		zap.Int("decoded", d.Decoded),
		zap.Int("dropped", d.Dropped),
		zap.Int("out_of_range_refs", d.OutOfRangeRefs),
	)
	if d.Dropped > 0 || d.OutOfRangeRefs > 0 {
		s.logger.Warn("Decoded payload with losses", fields...)
		return
	}
	s.logger.Info("Decoded payload", fields...)
}

// Flatten concatenates the issues of all successful results, in result order.
func Flatten(results []PayloadResult) []decoder.IssueData {
	var n int
	for _, r := range results {
		n += len(r.Result.Issues)
	}
	out := make([]decoder.IssueData, 0, n)
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Result.Issues...)
		}
	}
	return out
}

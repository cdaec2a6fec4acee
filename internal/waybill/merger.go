package waybill

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"orderdesk/internal/apperr"
	"orderdesk/internal/logx"
)

// Source identifies one waybill document: either a courier tracking number
// or a direct URL.
type Source struct {
	TrackingNo string
	URL        string
}

// ID returns the identifier used in success/failure reporting.
func (s Source) ID() string {
	if s.TrackingNo != "" {
		return s.TrackingNo
	}
	return s.URL
}

// Result is the outcome of a merge: the output document plus the per-source
// success and failure lists.
type Result struct {
	Document  []byte
	Succeeded []string
	Failed    []string
}

// AllFailedError is returned when not a single source could be fetched.
type AllFailedError struct {
	Failed []string
}

func (e *AllFailedError) Error() string {
	return fmt.Sprintf("all waybill sources failed: %s", strings.Join(e.Failed, ", "))
}

// waybillClient fetches a waybill document from the courier by tracking number.
type waybillClient interface {
	FetchWaybill(ctx context.Context, trackingNo string) ([]byte, error)
}

type counter interface {
	Inc()
}

// Merger fetches waybill documents one at a time and concatenates their
// pages in the caller's original ordering. Failures are isolated per
// source; the merge step itself falls back to the first fetched document.
type Merger struct {
	courier   waybillClient
	httpc     *http.Client
	logger    logx.Logger
	fallbacks counter
	merge     func(docs [][]byte) ([]byte, error)
}

// NewMerger creates a Merger.
func NewMerger(courier waybillClient, httpc *http.Client, logger logx.Logger, fallbacks counter) *Merger {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Merger{
		courier:   courier,
		httpc:     httpc,
		logger:    logger,
		fallbacks: fallbacks,
		merge:     mergePDF,
	}
}

func (m *Merger) fetch(ctx context.Context, s Source) ([]byte, error) {
	if s.TrackingNo != "" {
		return m.courier.FetchWaybill(ctx, s.TrackingNo)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build waybill request: %w", err)
	}
	resp, err := m.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch waybill %s: %w: %w", s.URL, apperr.ErrTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch waybill %s: unexpected status %d", s.URL, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, fmt.Errorf("read waybill %s: %w: %w", s.URL, apperr.ErrTransient, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("fetch waybill %s: empty document", s.URL)
	}
	return body, nil
}

// Merge fetches every source sequentially and returns the consolidated
// document. A single requested source is returned byte-for-byte without a
// merge step. Zero fetched sources fail with AllFailedError.
func (m *Merger) Merge(ctx context.Context, sources []Source) (Result, error) {
	res := Result{
		Succeeded: make([]string, 0, len(sources)),
		Failed:    make([]string, 0),
	}

	docs := make([][]byte, 0, len(sources))
	for _, s := range sources {
		doc, err := m.fetch(ctx, s)
		if err != nil {
			m.logger.Warn("waybill fetch failed",
				logx.String("source", s.ID()),
				logx.Any("err", err),
			)
			res.Failed = append(res.Failed, s.ID())
			continue
		}
		res.Succeeded = append(res.Succeeded, s.ID())
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return Result{Failed: res.Failed}, &AllFailedError{Failed: res.Failed}
	}

	// A single requested source skips the merge transform entirely.
	if len(sources) == 1 || len(docs) == 1 {
		res.Document = docs[0]
		return res, nil
	}

	merged, err := m.merge(docs)
	if err != nil {
		// Malformed input should not lose the batch: fall back to the
		// first fetched document and signal a warning.
		m.logger.Warn("waybill merge failed, returning first document",
			logx.Int("documents", len(docs)),
			logx.Any("err", err),
		)
		if m.fallbacks != nil {
			m.fallbacks.Inc()
		}
		res.Document = docs[0]
		return res, nil
	}

	res.Document = merged
	return res, nil
}

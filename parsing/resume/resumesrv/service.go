package resumesrv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cvlens/cvlens/parsing/resume"
	"github.com/cvlens/cvlens/pkg/errx"
	"github.com/cvlens/cvlens/pkg/logx"
)

// Options tune the parse loop. Zero values fall back to the defaults
// below; tests shrink the backoffs to keep the retry paths fast.
type Options struct {
	MaxRetries     int
	RequestTimeout time.Duration

	// DecodeBackoff applies when the model answered but the reply failed
	// to decode: a formatting fluke is usually fixed by an immediate cheap
	// retry. TransportBackoff applies to everything else (timeouts, rate
	// limits, empty replies) where the call itself failed and needs more
	// room before the next attempt.
	DecodeBackoff    time.Duration
	TransportBackoff time.Duration
}

const (
	defaultMaxRetries       = 3
	defaultRequestTimeout   = 60 * time.Second
	defaultDecodeBackoff    = 1 * time.Second
	defaultTransportBackoff = 2 * time.Second
)

// Service is the parse orchestrator: cache lookup, prompt construction,
// model invocation, response sanitation and decode, retry on failure,
// cache write-back.
type Service struct {
	generator resume.Generator
	cache     resume.Cache // nil disables caching
	extractor resume.TextSource
	opts      Options

	// sleep waits between attempts; replaced in tests to observe the
	// chosen backoff without waiting it out.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService wires the orchestrator. cache may be nil to disable caching;
// extractor may be nil when only Parse (not ParseFile) is needed.
func NewService(generator resume.Generator, cache resume.Cache, extractor resume.TextSource, opts Options) *Service {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.DecodeBackoff <= 0 {
		opts.DecodeBackoff = defaultDecodeBackoff
	}
	if opts.TransportBackoff <= 0 {
		opts.TransportBackoff = defaultTransportBackoff
	}
	return &Service{
		generator: generator,
		cache:     cache,
		extractor: extractor,
		opts:      opts,
		sleep:     sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CacheKey computes the cache key for the exact input text bytes. The
// text is deliberately not normalized: whitespace or case differences
// produce different keys.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Parse extracts a structured record from resume text.
//
// The cache is consulted once, before the retry loop, because cache
// identity is a property of the input rather than of any attempt. Model
// and decode failures are retried up to MaxRetries with the two-tier
// backoff from Options; deterministic failures (empty input) are not.
func (s *Service) Parse(ctx context.Context, text string) (*resume.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, resume.ErrEmptyInput()
	}

	var key string
	if s.cache != nil {
		key = CacheKey(text)
		record, found, err := s.cache.Get(ctx, key)
		if err != nil {
			logx.Warnf("cache lookup failed for %s: %v", key[:12], err)
		} else if found {
			logx.Debugf("cache hit for %s", key[:12])
			return record, nil
		}
	}

	prompt := buildPrompt(text)

	var lastErr error
	for attempt := 1; attempt <= s.opts.MaxRetries; attempt++ {
		record, err := s.attempt(ctx, prompt)
		if err == nil {
			if s.cache != nil {
				if putErr := s.cache.Put(ctx, key, record); putErr != nil {
					logx.Warnf("cache write failed for %s: %v", key[:12], putErr)
				}
			}
			return record, nil
		}
		if ctx.Err() != nil {
			return nil, resume.ErrModelCallFailed(ctx.Err())
		}

		lastErr = err
		if attempt < s.opts.MaxRetries {
			backoff := s.opts.TransportBackoff
			if errx.IsCode(err, resume.CodeDecodeFailed) {
				backoff = s.opts.DecodeBackoff
			}
			logx.Debugf("parse attempt %d/%d failed, retrying in %s: %v",
				attempt, s.opts.MaxRetries, backoff, err)
			if err := s.sleep(ctx, backoff); err != nil {
				return nil, resume.ErrModelCallFailed(err)
			}
		}
	}

	return nil, resume.ErrParseExhausted(s.opts.MaxRetries, lastErr)
}

// attempt performs a single model call with its own timeout and decodes
// the sanitized reply.
func (s *Service) attempt(ctx context.Context, prompt string) (*resume.Record, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	raw, err := s.generator.Generate(callCtx, prompt)
	if err != nil {
		return nil, resume.ErrModelCallFailed(err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, resume.ErrEmptyResponse()
	}

	cleaned := sanitizeResponse(raw)
	var record resume.Record
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return nil, resume.ErrDecodeFailed(err)
	}
	return &record, nil
}

// ParseFile extracts text from the file at path and parses it.
func (s *Service) ParseFile(ctx context.Context, path string) (*resume.Record, error) {
	text, err := s.extractor.Text(path)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, text)
}

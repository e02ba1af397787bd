// Package ai generates marketing copy and logo images. Every failure is
// soft: callers get a fixed Portuguese message (copy) or ok=false (image),
// never an error.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/BruksfildServices01/barberpro/internal/logging"
	"github.com/BruksfildServices01/barberpro/internal/metrics"
)

type Kind string

const (
	KindService Kind = "service"
	KindBio     Kind = "bio"
	KindLogo    Kind = "logo"
)

func (k Kind) ValidCopy() bool {
	return k == KindService || k == KindBio
}

const (
	MsgNotConfigured = "API Key não configurada."
	MsgEmpty         = "Descrição indisponível no momento."
	MsgFailed        = "Não foi possível gerar a descrição automaticamente."
)

var errEmpty = errors.New("empty generation")

type Service struct {
	gen     Generator
	breaker *gobreaker.CircuitBreaker[string]
	timeout time.Duration
	log     zerolog.Logger
}

// New wraps gen with a circuit breaker. A nil gen yields an unconfigured
// service that answers MsgNotConfigured without calling out.
func New(gen Generator, timeout time.Duration) *Service {
	log := logging.Component(logging.ComponentAI)

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
		// An empty answer is not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errEmpty)
		},
	})

	return &Service{
		gen:     gen,
		breaker: breaker,
		timeout: timeout,
		log:     log,
	}
}

func (s *Service) Configured() bool {
	return s.gen != nil
}

// GenerateCopy writes a short description of a service or a professional.
func (s *Service) GenerateCopy(ctx context.Context, kind Kind, name, keywords string) string {
	if !s.Configured() {
		metrics.AIRequests.WithLabelValues(string(kind), metrics.ResultSkipped).Inc()
		return MsgNotConfigured
	}

	text, err := s.execute(ctx, kind, func(ctx context.Context) (string, error) {
		out, err := s.gen.GenerateText(ctx, copyPrompt(kind, name, keywords))
		if err == nil && out == "" {
			return "", errEmpty
		}
		return out, err
	})

	switch {
	case errors.Is(err, errEmpty):
		return MsgEmpty
	case err != nil:
		return MsgFailed
	}
	return text
}

// GenerateLogo returns the generated image as a data URI.
func (s *Service) GenerateLogo(ctx context.Context, prompt string) (string, bool) {
	if !s.Configured() {
		metrics.AIRequests.WithLabelValues(string(KindLogo), metrics.ResultSkipped).Inc()
		return "", false
	}

	uri, err := s.execute(ctx, KindLogo, func(ctx context.Context) (string, error) {
		data, mime, err := s.gen.GenerateImage(ctx, prompt)
		if err != nil {
			return "", err
		}
		if mime == "" {
			mime = "image/png"
		}
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
	})
	if err != nil {
		return "", false
	}
	return uri, true
}

func (s *Service) execute(ctx context.Context, kind Kind, fn func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	out, err := s.breaker.Execute(func() (string, error) {
		return fn(ctx)
	})

	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultError
		s.log.Error().Err(err).Str("kind", string(kind)).Dur("elapsed", time.Since(start)).Msg("generation failed")
	}
	metrics.AIRequests.WithLabelValues(string(kind), result).Inc()
	return out, err
}

func copyPrompt(kind Kind, name, keywords string) string {
	if kind == KindBio {
		return fmt.Sprintf(
			"Escreva uma biografia profissional curta e confiante para um barbeiro chamado %q. Use estas características: %s. Máximo de 2 frases.",
			name, keywords,
		)
	}
	return fmt.Sprintf(
		"Escreva uma descrição curta, atrativa e sofisticada para um serviço de barbearia chamado %q. Use estas palavras-chave/características: %s. Máximo de 2 frases.",
		name, keywords,
	)
}

package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/BruksfildServices01/barberpro/internal/metrics"
)

type fakeGenerator struct {
	text    string
	image   []byte
	mime    string
	err     error
	prompts []string
	block   bool
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.image, f.mime, f.err
}

func TestGenerateCopy_NotConfigured(t *testing.T) {
	s := New(nil, time.Second)
	before := testutil.ToFloat64(metrics.AIRequests.WithLabelValues("service", metrics.ResultSkipped))

	if got := s.GenerateCopy(context.Background(), KindService, "Corte", "moderno"); got != MsgNotConfigured {
		t.Fatalf("expected %q, got %q", MsgNotConfigured, got)
	}
	if _, ok := s.GenerateLogo(context.Background(), "logo"); ok {
		t.Fatalf("unconfigured logo generation must fail softly")
	}

	after := testutil.ToFloat64(metrics.AIRequests.WithLabelValues("service", metrics.ResultSkipped))
	if after != before+1 {
		t.Fatalf("expected skipped counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestGenerateCopy(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{"ok", &fakeGenerator{text: "Um corte impecável."}, "Um corte impecável."},
		{"empty", &fakeGenerator{text: ""}, MsgEmpty},
		{"failure", &fakeGenerator{err: errors.New("quota")}, MsgFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.gen, time.Second)
			if got := s.GenerateCopy(context.Background(), KindService, "Corte", "tesoura"); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGenerateCopy_PromptByKind(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	s := New(gen, time.Second)

	s.GenerateCopy(context.Background(), KindBio, "André", "degradê")
	s.GenerateCopy(context.Background(), KindService, "Barba", "toalha quente")

	if !strings.Contains(gen.prompts[0], "biografia") || !strings.Contains(gen.prompts[0], `"André"`) {
		t.Fatalf("unexpected bio prompt %q", gen.prompts[0])
	}
	if !strings.Contains(gen.prompts[1], "serviço de barbearia") || !strings.Contains(gen.prompts[1], "toalha quente") {
		t.Fatalf("unexpected service prompt %q", gen.prompts[1])
	}
}

func TestGenerateCopy_Timeout(t *testing.T) {
	s := New(&fakeGenerator{block: true}, 10*time.Millisecond)
	if got := s.GenerateCopy(context.Background(), KindService, "Corte", ""); got != MsgFailed {
		t.Fatalf("expected failure message on timeout, got %q", got)
	}
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("unavailable")}
	s := New(gen, time.Second)

	for i := 0; i < 5; i++ {
		s.GenerateCopy(context.Background(), KindService, "Corte", "")
	}
	calls := len(gen.prompts)

	if got := s.GenerateCopy(context.Background(), KindService, "Corte", ""); got != MsgFailed {
		t.Fatalf("expected failure message while open, got %q", got)
	}
	if len(gen.prompts) != calls {
		t.Fatalf("open breaker must not call the generator")
	}
}

func TestGenerateLogo(t *testing.T) {
	s := New(&fakeGenerator{image: []byte{1, 2, 3}}, time.Second)
	uri, ok := s.GenerateLogo(context.Background(), "barbearia vintage")
	if !ok || uri != "data:image/png;base64,AQID" {
		t.Fatalf("unexpected logo %q ok=%v", uri, ok)
	}

	s = New(&fakeGenerator{image: []byte{1}, mime: "image/jpeg"}, time.Second)
	if uri, _ := s.GenerateLogo(context.Background(), "x"); !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Fatalf("mime type should be preserved, got %q", uri)
	}

	s = New(&fakeGenerator{err: errNoImage}, time.Second)
	if _, ok := s.GenerateLogo(context.Background(), "x"); ok {
		t.Fatalf("expected soft failure")
	}
}

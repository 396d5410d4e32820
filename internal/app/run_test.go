package app

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider returns a fixed result without any network activity.
type fakeProvider struct {
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestGeneratePassesTextThrough(t *testing.T) {
	fake := &fakeProvider{text: "feat: add login form"}

	got, err := generate(context.Background(), fake, "prompt")
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if got != "feat: add login form" {
		t.Errorf("generate() = %q, want %q", got, "feat: add login form")
	}
	if fake.calls != 1 {
		t.Errorf("provider called %d times, want 1", fake.calls)
	}
}

func TestGenerateUnwrapsFencedOutput(t *testing.T) {
	fake := &fakeProvider{text: "```text\nfix: resolve crash\n```"}

	got, err := generate(context.Background(), fake, "prompt")
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if got != "fix: resolve crash" {
		t.Errorf("generate() = %q, want %q", got, "fix: resolve crash")
	}
}

func TestGeneratePropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	fake := &fakeProvider{err: wantErr}

	_, err := generate(context.Background(), fake, "prompt")
	if !errors.Is(err, wantErr) {
		t.Errorf("generate() error = %v, want %v", err, wantErr)
	}
}

func TestRunRequiresKey(t *testing.T) {
	err := Run(context.Background(), Config{Description: "some change"})
	if err == nil {
		t.Fatal("Run() with no key should fail")
	}
}

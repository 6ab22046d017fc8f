package log

import (
	"context"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  ZapConfig
	}{
		{name: "development console", cfg: ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: ZapConfig{Level: "info", Mode: ModeProduction, Encoding: "json"}},
		{name: "bad level falls back", cfg: ZapConfig{Level: "loud", Encoding: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
		})
	}
}

func TestNopLoggerAcceptsNilContext(t *testing.T) {
	l := NewNop()
	l.Warn(nil, "nil ctx is tolerated")
	l.Errorf(context.TODO(), "value: %s", "x")
}

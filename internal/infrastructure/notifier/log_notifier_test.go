package notifier

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

func TestLogNotifierWritesNotification(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	n := NewLogNotifier(logger, nil)

	notification := domain.NewDepositNotification(
		"user@example.com",
		decimal.NewFromInt(100),
		decimal.NewFromInt(150),
	)
	if err := n.Notify(context.Background(), notification); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "user@example.com") {
		t.Fatalf("expected recipient in log output, got %q", out)
	}
	if !strings.Contains(out, "Deposit Money") {
		t.Fatalf("expected subject in log output, got %q", out)
	}
}

package integration

import (
	"context"
	"io"
	"testing"

	"fadedup/internal/app"
)

func TestCanceledContextExit130(t *testing.T) {
	fa := write(t, "cancel.fa", corpus(4, 50, 4, 200))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, threads := range []string{"1", "4"} {
		code := app.RunContext(ctx, []string{"--threads", threads, fa}, io.Discard, io.Discard)
		if code != 130 {
			t.Fatalf("threads=%s: expected exit 130 on cancel, got %d", threads, code)
		}
	}
}

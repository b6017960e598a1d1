package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "-" {
		t.Fatalf("RequestID(empty) = %q, want -", got)
	}

	ctx := WithRequestID(context.Background(), "r-1")
	if got := RequestID(ctx); got != "r-1" {
		t.Fatalf("RequestID = %q, want r-1", got)
	}
}

func TestTimeLogsOpAndError(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "r-2")

	func() (err error) {
		defer Time(ctx, "zip.lookup")(&err)
		return errors.New("not mapped")
	}()

	line := buf.String()
	for _, want := range []string{"req_id=r-2", "op=zip.lookup", "err=not mapped"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestTimeWithoutError(t *testing.T) {
	buf := captureLog(t)

	Time(context.Background(), "noop")(nil)

	if line := buf.String(); strings.Contains(line, "err=") || !strings.Contains(line, "op=noop") {
		t.Fatalf("unexpected log line %q", line)
	}
}

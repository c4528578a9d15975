package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/portfolio/contact-api/internal/core/ports"
)

func TestRecorder_Logins(t *testing.T) {
	before := testutil.ToFloat64(LoginsTotal.WithLabelValues(ports.LoginNotAdmin))
	Recorder{}.LoginAttempt(ports.LoginNotAdmin)

	if got := testutil.ToFloat64(LoginsTotal.WithLabelValues(ports.LoginNotAdmin)); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestRecorder_MessageDedup(t *testing.T) {
	hits := testutil.ToFloat64(MessageDedupTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(MessageDedupTotal.WithLabelValues("miss"))

	r := Recorder{}
	r.MessageDedup(true)
	r.MessageDedup(false)
	r.MessageDedup(false)

	if got := testutil.ToFloat64(MessageDedupTotal.WithLabelValues("hit")); got != hits+1 {
		t.Fatalf("hit: expected %v, got %v", hits+1, got)
	}
	if got := testutil.ToFloat64(MessageDedupTotal.WithLabelValues("miss")); got != misses+2 {
		t.Fatalf("miss: expected %v, got %v", misses+2, got)
	}
}

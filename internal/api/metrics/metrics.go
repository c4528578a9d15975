// Package metrics defines and registers all custom Prometheus metrics for the
// contact API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/portfolio/contact-api/internal/core/ports"
)

const namespace = "contact_api"

// ── Access guard ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests stopped by the access guard.
// Label:
//   - reason: "no_token", "invalid", "expired" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the access guard.",
	},
	[]string{"reason"},
)

// LoginsTotal counts credential verifications.
// Label:
//   - result: "success", "not_found", "bad_password" or "not_admin"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of credential verifications, by result.",
	},
	[]string{"result"},
)

// ── Resources ────────────────────────────────────────────────────────────────

var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

var MessagesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_created_total",
		Help:      "Total number of contact messages stored.",
	},
)

// MessageDedupTotal counts contact form deduplication decisions.
// Label:
//   - result: "hit" (resubmission, replayed) or "miss" (new submission)
var MessageDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "message_dedup_total",
		Help:      "Total number of contact form dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// Recorder forwards service events to the collectors above.
type Recorder struct{}

var _ ports.ServiceMetrics = Recorder{}

func (Recorder) LoginAttempt(result string) {
	LoginsTotal.WithLabelValues(result).Inc()
}

func (Recorder) UserCreated() {
	UsersCreatedTotal.Inc()
}

func (Recorder) MessageCreated() {
	MessagesCreatedTotal.Inc()
}

func (Recorder) MessageDedup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	MessageDedupTotal.WithLabelValues(result).Inc()
}

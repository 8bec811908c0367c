// Package metrics defines and registers all custom Prometheus metrics for the
// CorpHunt accounts API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "corphunt"

// SignupRequestsTotal counts code requests on the signup flow.
// Label:
//   - result: "accepted", "conflict", "delivery_failed", or "error"
var SignupRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_requests_total",
		Help:      "Total number of signup code requests, by result.",
	},
	[]string{"result"},
)

// OTPVerificationsTotal counts verification attempts.
// Label:
//   - result: "success", "not_found", "expired", "invalid_code", "conflict", or "error"
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of OTP verification attempts, by result.",
	},
	[]string{"result"},
)

// OTPResendsTotal counts resend requests on open signup flows.
// Label:
//   - result: "accepted", "not_found", "delivery_failed", or "error"
var OTPResendsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_resends_total",
		Help:      "Total number of OTP resend requests, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// MailSendDuration measures how long a single SMTP delivery takes.
// Label:
//   - kind: "verification" or "welcome"
var MailSendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_send_duration_seconds",
		Help:      "Duration of SMTP deliveries from dial to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

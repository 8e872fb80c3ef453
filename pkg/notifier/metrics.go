package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arkivo_slack",
		Name:      "messages_total",
		Help:      "Number of messages posted to Slack, by result.",
	}, []string{"result"})

	skippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arkivo_slack",
		Name:      "skipped_total",
		Help:      "Number of sync results that produced no message, by reason.",
	}, []string{"reason"})
)

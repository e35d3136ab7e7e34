package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_http_requests_total",
		Help: "Number of HTTP requests served.",
	}, []string{"method"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "haven_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	intakesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haven_animal_intakes_total",
		Help: "Animals taken into the shelter, including re-intakes.",
	})

	outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_animal_outcomes_total",
		Help: "Recorded outcomes by type.",
	}, []string{"type"})

	applicationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "haven_adoption_applications_total",
		Help: "Adoption applications submitted.",
	})

	mailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_mails_sent_total",
		Help: "Emails handed to the SMTP relay, by result.",
	}, []string{"result"})
)

package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "sipdeck"

// Answer outcomes
const (
	AnswerAccepted = "accepted"
	AnswerRejected = "rejected"
)

// Metrics holds the collectors of the bot on a registry of its own.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	cardsPlayed    *prometheus.CounterVec
	answers        *prometheus.CounterVec
	effectsApplied *prometheus.CounterVec
	activeSessions prometheus.Gauge
	noPlayableCard prometheus.Counter
}

// New creates the collectors and registers them together with the Go runtime collectors
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		cardsPlayed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cards_played_total",
			Help:      "Total number of cards dealt, partitioned by category.",
		}, []string{"category"}),
		answers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Total number of submitted answers, partitioned by outcome.",
		}, []string{"outcome"}),
		effectsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "effects_applied_total",
			Help:      "Total amount handed out by applied effects, partitioned by effect type.",
		}, []string{"type"}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of sessions currently stored.",
		}),
		noPlayableCard: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_playable_card_total",
			Help:      "Number of times no card could be selected for a session.",
		}),
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CardPlayed counts a dealt card
func (m *Metrics) CardPlayed(category string) {
	if m == nil {
		return
	}
	m.cardsPlayed.WithLabelValues(category).Inc()
}

// AnswerSubmitted counts an answer by outcome
func (m *Metrics) AnswerSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.answers.WithLabelValues(outcome).Inc()
}

// EffectApplied adds the amount handed out to one participant
func (m *Metrics) EffectApplied(effectType string, amount int) {
	if m == nil {
		return
	}
	m.effectsApplied.WithLabelValues(effectType).Add(float64(amount))
}

// SetActiveSessions records the number of stored sessions
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

// NoPlayableCard counts an exhausted deck
func (m *Metrics) NoPlayableCard() {
	if m == nil {
		return
	}
	m.noPlayableCard.Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to shut down metrics server", zap.Error(err))
		}
	}()

	logger.Info("serving metrics", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

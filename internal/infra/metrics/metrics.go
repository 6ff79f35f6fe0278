package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quiz"

// Metrics счетчики движка тестов. Nil-значение допустимо: вызовы ничего не делают.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	Answers           *prometheus.CounterVec
	SessionsCompleted prometheus.Counter
	RecordFailures    prometheus.Counter
	QuestionsAdded    *prometheus.CounterVec
}

// New создает счетчики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Number of started test sessions.",
		}),
		Answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Number of accepted answers by result.",
		}, []string{"result"}),
		SessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_completed_total",
			Help:      "Number of completed and recorded test sessions.",
		}),
		RecordFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_record_failures_total",
			Help:      "Number of failed attempts to persist a result.",
		}),
		QuestionsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_added_total",
			Help:      "Number of questions added to the bank by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.SessionsStarted, m.Answers, m.SessionsCompleted, m.RecordFailures, m.QuestionsAdded)
	return m
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
}

// Answer учитывает принятый ответ
func (m *Metrics) Answer(correct bool) {
	if m == nil {
		return
	}
	result := "wrong"
	if correct {
		result = "correct"
	}
	m.Answers.WithLabelValues(result).Inc()
}

func (m *Metrics) SessionCompleted() {
	if m == nil {
		return
	}
	m.SessionsCompleted.Inc()
}

func (m *Metrics) RecordFailure() {
	if m == nil {
		return
	}
	m.RecordFailures.Inc()
}

func (m *Metrics) QuestionAdded(kind string) {
	if m == nil {
		return
	}
	m.QuestionsAdded.WithLabelValues(kind).Inc()
}

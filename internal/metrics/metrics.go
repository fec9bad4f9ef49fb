// Package metrics содержит prometheus-коллекторы консоли участников.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const namespace = "gym"

// Metrics объединяет счётчики операций и количество участников.
type Metrics struct {
	registrations *prometheus.CounterVec
	tierFallbacks prometheus.Counter
	logins        *prometheus.CounterVec
	adminAccess   *prometheus.CounterVec
	members       prometheus.Gauge
}

// New регистрирует коллекторы в reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		registrations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registered members by subscription tier.",
		}, []string{"tier"}),
		tierFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_fallbacks_total",
			Help:      "Registrations where an invalid tier choice fell back to Basic.",
		}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		adminAccess: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_access_total",
			Help:      "Admin PIN checks by result.",
		}, []string{"result"}),
		members: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "members",
			Help:      "Members currently held by the store.",
		}),
	}
}

// ObserveRegistration учитывает успешную регистрацию.
func (m *Metrics) ObserveRegistration(tier models.Tier, defaulted bool) {
	m.registrations.WithLabelValues(strconv.Itoa(int(tier))).Inc()
	if defaulted {
		m.tierFallbacks.Inc()
	}
}

// ObserveLogin учитывает попытку входа.
func (m *Metrics) ObserveLogin(found bool) {
	m.logins.WithLabelValues(result(found, "success", "not_found")).Inc()
}

// ObserveAdminAccess учитывает проверку PIN администратора.
func (m *Metrics) ObserveAdminAccess(granted bool) {
	m.adminAccess.WithLabelValues(result(granted, "granted", "denied")).Inc()
}

// SetMembers выставляет текущее количество участников.
func (m *Metrics) SetMembers(n int) {
	m.members.Set(float64(n))
}

func result(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

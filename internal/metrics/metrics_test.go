package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRegistration(models.TierStandard, false)
	m.ObserveRegistration(models.TierBasic, true)
	m.ObserveRegistration(models.TierBasic, false)
	m.ObserveLogin(true)
	m.ObserveLogin(false)
	m.ObserveLogin(false)
	m.ObserveAdminAccess(false)
	m.SetMembers(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("2")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.registrations.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tierFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adminAccess.WithLabelValues("denied")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.adminAccess.WithLabelValues("granted")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.members))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() {
		New(reg)
	})
}

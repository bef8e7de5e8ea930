package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuthAttemptsTotal_Increments(t *testing.T) {
	counter := AuthAttemptsTotal.WithLabelValues("login", OutcomeRejected)
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestExpensesDeletedTotal_Add(t *testing.T) {
	counter := ExpensesDeletedTotal.WithLabelValues("all")
	before := testutil.ToFloat64(counter)

	counter.Add(3)

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestExpensesCreatedTotal_HasNoLabels(t *testing.T) {
	before := testutil.ToFloat64(ExpensesCreatedTotal)

	ExpensesCreatedTotal.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(ExpensesCreatedTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(ExpensesCreatedTotal))
}

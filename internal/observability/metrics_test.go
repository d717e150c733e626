package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStoreOperation(t *testing.T) {
	counter := storeOperations.WithLabelValues("exercise", "create", OutcomeConstraint)
	before := testutil.ToFloat64(counter)

	RecordStoreOperation("exercise", "create", OutcomeConstraint)
	RecordStoreOperation("exercise", "create", OutcomeConstraint)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecordCascade(t *testing.T) {
	counter := cascadeDeletes.WithLabelValues("workout")
	before := testutil.ToFloat64(counter)

	RecordCascade("workout", 3)
	RecordCascade("workout", 0)
	RecordCascade("workout", -1)

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := httpRequests.WithLabelValues("GET", "/exercises/:id", "404")
	before := testutil.ToFloat64(counter)

	RecordHTTPRequest("GET", "/exercises/:id", 404, 3*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(httpLatency, "liftlog_http_request_duration_seconds"), 1)
}

package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTPRequestCountsByLabels(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/users", "POST", "201"))

	ObserveHTTPRequest("/api/users", "POST", 201, 5*time.Millisecond)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("/api/users", "POST", "201"))
	assert.Equal(t, before+1, after)
}

func TestObserveHTTPRequestUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "GET", "404"))

	ObserveHTTPRequest("", "GET", 404, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestRecordExerciseLogged(t *testing.T) {
	before := testutil.ToFloat64(exercisesLogged)
	RecordExerciseLogged()
	assert.Equal(t, before+1, testutil.ToFloat64(exercisesLogged))
}

// Package metrics counts workflow outcomes and remote responses.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is used by the workflow engine and the remote client.
type Recorder interface {
	RecordOperation(operation, outcome string)
	RecordRemoteStatus(statusCode int)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordOperation(string, string) {}
func (Nop) RecordRemoteStatus(int)         {}

// Collector is the prometheus backed Recorder.
type Collector struct {
	operations *prometheus.CounterVec
	remote     *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "talentx_workflow_operations_total",
			Help: "Workflow operations by outcome.",
		}, []string{"operation", "outcome"}),
		remote: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "talentx_remote_responses_total",
			Help: "Responses of the remote job board service by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(c.operations, c.remote)

	return c
}

func (c *Collector) RecordOperation(operation, outcome string) {
	c.operations.WithLabelValues(operation, outcome).Inc()
}

func (c *Collector) RecordRemoteStatus(statusCode int) {
	c.remote.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// WriteTextfile dumps the registry in the node exporter textfile format.
// An empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, g)
}

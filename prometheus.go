package p2p

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus instruments the codec and integrity layer
type Prometheus struct {
	PacketsDecoded    prometheus.Counter
	PacketsHandled    prometheus.Counter
	Malformed         prometheus.Counter
	Oversized         prometheus.Counter
	IntegrityFailures prometheus.Counter

	once sync.Once
}

var prom = new(Prometheus)

func init() {
	prom.Setup()
}

func (p *Prometheus) Setup() {
	p.once.Do(func() {

		nc := func(name, help string) prometheus.Counter {
			c := prometheus.NewCounter(prometheus.CounterOpts{
				Name: name,
				Help: help,
			})
			prometheus.MustRegister(c)
			return c
		}
		p.PacketsDecoded = nc("p2p_packets_decoded", "Total number of packets successfully decoded")
		p.PacketsHandled = nc("p2p_packets_handled", "Total number of packets handled")
		p.Malformed = nc("p2p_packets_malformed", "Total number of packets rejected for malformed wire shape")
		p.Oversized = nc("p2p_packets_oversized", "Total number of packets rejected for exceeding the element cap")
		p.IntegrityFailures = nc("p2p_integrity_failures", "Total number of content hash mismatches")

	})
}

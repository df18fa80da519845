package rpcclient

import "github.com/prometheus/client_golang/prometheus"

// Metrics used in monitoring service.
var (
	rpcCalled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of RPC calls performed, by route and method",
			Name:      "rpc_called",
			Namespace: "brambl",
		},
		[]string{"route", "method"},
	)

	rpcFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of RPC calls that ended with an error, by route and method",
			Name:      "rpc_failed",
			Namespace: "brambl",
		},
		[]string{"route", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		rpcCalled,
		rpcFailed,
	)
}

package common

import (
	"reflect"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// set by the linker
var (
	version   = "unknown"
	gitcommit = "unknown"
)

// Metrics holds prometheus collectors for the address codec
type Metrics struct {
	AddressDecodes *prometheus.CounterVec
	AddressEncodes *prometheus.CounterVec
	AppInfo        *prometheus.GaugeVec
}

// Labels represents a collection of label name -> value mappings.
type Labels = prometheus.Labels

// NewMetrics returns struct holding unregistered prometheus collectors
func NewMetrics(coin string) *Metrics {
	metrics := Metrics{}

	metrics.AddressDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "pivxaddr_address_decodes",
			Help:        "Total number of decoded addresses by network, class and status",
			ConstLabels: Labels{"coin": coin},
		},
		[]string{"network", "class", "status"},
	)
	metrics.AddressEncodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "pivxaddr_address_encodes",
			Help:        "Total number of encoded addresses by network, class and status",
			ConstLabels: Labels{"coin": coin},
		},
		[]string{"network", "class", "status"},
	)
	metrics.AppInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "pivxaddr_app_info",
			Help:        "Information about the address codec build",
			ConstLabels: Labels{"coin": coin},
		},
		[]string{"version", "gitcommit", "goversion"},
	)
	metrics.AppInfo.With(Labels{
		"version":   version,
		"gitcommit": gitcommit,
		"goversion": runtime.Version(),
	}).Set(1)

	return &metrics
}

// GetMetrics returns struct holding prometheus collectors registered in the given registerer,
// nil registerer means the default prometheus registry
func GetMetrics(coin string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	metrics := NewMetrics(coin)

	v := reflect.ValueOf(*metrics)
	for i := 0; i < v.NumField(); i++ {
		c := v.Field(i).Interface().(prometheus.Collector)
		err := reg.Register(c)
		if err != nil {
			return nil, err
		}
	}

	return metrics, nil
}

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics содержит метрики Prometheus для проверок номеров
type Metrics struct {
	registry    *prometheus.Registry
	ChecksTotal *prometheus.CounterVec
	BatchSize   prometheus.Histogram
}

// New создает метрики в собственном реестре.
// Отдельный реестр позволяет создавать Metrics несколько раз (например, в тестах).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardbrand_checks_total",
			Help: "Total number of card numbers checked, by brand and Luhn result",
		}, []string{"brand", "valid"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardbrand_batch_size",
			Help:    "Number of card numbers per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// RecordCheck учитывает одну проверку
func (m *Metrics) RecordCheck(brand string, valid bool) {
	m.ChecksTotal.WithLabelValues(brand, strconv.FormatBool(valid)).Inc()
}

// RecordBatch учитывает размер пакетной проверки
func (m *Metrics) RecordBatch(size int) {
	m.BatchSize.Observe(float64(size))
}

// Handler отдает метрики в формате Prometheus; сжатие делает middleware роутера
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

// Nop ничего не учитывает; используется, когда метрики выключены
type Nop struct{}

func (Nop) RecordCheck(string, bool) {}

func (Nop) RecordBatch(int) {}

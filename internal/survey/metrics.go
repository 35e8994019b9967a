package survey

import (
	"fmt"

	"github.com/heatmaphero/coverage.report/internal/heatmap"
)

// Metric identifies one of the visualisable survey measurements.
type Metric string

const (
	MetricRSSI          Metric = "rssi"
	MetricLatency       Metric = "latency"
	MetricTCPThroughput Metric = "tcp_throughput"
	MetricUDPThroughput Metric = "udp_throughput"
	MetricPacketLoss    Metric = "packet_loss"
	MetricJitter        Metric = "jitter"
)

// MetricInfo is the static presentation row for a metric: display label,
// renderer colormap identifier, and whether zero values mean
// "not measured" (throughput-class metrics, filtered before dedupe).
type MetricInfo struct {
	Metric     Metric `json:"metric"`
	Label      string `json:"label"`
	Colormap   string `json:"colormap"`
	Throughput bool   `json:"throughput"`

	value func(*Record) float64
}

// Meta converts the row to the engine's scene metadata.
func (m MetricInfo) Meta() heatmap.SceneMeta {
	return heatmap.SceneMeta{
		Label:         m.Label,
		Colormap:      m.Colormap,
		IntegerLabels: m.Throughput,
	}
}

// metricTable is fixed configuration, not computed. Order matters: it is
// the order metrics are listed in the API and the CLI.
var metricTable = []MetricInfo{
	{Metric: MetricRSSI, Label: "RSSI (dBm)", Colormap: "RdYlGn",
		value: func(r *Record) float64 { return *r.WifiInfo.RSSI }},
	{Metric: MetricLatency, Label: "Average Latency (ms)", Colormap: "RdYlBu_r",
		value: func(r *Record) float64 { return r.Latency.AvgLatencyMs }},
	{Metric: MetricTCPThroughput, Label: "TCP Throughput (Mbps)", Colormap: "viridis", Throughput: true,
		value: func(r *Record) float64 { return r.Throughput.TCPThroughputMbps }},
	{Metric: MetricUDPThroughput, Label: "UDP Throughput (Mbps)", Colormap: "plasma", Throughput: true,
		value: func(r *Record) float64 { return r.Throughput.UDPThroughputMbps }},
	{Metric: MetricPacketLoss, Label: "Packet Loss (%)", Colormap: "Reds",
		value: func(r *Record) float64 { return r.Latency.PacketLossPercent }},
	{Metric: MetricJitter, Label: "Jitter (ms)", Colormap: "YlOrRd",
		value: func(r *Record) float64 { return r.Latency.JitterMs }},
}

// Metrics returns the metric table in display order.
func Metrics() []MetricInfo {
	out := make([]MetricInfo, len(metricTable))
	copy(out, metricTable)
	return out
}

// Lookup resolves a metric identifier to its table row.
func Lookup(m Metric) (MetricInfo, error) {
	for _, info := range metricTable {
		if info.Metric == m {
			return info, nil
		}
	}
	return MetricInfo{}, fmt.Errorf("unknown metric %q", m)
}

// Samples extracts (x, y, value) samples for a metric from the records.
// For throughput-class metrics, zero-valued samples are excluded here,
// before deduplication; the result may legitimately be empty, in which
// case the engine renders the empty scene rather than a wall of zeros.
func Samples(records []Record, info MetricInfo) []heatmap.Sample {
	samples := make([]heatmap.Sample, 0, len(records))
	for i := range records {
		r := &records[i]
		v := info.value(r)
		if info.Throughput && v <= 0 {
			continue
		}
		samples = append(samples, heatmap.Sample{
			X:     *r.Coordinates.X,
			Y:     *r.Coordinates.Y,
			Value: v,
		})
	}
	return samples
}

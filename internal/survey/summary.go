package survey

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary renders a plain-text overview of a loaded survey: counts,
// per-metric min/max/mean, coordinate ranges, and the SSID/frequency
// inventory. Served at /api/summary and printed by the CLI.
func Summary(records []Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Data Points: %d\n", len(records))
	if len(records) == 0 {
		return b.String()
	}

	section := func(title, format string, values []float64) {
		if len(values) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		fmt.Fprintf(&b, "  Min: "+format+"\n", floats.Min(values))
		fmt.Fprintf(&b, "  Max: "+format+"\n", floats.Max(values))
		fmt.Fprintf(&b, "  Avg: "+format+"\n", stat.Mean(values, nil))
	}

	var rssi, latency, tcp, udp []float64
	var xs, ys []float64
	ssids := make(map[string]bool)
	freqs := make(map[string]bool)
	for i := range records {
		r := &records[i]
		if v := *r.WifiInfo.RSSI; v != 0 {
			rssi = append(rssi, v)
		}
		if v := r.Latency.AvgLatencyMs; v > 0 {
			latency = append(latency, v)
		}
		if v := r.Throughput.TCPThroughputMbps; v > 0 {
			tcp = append(tcp, v)
		}
		if v := r.Throughput.UDPThroughputMbps; v > 0 {
			udp = append(udp, v)
		}
		xs = append(xs, *r.Coordinates.X)
		ys = append(ys, *r.Coordinates.Y)
		if r.WifiInfo.SSID != "" {
			ssids[r.WifiInfo.SSID] = true
		}
		if f := r.WifiInfo.Frequency; f != "" && f != "N/A" {
			freqs[f] = true
		}
	}

	section("RSSI (dBm)", "%.1f", rssi)
	section("Latency (ms)", "%.2f", latency)
	section("TCP Throughput (Mbps)", "%.2f", tcp)
	section("UDP Throughput (Mbps)", "%.2f", udp)

	fmt.Fprintf(&b, "\nCoordinate Ranges:\n")
	fmt.Fprintf(&b, "  X: %.1f to %.1f\n", floats.Min(xs), floats.Max(xs))
	fmt.Fprintf(&b, "  Y: %.1f to %.1f\n", floats.Min(ys), floats.Max(ys))

	if len(ssids) > 0 {
		fmt.Fprintf(&b, "\nSSIDs: %s\n", strings.Join(sortedKeys(ssids), ", "))
	}
	if len(freqs) > 0 {
		fmt.Fprintf(&b, "Frequencies: %s MHz\n", strings.Join(sortedKeys(freqs), ", "))
	}

	return b.String()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

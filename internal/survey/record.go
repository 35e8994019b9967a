package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Coordinates locates a record in the survey plane.
type Coordinates struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// WifiInfo is the link-layer metric group. The collector emits frequency
// and tx_rate as strings ("N/A" when unavailable).
type WifiInfo struct {
	RSSI      *float64 `json:"rssi"`
	SSID      string   `json:"ssid"`
	Frequency string   `json:"frequency"`
	TxRate    string   `json:"tx_rate"`
}

// LatencyInfo is the ICMP metric group.
type LatencyInfo struct {
	AvgLatencyMs      float64 `json:"avg_latency_ms"`
	PacketLossPercent float64 `json:"packet_loss_percent"`
	JitterMs          float64 `json:"jitter_ms"`
}

// ThroughputInfo is the iperf metric group. Zero means "not measured",
// which is why throughput metrics are filtered before interpolation.
type ThroughputInfo struct {
	TCPThroughputMbps float64 `json:"tcp_throughput_mbps"`
	UDPThroughputMbps float64 `json:"udp_throughput_mbps"`
	TCPRetransmits    float64 `json:"tcp_retransmits"`
}

// Record is one survey measurement as written by the collector.
type Record struct {
	Timestamp   string         `json:"timestamp"`
	Coordinates Coordinates    `json:"coordinates"`
	WifiInfo    WifiInfo       `json:"wifi_info"`
	Latency     LatencyInfo    `json:"latency"`
	Throughput  ThroughputInfo `json:"throughput"`
}

// valid reports whether the record carries the fields the heatmap core
// requires. Records without coordinates or RSSI are collector noise.
func (r *Record) valid() bool {
	return r.Coordinates.X != nil && r.Coordinates.Y != nil && r.WifiInfo.RSSI != nil
}

// ParseRecords decodes one file's payload, which is either a single
// record object or an array of them. Invalid records are dropped, not
// errored: a survey run with a few bad rows should still render.
func ParseRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil
	}

	var records []Record
	if trimmed[0] == '[' {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode record array: %w", err)
		}
	} else {
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = []Record{rec}
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.valid() {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}

// LoadDir reads every *.json file in dir (sorted by name for a stable
// record order) and returns the valid records. A file that fails to
// decode is logged and skipped so one corrupt capture cannot sink the
// whole survey.
func LoadDir(dir string) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(paths)

	var records []Record
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[Survey] skipping %s: %v", path, err)
			continue
		}
		recs, err := ParseRecords(data)
		if err != nil {
			log.Printf("[Survey] skipping %s: %v", path, err)
			continue
		}
		records = append(records, recs...)
	}
	log.Printf("[Survey] loaded %d records from %d files in %s", len(records), len(paths), dir)
	return records, nil
}

// Command survey-gen writes synthetic survey JSON files for demos and
// renderer testing: a configurable number of records across a floor
// area, with RSSI falling off from a virtual access point and latency
// and throughput degrading with it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var (
	outDir = flag.String("out", "survey-data", "Output directory for JSON files")
	count  = flag.Int("n", 25, "Number of records to generate")
	width  = flag.Float64("width", 200, "Floor width (x extent)")
	height = flag.Float64("height", 100, "Floor height (y extent)")
	apX    = flag.Float64("ap-x", 100, "Access point x position")
	apY    = flag.Float64("ap-y", 50, "Access point y position")
	seed   = flag.Int64("seed", 0, "Random seed (0 uses the clock)")
)

type record struct {
	Timestamp   string `json:"timestamp"`
	Coordinates struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"coordinates"`
	WifiInfo struct {
		RSSI      float64 `json:"rssi"`
		SSID      string  `json:"ssid"`
		Frequency string  `json:"frequency"`
		TxRate    string  `json:"tx_rate"`
	} `json:"wifi_info"`
	Latency struct {
		AvgLatencyMs      float64 `json:"avg_latency_ms"`
		PacketLossPercent float64 `json:"packet_loss_percent"`
		JitterMs          float64 `json:"jitter_ms"`
	} `json:"latency"`
	Throughput struct {
		TCPThroughputMbps float64 `json:"tcp_throughput_mbps"`
		UDPThroughputMbps float64 `json:"udp_throughput_mbps"`
		TCPRetransmits    float64 `json:"tcp_retransmits"`
	} `json:"throughput"`
}

func main() {
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	records := make([]record, *count)
	for i := range records {
		r := &records[i]
		r.Timestamp = time.Now().Add(time.Duration(i) * time.Minute).Format(time.RFC3339)
		r.Coordinates.X = rng.Float64() * *width
		r.Coordinates.Y = rng.Float64() * *height

		// Log-distance path loss from the virtual AP, plus noise.
		dx := r.Coordinates.X - *apX
		dy := r.Coordinates.Y - *apY
		dist := max(math.Sqrt(dx*dx+dy*dy), 1)
		rssi := -30 - 25*math.Log10(dist) + rng.NormFloat64()*2
		r.WifiInfo.RSSI = math.Round(rssi)
		r.WifiInfo.SSID = "survey-lab"
		r.WifiInfo.Frequency = "5180"
		r.WifiInfo.TxRate = "866.7"

		quality := math.Max(0, (rssi+90)/60) // 0 at -90 dBm, 1 at -30 dBm
		r.Latency.AvgLatencyMs = 2 + (1-quality)*80 + rng.Float64()*5
		r.Latency.PacketLossPercent = (1 - quality) * 10 * rng.Float64()
		r.Latency.JitterMs = (1 - quality) * 20 * rng.Float64()

		// Leave some records without throughput runs, the way real
		// surveys skip iperf at a few stops.
		if rng.Float64() < 0.8 {
			r.Throughput.TCPThroughputMbps = quality*500 + rng.Float64()*30
			r.Throughput.UDPThroughputMbps = quality*550 + rng.Float64()*30
			r.Throughput.TCPRetransmits = math.Floor((1 - quality) * 40 * rng.Float64())
		}
	}

	path := filepath.Join(*outDir, fmt.Sprintf("survey_%s.json", uuid.NewString()))
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Fatalf("marshal records: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %d records to %s (seed %d)", len(records), path, s)
}

package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = `{
  "timestamp": "2026-08-12T10:30:00",
  "coordinates": {"x": 12.5, "y": 7.25},
  "wifi_info": {"rssi": -52, "ssid": "office-5g", "frequency": "5180", "tx_rate": "866.7"},
  "latency": {"avg_latency_ms": 4.1, "packet_loss_percent": 0, "jitter_ms": 1.2},
  "throughput": {"tcp_throughput_mbps": 412.3, "udp_throughput_mbps": 488.9, "tcp_retransmits": 3}
}`

func TestParseRecords_SingleObject(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords([]byte(sampleRecord))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, 12.5, *r.Coordinates.X)
	assert.Equal(t, 7.25, *r.Coordinates.Y)
	assert.Equal(t, -52.0, *r.WifiInfo.RSSI)
	assert.Equal(t, "office-5g", r.WifiInfo.SSID)
	assert.Equal(t, 4.1, r.Latency.AvgLatencyMs)
	assert.Equal(t, 412.3, r.Throughput.TCPThroughputMbps)
}

func TestParseRecords_Array(t *testing.T) {
	t.Parallel()

	records, err := ParseRecords([]byte("[" + sampleRecord + "," + sampleRecord + "]"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseRecords_DropsInvalid(t *testing.T) {
	t.Parallel()

	// Missing coordinates or RSSI: dropped, not an error.
	payload := `[
		{"coordinates": {"x": 1, "y": 2}, "wifi_info": {"rssi": -60}},
		{"coordinates": {"x": 1}, "wifi_info": {"rssi": -60}},
		{"coordinates": {"x": 1, "y": 2}, "wifi_info": {"ssid": "nope"}},
		{"wifi_info": {"rssi": -60}}
	]`
	records, err := ParseRecords([]byte(payload))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseRecords_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseRecords([]byte(`{"coordinates": `))
	assert.Error(t, err)

	records, err := ParseRecords([]byte("   \n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("["+sampleRecord+"]"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(sampleRecord), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("nope"), 0644))

	records, err := LoadDir(dir)
	require.NoError(t, err)
	// a.json and b.json load; broken.json is skipped with a log line.
	assert.Len(t, records, 2)
}

func TestLoadDir_Empty(t *testing.T) {
	t.Parallel()

	records, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, records)
}

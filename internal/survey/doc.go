// Package survey loads wireless survey records produced by the telemetry
// collector and turns them into metric sample sets for interpolation.
//
// A record is one JSON object with a coordinates group and nested
// wifi_info, latency and throughput groups; files may hold a single
// object or an array of them. Records missing coordinates or RSSI are
// dropped at ingestion and never reach the heatmap core.
package survey

// Package report renders network statistics for people and for monitoring:
// YAML summaries for the terminal and Prometheus gauges written as a
// node-exporter textfile.
package report

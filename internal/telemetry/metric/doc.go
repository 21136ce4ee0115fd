// Package metric provides Prometheus metrics for atlascfg.
//
// The CLI is short-lived, so metrics are not served over HTTP. The watch
// command writes them to a node_exporter textfile collector file after
// every reload.
package metric

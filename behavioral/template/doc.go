// Package template mines records out of differently formatted documents
// with one fixed algorithm. Mine owns the skeleton (open, extract, parse,
// filter, analyze, close); each Miner supplies only the steps that differ
// per format. Filter is an optional hook a miner may implement.
package template

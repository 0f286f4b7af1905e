// Package brvmwatch turns the raw records served by the BRVMWatch backend
// (séances, cours, pépites, conseils) into the sorted, filtered, windowed and
// metric-augmented views the dashboard displays.
//
// Everything in this package is pure computation over fetched snapshots:
// records are never mutated and no derived value is ever written back to the
// backend. Network access lives in the brvmapi subpackage, terminal output in
// renderer and cmd.
package brvmwatch

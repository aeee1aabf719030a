// Package probe answers the two reachability questions folder health depends
// on: is a UNC host alive, and is a local volume mounted and readable.
//
// The System probe resolves the host and dials the SMB ports with a bounded
// timeout instead of sending ICMP, so it works unprivileged. Callers depend on
// the NetworkProbe interface and tests substitute fakes.
package probe

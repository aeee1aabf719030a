// Package health classifies subtitle folders as OK, NonExistant or ReadOnly.
//
// A verdict combines a directory existence check, a scratch-file write and
// the network probe. A folder that looks absent is escalated to ReadOnly when
// the absence cannot be trusted: its local volume is not ready, its UNC host
// does not answer, or it sits at UNC depth 1 or 2 where existence cannot be
// validated. Probe and I/O failures never surface as errors; they only shape
// the verdict.
//
// A Pass memoizes host and volume probes so one folder listing probes each
// host at most once.
package health

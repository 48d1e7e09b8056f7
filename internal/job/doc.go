// Package job turns the operator's answers into a download job specification.
//
// Compose is the pure mapping from a Choice to a Spec: it picks the output
// path template, assembles the stream format selector, lays out the
// postprocessing steps and fixes the retry, archive and delegation policy.
// Build wraps Compose with choice validation and output directory creation.
//
// Spec is a closed, typed record. Args and CommandLine render it as the
// argument vector the download engine understands, which keeps logs and the
// engine adapter in agreement about what a job means.
package job

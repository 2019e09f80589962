// Package pipeline contains the document-processing stages used by the
// public mdsnap API: the structural-element detectors (fenced code blocks,
// indented code blocks, strict and loose pipe tables), the blank-line
// normalizer, Markdown to HTML conversion, and HTML element collection
// for the snapshot renderer.
//
// The detectors share a line-document model (see lines.go): a document is
// the slice produced by splitting on "\n", and removal semantics are
// expressed as line-range operations so that re-joining reproduces the
// exact text a regex-substitution implementation would leave behind.
package pipeline

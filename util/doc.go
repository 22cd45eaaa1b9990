// Package util provides small shared helpers used across restkit:
// argument validation, URL/query-string assembly, and generic value helpers.
package util

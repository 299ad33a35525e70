// Package infra contains technical adapters, such as the zerolog
// logging backend. These packages should depend only on the
// interfaces defined in the core packages.
package infra

// Package utils provides general-purpose helpers used across the
// application: record id generation, the monotonic timestamp clock, JSON
// response writing and the resty-based HTTP client.
package utils

// Package version holds the service version reported by the health endpoint.
package version

// Version is the service's semantic version.
const Version = "1.0.0"

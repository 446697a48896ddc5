// Package notifications delivers push notifications through ntfy. An empty
// topic yields a noop service so callers never branch on configuration.
package notifications

// Package middleware decorates a ports.StateStore.
//
// NewEncryption seals every saved State with AES-GCM so session stores
// (file, Redis) never hold answers in clear text.
package middleware

// Package api holds the typed resource clients for the wepub backend. Each
// client is a thin mapping from operations to REST calls made through a
// Requester, normally a *transport.Client, so every call inherits credential
// injection and the shared 401 handling.
package api

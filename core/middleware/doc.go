// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: tags every request with a RayID, stored in the locals and echoed in X-Ray-ID.
//   - requestlog: logs request start, status and duration through zap, carrying the RayID.
//   - auth: requires the X-API-Key header when an API key is configured.
//
// Register them in that order so every log line of a request, including rejected ones,
// carries its RayID.
package middleware

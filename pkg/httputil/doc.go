// Package httputil provides HTTP-adjacent utilities for the GitHub client.
//
// # Overview
//
//   - [Cache]: file-based caching of API responses
//   - [Retry]: automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores JSON-marshalable values in the filesystem
// (~/.cache/github-search/ by default) with a configurable TTL. Repeated
// searches for the same user are served from disk instead of re-hitting the
// GitHub API, which matters for unauthenticated rate limits.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 15*time.Minute)
//	var repos []github.Repo
//	ok, _ := cache.Get("repos:torvalds", &repos)
//	if !ok {
//	    repos = fetchFromAPI()
//	    cache.Set("repos:torvalds", repos)
//	}
//
// Cache keys should be namespaced by resource kind to avoid collisions; see
// [Cache.Namespace].
//
// # Retry
//
// [Retry] re-runs an operation for transient failures. Only errors wrapped
// in [RetryableError] are retried; everything else (validation failures,
// 404s) returns immediately.
package httputil

// Package github provides access to the GitHub REST API for repository
// search.
//
// The package exposes two [RepoSource] implementations:
//
//   - [Client]: the live API client, with response caching and retries
//   - [Demo]: an offline source serving placeholder data after a simulated
//     delay
//
// Both are consumed identically by the UI through [Lookup], which fetches a
// user's profile and repository list concurrently.
package github

// Package canvas provides a read-only Canvas LMS client implementing
// driven.AssignmentSource.
//
// # Authentication
//
// Requests carry the configured API token as an OAuth2 bearer token.
//
// # Pagination
//
// Canvas paginates list endpoints with RFC 5988 Link headers. The client
// requests pages of DefaultPerPage items and follows rel="next" until the last
// page, returning either the complete list or an error.
//
// # Rate Limiting
//
// Canvas meters requests with a leaky bucket reported in the
// X-Rate-Limit-Remaining header. The client throttles proactively and
// pauses while the bucket is nearly empty. Throttled responses surface as
// RateLimitError; they are never retried.
package canvas

// Package wordpress provides a minimal client for the WordPress REST API
// (wp/v2) covering posts and categories.
//
// Every call issues exactly one authenticated HTTP request. Authentication is
// HTTP Basic using a username and a WordPress application password:
//
//	client := wordpress.NewClient(creds, nil)
//	post, err := client.GetPost(ctx, "42")
//
// Errors fall into three groups that callers can tell apart with errors.Is
// and errors.As:
//
//   - *APIError: the site answered with a non-2xx status; Body holds the
//     response text verbatim
//   - ErrTransport: the request never produced a response (DNS, refused
//     connection, cancelled context)
//   - ErrUnexpectedResponse: a 2xx body that does not match the expected
//     post or category shape
//
// The client never retries and keeps no state between calls.
package wordpress

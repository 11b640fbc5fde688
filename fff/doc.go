// Package fff provides a client for the FFF DOFA API, the public read-only
// API of the French Football Federation.
//
// The client maps a few calls onto REST endpoints, interprets HTTP status
// codes and decodes payloads into typed entities (Match, Club and their
// nested records). Decoding is lenient: missing or null fields take zero
// values instead of failing.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := fff.NewClient(logger, fff.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	match, err := client.GetMatch(ctx, 28541157)
//	switch {
//	case err != nil:
//		log.Fatal(err)
//	case match == nil:
//		fmt.Println("no such match")
//	default:
//		fmt.Println(match.Label(), match.Score())
//	}
//
// With scopes a client to a function and closes it on every exit path:
//
//	err := fff.With(ctx, logger, func(ctx context.Context, c *fff.Client) error {
//		club, err := c.GetClub(ctx, 10000)
//		...
//	})
//
// # Outcomes
//
// Every fetch ends in one of three ways:
//
//   - a non-nil entity and a nil error
//   - a nil entity and a nil error: the API answered 404
//   - a non-nil error
//
// # Error Handling
//
// All errors match ErrFFF with errors.Is. The concrete types tell the
// causes apart:
//
//   - InvalidIdentifierError: the number was rejected before any request
//   - ConnectionError: timeout or unreachable host (see the Timeout field)
//   - APIError: any other non-2xx status, with the status code
//   - MalformedResponseError: a 2xx response whose body is not JSON
//
// No request is ever retried.
//
// # Concurrency
//
// Calls are synchronous. A Client may be shared between goroutines because
// the underlying *http.Client is, but the client itself never starts any.
package fff

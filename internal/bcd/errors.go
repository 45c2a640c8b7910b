package bcd

import "fmt"

// FetchError reports a failed API request: transport failure, timeout,
// non-2xx status or an unparseable body. StatusCode is 0 when no response arrived.
type FetchError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("bcd %s %s: http %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("bcd %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

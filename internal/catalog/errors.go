package catalog

import (
	"errors"
	"fmt"
)

type FetchErrorKind int

const (
	KindInvalidInput FetchErrorKind = iota + 1
	KindNetwork
	KindHTTP
	KindEmptyResponse
	KindParse
	KindInvalidProduct
)

func (k FetchErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindEmptyResponse:
		return "empty response"
	case KindParse:
		return "parse"
	case KindInvalidProduct:
		return "invalid product"
	}
	return fmt.Sprintf("FetchErrorKind(%d)", int(k))
}

// FetchError describes why a product could not be retrieved. Product and URL
// are always set once the URL has been built; StatusCode only for KindHTTP.
type FetchError struct {
	Kind       FetchErrorKind
	Product    string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindInvalidInput:
		if e.Err != nil {
			return fmt.Sprintf("invalid product name: %s: %v", e.Product, e.Err)
		}
		return "product name cannot be blank"
	case KindNetwork:
		return fmt.Sprintf("failed to fetch product: %s, url: %s: %v", e.Product, e.URL, e.Err)
	case KindHTTP:
		return fmt.Sprintf("failed to fetch product: %s, status: %d, url: %s", e.Product, e.StatusCode, e.URL)
	case KindEmptyResponse:
		return fmt.Sprintf("received empty response from pricing service for product: %s", e.Product)
	case KindParse:
		return fmt.Sprintf("failed to parse product JSON for product: %s: %v", e.Product, e.Err)
	case KindInvalidProduct:
		return fmt.Sprintf("invalid product returned for product: %s: %v", e.Product, e.Err)
	}
	return fmt.Sprintf("failed to fetch product: %s: %v", e.Product, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries a FetchError of the given kind.
func IsKind(err error, kind FetchErrorKind) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == kind
}

package sighting

import "errors"

var (
	// ErrRequest indicates the outgoing request could not be built or was
	// rejected by the upstream service (including a missing or bad API key).
	ErrRequest = errors.New("malformed request")

	// ErrNetwork indicates a transport or upstream availability failure.
	ErrNetwork = errors.New("network failure")

	// ErrDecode indicates the response body did not match the expected schema.
	ErrDecode = errors.New("failed to decode response")

	// ErrNoData indicates a well-formed response with no usable entries.
	ErrNoData = errors.New("no data in response")

	// ErrNotFound is returned by stores when no matching record exists.
	ErrNotFound = errors.New("record not found")

	// ErrCameraNotFound indicates the referenced camera does not exist.
	// It aborts an enrichment before any network call is made.
	ErrCameraNotFound = errors.New("camera not found")

	// ErrStoreWrite indicates the record store rejected a write.
	ErrStoreWrite = errors.New("store write failed")
)

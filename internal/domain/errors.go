package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnsupportedMedia is returned when an uploaded menu is not an image or PDF
	ErrUnsupportedMedia = errors.New("unsupported menu file type")

	// ErrUploadTooLarge is returned when an uploaded menu exceeds the configured size
	ErrUploadTooLarge = errors.New("menu file too large")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrGenerativeAPIFailure is returned when a Gemini request fails
	ErrGenerativeAPIFailure = errors.New("generative language API request failed")

	// ErrEmptyGeneration is returned when Gemini answers without any text candidate
	ErrEmptyGeneration = errors.New("generative language API returned no content")

	// ErrUnknownTool is returned when an MCP tool call names a tool we do not serve
	ErrUnknownTool = errors.New("unknown tool")
)

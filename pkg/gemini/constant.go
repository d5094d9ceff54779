package gemini

import "time"

const (
	// DefaultModel is the default Gemini chat model
	DefaultModel = "gemini-2.0-flash"

	// DefaultImageModel is the model used for image generation
	DefaultImageModel = "gemini-2.0-flash-preview-image-generation"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

package http

import "errors"

var (
	errMissingScope  = errors.New("Message and session_id required")
	errMissingUserID = errors.New("user_id is required")
	errNotAudio      = errors.New("File must be an audio file")
	errMissingAudio  = errors.New("audio_file is required")
)

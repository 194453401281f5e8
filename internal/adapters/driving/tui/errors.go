package tui

import "errors"

// ErrMissingUserService is returned when the user service is not provided.
var ErrMissingUserService = errors.New("tui: user service is required")

// ErrMissingOrderService is returned when the order service is not provided.
var ErrMissingOrderService = errors.New("tui: order service is required")

// ErrMissingActivityService is returned when the activity service is not provided.
var ErrMissingActivityService = errors.New("tui: activity service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Team errors
	ErrTeamNotFound = errors.New("team not found")

	// Free-agent transition errors
	ErrAlreadyFreeAgent  = errors.New("free agent status is already active")
	ErrAlreadyAffiliated = errors.New("player is already on a team")

	// Chat platform errors
	ErrChannelUnavailable = errors.New("channel unavailable or not message-capable")
	ErrMessageNotFound    = errors.New("message not found")
	ErrMemberNotFound     = errors.New("guild member not found")
	ErrRoleNotFound       = errors.New("guild role not found")

	// Verification errors
	ErrProfileNotFound = errors.New("no game profile exists for this tag")
)

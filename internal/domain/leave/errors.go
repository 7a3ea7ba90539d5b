package leave

import "errors"

var (
	ErrIncorrectPasscode  = errors.New("incorrect passcode")
	ErrConnectionFailed   = errors.New("connection failed")
	ErrNotAuthenticated   = errors.New("session not authenticated")
	ErrMutationFailed     = errors.New("mutation request failed")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
	ErrUnknownLeaveType   = errors.New("unknown leave type")
	ErrUnknownStatus      = errors.New("unknown status")
	ErrRecordNotFound     = errors.New("leave record not found")
)

package service

import "errors"

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMissingLookupKey = errors.New("mobile or email is required")
)

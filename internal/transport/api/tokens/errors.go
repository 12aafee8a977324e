package tokens

import "errors"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidRole  = errors.New("invalid token role")
)

package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrAlreadyEnrolled        = errors.New("already enrolled")
	ErrNotUnlocked            = errors.New("unit is not unlocked")
	ErrAlreadyAnswered        = errors.New("already answered")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrNotPartner             = errors.New("responder is not a partner of this couple")
	ErrAlreadyLinked          = errors.New("member is already linked to a couple")
)

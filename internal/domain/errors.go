package domain

import "errors"

var (
	ErrSaveNotFound           = errors.New("save not found")
	ErrMalformedSave          = errors.New("malformed save")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
)

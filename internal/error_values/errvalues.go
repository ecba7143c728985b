package errorvalues

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidSlot         = errors.New("unknown slot id")
	ErrUnknownCategory     = errors.New("unknown category id")
	ErrEntryNotFound       = errors.New("no entry logged for this slot")
	ErrInvalidBackupFormat = errors.New("invalid backup file format")
	ErrUnreadableBackup    = errors.New("failed to parse backup file")
)

package service

import "errors"

var (
	ErrNoSession               = errors.New("no authenticated session")
	ErrPersist                 = errors.New("failed to persist collection change")
	ErrCollectionEntryNotFound = errors.New("collection entry not found")
	ErrScanInProgress          = errors.New("an identification is already running for this session")
	ErrScanNotFound            = errors.New("scan result not found or expired")
	ErrUnidentifiedWine        = errors.New("a failed identification cannot be added to the collection")
	ErrBlankWineName           = errors.New("wine name must not be blank")
)

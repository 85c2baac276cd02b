package nodestore

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound = "BlobNotFound"
)

func AsStorageError(err error) (azStorageBlob.StorageError, bool) {
	serr := &azStorageBlob.StorageError{}
	var ierr *azStorageBlob.InternalError
	if !errors.As(err, &ierr) || ierr == nil {
		return azStorageBlob.StorageError{}, false
	}
	if !ierr.As(&serr) {
		return azStorageBlob.StorageError{}, false
	}
	return *serr, true
}

// WrapBlobNotFound translates err to ErrBlobNotFound if it is the azure sdk
// blob not found error. Any other err, including nil, is returned as is.
func WrapBlobNotFound(err error) error {
	if err == nil {
		return nil
	}
	serr, ok := AsStorageError(err)
	if !ok {
		return err
	}
	if serr.ErrorCode != azblobBlobNotFound {
		return err
	}
	return fmt.Errorf("%s: %w", err.Error(), ErrBlobNotFound)
}

func IsBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBlobNotFound) {
		return true
	}
	serr, ok := AsStorageError(err)
	if !ok {
		return false
	}
	return serr.ErrorCode == azblobBlobNotFound
}

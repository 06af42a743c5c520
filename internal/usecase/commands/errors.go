package commands

import (
	"discover-api/internal/infra"
	"discover-api/internal/pkg/errs"
)

var (
	ErrMerchantMissing   = errs.NotFound("merchant does not exist")
	ErrLogoMissing       = errs.NotFound("logo media does not exist")
	ErrMediaMissing      = errs.NotFound("referenced media does not exist")
	ErrProfileMissing    = errs.NotFound("profile media does not exist")
	ErrPostMissing       = errs.NotFound("post does not exist")
	ErrItemMissing       = errs.NotFound("item does not exist")
	ErrMerchantNameTaken = errs.Conflict("merchant name is already taken")
	ErrBoostActive       = errs.Conflict("another boost is currently active")
	ErrUploadTooLarge    = errs.InvalidRequest("upload exceeds the size limit")
	ErrEmptyUpload       = errs.InvalidRequest("upload is empty")
)

// invalidRequest tags a domain validation error so handlers answer 400 with its message.
func invalidRequest(err error) error {
	return errs.Mark(err, errs.ErrInvalidRequest)
}

// notFoundAs replaces a repository NOT_FOUND with the given sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

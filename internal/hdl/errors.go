package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("failed to decode request")
var ErrFailedToGetUUID = errors.New("failed to get uuid from context")
var ErrFailedToParseUUID = errors.New("failed to parse uuid")

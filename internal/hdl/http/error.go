package http

import "errors"

var ErrMethodNotAllowed = errors.New("method not allowed")
var ErrAdminOnly = errors.New("admin only")

package prediction

import "errors"

var ErrUnknownAccount = errors.New("unknown account")

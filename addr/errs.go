package addr

import "errors"

var ErrParse = errors.New("address parse error")

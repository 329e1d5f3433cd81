package ctgov

import "errors"

var errInvalidJSON = errors.New("response is not valid JSON")

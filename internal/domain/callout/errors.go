package callout

import "errors"

var ErrCalloutNotFound = errors.New("callout not found")

package onboarding

import "errors"

var ErrProgressNotFound = errors.New("onboarding progress not found")

package expr

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Matches reports whether err belongs to any of the given kinds.
// A nil error or an empty kind set never matches.
func Matches(err error, kinds []error) bool {
	if err == nil {
		return false
	}

	for _, kind := range kinds {
		if IsNil(kind) {
			continue
		}
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

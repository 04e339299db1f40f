package catalog

import "errors"

var ErrNotFound = errors.New("puzzle not found")
var ErrArity = errors.New("wrong number of arguments")

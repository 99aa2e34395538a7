package parse

import "errors"

// ErrParse is the sentinel for all parse failures. Its text is the prefix
// reported to users, so wrapped errors read "JSON parse error: <diag>".
var ErrParse = errors.New("JSON parse error")

package conspire

import "errors"

// ErrEmptyAssembly indicates a build with no charts added.
var ErrEmptyAssembly = errors.New("plot assembly has no charts")

// ErrNilChart indicates a nil chart was added to a builder.
var ErrNilChart = errors.New("nil chart")

package utils

//go:generate mockgen -source=interfaces.go -destination=../mock/utils_mock.go -package=mock

// IDGenerator produces opaque, globally unique record identifiers.
type IDGenerator interface {
	Generate() string
}

// Clock is the process-wide timestamp source for record creation and
// update times.
type Clock interface {
	// Now returns nanoseconds. Successive calls never decrease.
	Now() uint64
}

package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrInvalidDataProvided: codes.InvalidArgument,
	service.ErrNotFound:            codes.NotFound,
	service.ErrInternal:            codes.Internal,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// toStatus converts a service error into a gRPC status carrying the error text.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(codeFromError(err), err.Error())
}

package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-fit-keeper/internal/service"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{"validation", fmt.Errorf("%w: name is required", service.ErrInvalidDataProvided), codes.InvalidArgument},
		{"not found", fmt.Errorf("workout with id %q %w", "w-1", service.ErrNotFound), codes.NotFound},
		{"internal", fmt.Errorf("%w: insert workout: boom", service.ErrInternal), codes.Internal},
		{"unclassified", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(toStatus(tt.err))

			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.err.Error(), st.Message())
		})
	}
}

func TestToStatus_Nil(t *testing.T) {
	assert.NoError(t, toStatus(nil))
}

func TestJSONCodec(t *testing.T) {
	codec := jsonCodec{}
	assert.Equal(t, CodecName, codec.Name())

	var out struct{ ID string }
	assert.NoError(t, codec.Unmarshal(nil, &out))
	assert.Error(t, codec.Unmarshal([]byte("{"), &out))

	_, err := codec.Marshal(make(chan int))
	assert.Error(t, err)
}

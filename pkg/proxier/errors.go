package proxier

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isClientCancel reports whether err is the plain gRPC cancellation status.
// The check is deliberately narrow: only the bare Canceled status from the
// stream itself is translated to a clean end-of-stream, because it means the
// caller is already gone. Anything else keeps propagating.
func isClientCancel(err error) bool {
	s, ok := status.FromError(err)
	return ok && s.Code() == codes.Canceled
}

// propagate converts a forwarding error into the status returned to the
// caller and reports whether the caller can recover by reconnecting. Only
// transient transport conditions are recoverable; anything else poisons the
// session.
func propagate(err error) (statusErr error, recoverable bool) {
	s, ok := status.FromError(err)
	if !ok {
		s = status.New(codes.Unknown, err.Error())
	}
	switch s.Code() {
	case codes.Unavailable, codes.Aborted, codes.ResourceExhausted:
		return s.Err(), true
	default:
		return s.Err(), false
	}
}

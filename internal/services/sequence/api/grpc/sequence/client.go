package sequence

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls sequence.v1.SequenceService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps conn in a typed SequenceService client.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{cc: conn}
}

// ReverseComplement sends sequence to the remote service.
func (c *Client) ReverseComplement(ctx context.Context, sequence string, opts ...grpc.CallOption) (string, error) {
	if c == nil || c.cc == nil {
		return "", errors.New("sequence client is not configured")
	}
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ReverseComplementFullMethod, wrapperspb.String(sequence), out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

// RemoteError is a domain failure decoded from a sequence service status.
type RemoteError struct {
	Code          apperrors.Code
	Locale        string
	UserMessage   string
	StatusMessage string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return e.StatusMessage
}

// Is matches domain errors by code so callers can use errors.Is with
// &apperrors.Error{Code: ...} targets.
func (e *RemoteError) Is(target error) bool {
	var domainErr *apperrors.Error
	if errors.As(target, &domainErr) {
		return domainErr.Code == e.Code
	}
	return false
}

// DecodeError extracts ErrorInfo and LocalizedMessage details from a gRPC
// status error. It returns nil, false for errors that carry no ErrorInfo.
func DecodeError(err error) (*RemoteError, bool) {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return nil, false
	}
	remote := &RemoteError{StatusMessage: st.Message()}
	found := false
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == apperrors.Domain {
				remote.Code = apperrors.Code(d.GetReason())
				found = true
			}
		case *errdetails.LocalizedMessage:
			remote.Locale = d.GetLocale()
			remote.UserMessage = d.GetMessage()
		}
	}
	if !found {
		return nil, false
	}
	return remote, true
}

// RemoteTransformer adapts Client to the local transformer contract:
// decoded service failures come back as domain errors carrying the
// remote code, so callers handle local and remote failures the same way.
type RemoteTransformer struct {
	client  *Client
	timeout time.Duration
}

// NewRemoteTransformer wraps client. A non-positive timeout leaves the
// caller's deadline untouched.
func NewRemoteTransformer(client *Client, timeout time.Duration) *RemoteTransformer {
	return &RemoteTransformer{client: client, timeout: timeout}
}

// ReverseComplement calls the remote service and converts its failures.
func (t *RemoteTransformer) ReverseComplement(ctx context.Context, input string) (string, error) {
	if t == nil {
		return "", errors.New("remote transformer is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	result, err := t.client.ReverseComplement(ctx, input)
	if err == nil {
		return result, nil
	}
	if remote, ok := DecodeError(err); ok {
		return "", apperrors.Wrap(remote.Code, remote.StatusMessage, remote)
	}
	return "", fmt.Errorf("call sequence service: %w", err)
}

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/keywarden/internal/common"
	pb "github.com/dmitrijs2005/keywarden/internal/proto"
)

type ctxKey string

const sessionWireKey ctxKey = "sessionWire"
const sessionUIDKey ctxKey = "sessionUID"

// sessionProtected lists the methods that require a live session token in
// request metadata.
var sessionProtected = map[string]bool{
	pb.AuthService_DestroySession_FullMethodName: true,
}

func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if sessionProtected[info.FullMethod] {

		var sessionToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.SessionTokenHeaderName)
			if len(values) > 0 {
				sessionToken = values[0]
			}
		}
		if len(sessionToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing session token")
		}

		record, err := s.sessions.CheckSession(ctx, sessionToken)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid session token")
		}

		ctx = context.WithValue(ctx, sessionWireKey, sessionToken)
		ctx = context.WithValue(ctx, sessionUIDKey, record.UID)

	}

	return handler(ctx, req)
}

package grpc

import (
	"context"
	"encoding/hex"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	pb "github.com/dmitrijs2005/keywarden/internal/proto"
)

// mapError translates service sentinels into gRPC status codes. Anything
// unmapped becomes an opaque Internal so internals never leak to clients.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrAccountExists):
		return status.Error(codes.AlreadyExists, "account already exists")
	case errors.Is(err, common.ErrIncorrectPassword),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrUnknownSession):
		return status.Error(codes.Unauthenticated, "authentication failed")
	case errors.Is(err, common.ErrAccountLocked):
		return status.Error(codes.PermissionDenied, "account locked")
	case errors.Is(err, common.ErrRequestBlocked):
		return status.Error(codes.PermissionDenied, "request blocked")
	case errors.Is(err, common.ErrUnverifiedAccount):
		return status.Error(codes.FailedPrecondition, "account not verified")
	case errors.Is(err, common.ErrInvalidCode):
		return status.Error(codes.InvalidArgument, "invalid code")
	case errors.Is(err, common.ErrWeakPassword):
		return status.Error(codes.InvalidArgument, "password too weak")
	case errors.Is(err, common.ErrTooManyAttempts):
		return status.Error(codes.ResourceExhausted, "too many attempts")
	case errors.Is(err, common.ErrUnknownAccount), errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "unknown account")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {

	s.logger.Info(ctx, "Account creation request")

	account, err := s.accounts.CreateAccount(ctx, req.Email, req.AuthPw, cryptox.StretchVersion(req.StretchVersion))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Account created", "uid", account.UID)
	return &pb.CreateAccountResponse{Uid: account.UID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	result, err := s.accounts.Login(ctx, req.Email, req.AuthPw)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.LoginResponse{
		Uid:           result.UID,
		SessionToken:  result.SessionToken,
		KeyFetchToken: result.KeyFetchToken,
		Verified:      result.Verified,
	}, nil

}

func (s *GRPCServer) BeginSrp(ctx context.Context, req *pb.BeginSrpRequest) (*pb.BeginSrpResponse, error) {

	result, err := s.auth.Begin(ctx, req.Email)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.BeginSrpResponse{
		SessionId:      result.SessionID,
		Salt:           result.Salt,
		B:              result.B,
		StretchVersion: int32(result.VerifierVersion),
	}, nil

}

func (s *GRPCServer) CompleteSrp(ctx context.Context, req *pb.CompleteSrpRequest) (*pb.CompleteSrpResponse, error) {

	result, err := s.auth.Complete(ctx, req.SessionId, req.A, req.Proof)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.CompleteSrpResponse{Uid: result.UID, SealedToken: result.SealedToken}, nil

}

func (s *GRPCServer) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.CreateSessionResponse, error) {

	result, err := s.sessions.CreateSession(ctx, req.AuthToken)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.CreateSessionResponse{Uid: result.UID, Sealed: result.Sealed, Verified: result.Verified}, nil

}

func (s *GRPCServer) FetchKeys(ctx context.Context, req *pb.FetchKeysRequest) (*pb.FetchKeysResponse, error) {

	bundle, err := s.sessions.FetchKeys(ctx, req.KeyFetchToken)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.FetchKeysResponse{Bundle: bundle}, nil

}

func (s *GRPCServer) VerifyCode(ctx context.Context, req *pb.VerifyCodeRequest) (*pb.VerifyCodeResponse, error) {

	if err := s.accounts.VerifyCode(ctx, req.Uid, req.Code); err != nil {
		return nil, mapError(err)
	}

	return &pb.VerifyCodeResponse{}, nil

}

func (s *GRPCServer) ChangePasswordStart(ctx context.Context, req *pb.ChangePasswordStartRequest) (*pb.ChangePasswordStartResponse, error) {

	result, err := s.accounts.ChangePasswordStart(ctx, req.Email, req.AuthPw)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ChangePasswordStartResponse{
		KeyFetchToken:       result.KeyFetchToken,
		PasswordChangeToken: result.PasswordChangeToken,
	}, nil

}

func (s *GRPCServer) ChangePasswordFinish(ctx context.Context, req *pb.ChangePasswordFinishRequest) (*pb.ChangePasswordFinishResponse, error) {

	err := s.accounts.ChangePasswordFinish(ctx, req.PasswordChangeToken, req.NewAuthPw, req.NewWrapKb, cryptox.StretchVersion(req.StretchVersion))
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ChangePasswordFinishResponse{}, nil

}

func (s *GRPCServer) ForgotPasswordSend(ctx context.Context, req *pb.ForgotPasswordSendRequest) (*pb.ForgotPasswordSendResponse, error) {

	result, err := s.accounts.ForgotPasswordSend(ctx, req.Email)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ForgotPasswordSendResponse{
		ForgotToken: result.Token,
		Tries:       int32(result.Tries),
		TtlSeconds:  int64(result.TTL.Seconds()),
	}, nil

}

func (s *GRPCServer) ForgotPasswordVerify(ctx context.Context, req *pb.ForgotPasswordVerifyRequest) (*pb.ForgotPasswordVerifyResponse, error) {

	resetToken, err := s.accounts.ForgotPasswordVerify(ctx, req.ForgotToken, req.Code)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ForgotPasswordVerifyResponse{ResetToken: resetToken}, nil

}

func (s *GRPCServer) ResetAccount(ctx context.Context, req *pb.ResetAccountRequest) (*pb.ResetAccountResponse, error) {

	err := s.accounts.ResetAccount(ctx, req.ResetToken, req.NewAuthPw, cryptox.StretchVersion(req.StretchVersion))
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ResetAccountResponse{}, nil

}

func (s *GRPCServer) DestroySession(ctx context.Context, req *pb.DestroySessionRequest) (*pb.DestroySessionResponse, error) {

	wireHex, ok := ctx.Value(sessionWireKey).(string)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing session token")
	}

	wire, err := hex.DecodeString(wireHex)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid session token")
	}

	if err := s.sessions.DestroySession(ctx, wire); err != nil {
		return nil, mapError(err)
	}

	return &pb.DestroySessionResponse{}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{
		Status:           "OK",
		MinPasswordScore: int32(s.cfg.MinPasswordScore),
		StretchVersion:   int32(cryptox.StretchV2),
	}, nil

}

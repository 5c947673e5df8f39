package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	pb "github.com/dmitrijs2005/keywarden/internal/proto"
)

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.AuthServiceClient
	sessionToken   string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.SessionTokenHeaderName)
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.sessionToken != "" {
		ctx = withSessionToken(ctx, s.sessionToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAuthClientService(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.sessionTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

// SetSessionToken installs the hex wire form sent on authenticated calls.
// An empty string clears it.
func (s *GRPCClient) SetSessionToken(wireHex string) {
	s.sessionToken = wireHex
}

func (s *GRPCClient) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.requestTimeout)
}

func (s *GRPCClient) Ping(ctx context.Context) (*Policy, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	if resp.Status != "OK" {
		return nil, ErrUnavailable
	}

	return &Policy{
		MinPasswordScore: int(resp.MinPasswordScore),
		StretchVersion:   cryptox.StretchVersion(resp.StretchVersion),
	}, nil
}

func (s *GRPCClient) CreateAccount(ctx context.Context, email string, authPW []byte, version cryptox.StretchVersion) (string, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := &pb.CreateAccountRequest{Email: email, AuthPw: authPW, StretchVersion: int32(version)}

	resp, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Uid, nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, authPW []byte) (*LoginResult, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := &pb.LoginRequest{Email: email, AuthPw: authPW}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &LoginResult{
		UID:           resp.Uid,
		SessionToken:  resp.SessionToken,
		KeyFetchToken: resp.KeyFetchToken,
		Verified:      resp.Verified,
	}, nil
}

func (s *GRPCClient) BeginSrp(ctx context.Context, email string) (*SrpChallenge, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.BeginSrp(ctx, &pb.BeginSrpRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &SrpChallenge{
		SessionID:      resp.SessionId,
		Salt:           resp.Salt,
		B:              resp.B,
		StretchVersion: cryptox.StretchVersion(resp.StretchVersion),
	}, nil
}

func (s *GRPCClient) CompleteSrp(ctx context.Context, sessionID string, aPub, proof []byte) (string, []byte, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := &pb.CompleteSrpRequest{SessionId: sessionID, A: aPub, Proof: proof}

	resp, err := s.client.CompleteSrp(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	return resp.Uid, resp.SealedToken, nil
}

func (s *GRPCClient) CreateSession(ctx context.Context, authToken []byte) (*SessionBundle, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.CreateSession(ctx, &pb.CreateSessionRequest{AuthToken: authToken})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &SessionBundle{UID: resp.Uid, Sealed: resp.Sealed, Verified: resp.Verified}, nil
}

func (s *GRPCClient) FetchKeys(ctx context.Context, keyFetchToken []byte) ([]byte, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.FetchKeys(ctx, &pb.FetchKeysRequest{KeyFetchToken: keyFetchToken})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Bundle, nil
}

func (s *GRPCClient) VerifyCode(ctx context.Context, uid string, code string) error {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	_, err := s.client.VerifyCode(ctx, &pb.VerifyCodeRequest{Uid: uid, Code: code})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) ChangePasswordStart(ctx context.Context, email string, authPW []byte) (*PasswordChangeTokens, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.ChangePasswordStart(ctx, &pb.ChangePasswordStartRequest{Email: email, AuthPw: authPW})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &PasswordChangeTokens{
		KeyFetchToken:       resp.KeyFetchToken,
		PasswordChangeToken: resp.PasswordChangeToken,
	}, nil
}

func (s *GRPCClient) ChangePasswordFinish(ctx context.Context, changeToken, newAuthPW, newWrapKb []byte, version cryptox.StretchVersion) error {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := &pb.ChangePasswordFinishRequest{
		PasswordChangeToken: changeToken,
		NewAuthPw:           newAuthPW,
		NewWrapKb:           newWrapKb,
		StretchVersion:      int32(version),
	}

	_, err := s.client.ChangePasswordFinish(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) ForgotPasswordSend(ctx context.Context, email string) (*ForgotInfo, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.ForgotPasswordSend(ctx, &pb.ForgotPasswordSendRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &ForgotInfo{
		ForgotToken: resp.ForgotToken,
		Tries:       int(resp.Tries),
		TTL:         time.Duration(resp.TtlSeconds) * time.Second,
	}, nil
}

func (s *GRPCClient) ForgotPasswordVerify(ctx context.Context, forgotToken []byte, code string) ([]byte, error) {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	resp, err := s.client.ForgotPasswordVerify(ctx, &pb.ForgotPasswordVerifyRequest{ForgotToken: forgotToken, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.ResetToken, nil
}

func (s *GRPCClient) ResetAccount(ctx context.Context, resetToken, newAuthPW []byte, version cryptox.StretchVersion) error {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	req := &pb.ResetAccountRequest{ResetToken: resetToken, NewAuthPw: newAuthPW, StretchVersion: int32(version)}

	_, err := s.client.ResetAccount(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) DestroySession(ctx context.Context) error {

	ctx, cancel := s.withDeadline(ctx)
	defer cancel()

	_, err := s.client.DestroySession(ctx, &pb.DestroySessionRequest{})
	if err != nil {
		return s.mapError(err)
	}

	s.sessionToken = ""
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return common.ErrAccountExists
	case codes.NotFound:
		return common.ErrUnknownAccount
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

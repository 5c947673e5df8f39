// Package grpc exposes the auth services over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/logging"
	pb "github.com/dmitrijs2005/keywarden/internal/proto"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/dmitrijs2005/keywarden/internal/server/services"
)

// accountSvc, authSvc and sessionSvc are the slices of the service layer the
// transport depends on.
type accountSvc interface {
	CreateAccount(ctx context.Context, email string, authPW []byte, version cryptox.StretchVersion) (*models.Account, error)
	Login(ctx context.Context, email string, authPW []byte) (*services.LoginResult, error)
	VerifyCode(ctx context.Context, uid string, code string) error
	ChangePasswordStart(ctx context.Context, email string, authPW []byte) (*services.PasswordChangeResult, error)
	ChangePasswordFinish(ctx context.Context, changeTokenWire []byte, newAuthPW, newWrapKb []byte, version cryptox.StretchVersion) error
	ForgotPasswordSend(ctx context.Context, email string) (*services.ForgotResult, error)
	ForgotPasswordVerify(ctx context.Context, forgotTokenWire []byte, code string) ([]byte, error)
	ResetAccount(ctx context.Context, resetTokenWire []byte, newAuthPW []byte, version cryptox.StretchVersion) error
}

type authSvc interface {
	Begin(ctx context.Context, email string) (*services.BeginResult, error)
	Complete(ctx context.Context, sessionID string, aPub, clientProof []byte) (*services.CompleteResult, error)
}

type sessionSvc interface {
	CreateSession(ctx context.Context, authWire []byte) (*services.SessionResult, error)
	FetchKeys(ctx context.Context, keyFetchWire []byte) ([]byte, error)
	CheckSession(ctx context.Context, wireHex string) (*models.TokenRecord, error)
	DestroySession(ctx context.Context, sessionWire []byte) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address  string
	cfg      *config.Config
	accounts accountSvc
	auth     authSvc
	sessions sessionSvc
	logger   logging.Logger
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, accounts accountSvc, auth authSvc, sessions sessionSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address:  cfg.EndpointAddrGRPC,
		cfg:      cfg,
		logger:   l.With("module", "grpc_server"),
		accounts: accounts,
		auth:     auth,
		sessions: sessions,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionTokenInterceptor))

	// registers service
	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

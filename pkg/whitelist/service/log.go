package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rwalabs/platform-middleware/pkg/request"
)

const serviceName = "WhitelistService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the whitelist workflow Service.
// It logs method entry/exit, duration and errors. Applicant contact data
// never reaches the logs, only wallet addresses and request ids.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Submit(ctx context.Context, req *SubmitRequest) (rec *request.Request, err error) {
	start := time.Now()

	ls.logger.Info("Submit started",
		zap.String("service", serviceName),
		zap.String("method", "Submit"),
		zap.String("wallet_address", req.WalletAddress),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Submit failed",
				zap.String("service", serviceName),
				zap.String("method", "Submit"),
				zap.String("wallet_address", req.WalletAddress),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Submit completed",
				zap.String("service", serviceName),
				zap.String("method", "Submit"),
				zap.String("request_id", rec.ID),
				zap.String("wallet_address", rec.WalletAddress),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Submit(ctx, req)
}

func (ls *logService) ListRequests(ctx context.Context) (list *RequestList, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("ListRequests failed",
				zap.String("service", serviceName),
				zap.String("method", "ListRequests"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("ListRequests completed",
				zap.String("service", serviceName),
				zap.String("method", "ListRequests"),
				zap.Int("count", len(list.Requests)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.ListRequests(ctx)
}

func (ls *logService) Approve(ctx context.Context, requestID, walletAddress string) (err error) {
	start := time.Now()

	ls.logger.Info("Approve started",
		zap.String("service", serviceName),
		zap.String("method", "Approve"),
		zap.String("request_id", requestID),
		zap.String("wallet_address", walletAddress),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Approve failed",
				zap.String("service", serviceName),
				zap.String("method", "Approve"),
				zap.String("request_id", requestID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Approve completed",
				zap.String("service", serviceName),
				zap.String("method", "Approve"),
				zap.String("request_id", requestID),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Approve(ctx, requestID, walletAddress)
}

func (ls *logService) Reject(ctx context.Context, requestID string) (err error) {
	start := time.Now()

	ls.logger.Info("Reject started",
		zap.String("service", serviceName),
		zap.String("method", "Reject"),
		zap.String("request_id", requestID),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Reject failed",
				zap.String("service", serviceName),
				zap.String("method", "Reject"),
				zap.String("request_id", requestID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Reject completed",
				zap.String("service", serviceName),
				zap.String("method", "Reject"),
				zap.String("request_id", requestID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Reject(ctx, requestID)
}

package alert

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/pkg/idempotent"
	"gitee.com/flycash/stock-alert/internal/repository"
	"gitee.com/flycash/stock-alert/internal/service/notification"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sony/sonyflake"
)

// Service 处理平台推送的商品事件，必要时触发低库存预警
//
//go:generate mockgen -source=./service.go -destination=./mocks/alert.mock.go -package=alertmocks Service
type Service interface {
	// HandleProductUpdated 返回的 error 只用于记录日志，不影响对平台的响应
	HandleProductUpdated(ctx context.Context, evt domain.ProductUpdatedEvent) (domain.AlertOutcome, error)
}

type service struct {
	repo        repository.MerchantRepository
	dispatcher  notification.Dispatcher
	idempotent  idempotent.IdempotencyService
	idGenerator *sonyflake.Sonyflake
	logger      *elog.Component
}

// NewService idem 为 nil 时不做冷却去重
func NewService(repo repository.MerchantRepository, dispatcher notification.Dispatcher,
	idem idempotent.IdempotencyService, idGenerator *sonyflake.Sonyflake,
) Service {
	return &service{
		repo:        repo,
		dispatcher:  dispatcher,
		idempotent:  idem,
		idGenerator: idGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) HandleProductUpdated(ctx context.Context, evt domain.ProductUpdatedEvent) (domain.AlertOutcome, error) {
	if evt.Event != domain.EventProductUpdated {
		s.logger.Debug("忽略事件", elog.String("event", evt.Event))
		return domain.AlertOutcome{Status: domain.AlertStatusIgnored}, nil
	}

	if err := evt.Validate(); err != nil {
		s.logger.Warn("商品事件不完整，忽略",
			elog.Int64("merchantID", evt.MerchantID),
			elog.Int64("productID", evt.ProductID),
			elog.FieldErr(err),
		)
		return domain.AlertOutcome{Status: domain.AlertStatusInvalid}, nil
	}

	prefs, err := s.repo.FindByMerchantID(ctx, evt.MerchantID)
	if err != nil {
		if errors.Is(err, errs.ErrMerchantNotFound) {
			s.logger.Info("商家未安装，忽略", elog.Int64("merchantID", evt.MerchantID))
			return domain.AlertOutcome{Status: domain.AlertStatusMerchantNotFound}, nil
		}
		return domain.AlertOutcome{}, fmt.Errorf("查询商家偏好失败: %w", err)
	}

	quantity := *evt.Quantity
	if !prefs.ShouldAlert(quantity) {
		s.logger.Debug("库存充足",
			elog.Int64("merchantID", evt.MerchantID),
			elog.Int64("productID", evt.ProductID),
			elog.Int("quantity", quantity),
			elog.Int("threshold", prefs.AlertThreshold),
		)
		return domain.AlertOutcome{Status: domain.AlertStatusAboveThreshold}, nil
	}

	key := cooldownKey(evt)
	dup, claimed := s.duplicated(ctx, key)
	if dup {
		s.logger.Info("冷却期内重复预警，忽略",
			elog.Int64("merchantID", evt.MerchantID),
			elog.Int64("productID", evt.ProductID),
			elog.Int("quantity", quantity),
		)
		return domain.AlertOutcome{Status: domain.AlertStatusDuplicated}, nil
	}

	alertID, err := s.idGenerator.NextID()
	if err != nil {
		// 预警 ID 只用于追踪，生成失败不影响分发
		s.logger.Warn("生成预警ID失败", elog.FieldErr(err))
		alertID = 0
	}

	results := s.dispatcher.Dispatch(ctx, prefs, domain.NewLowStockEvent(alertID, evt, prefs.AlertThreshold))
	if claimed && results.Succeeded() == 0 {
		// 一个渠道都没送达，不占用冷却期
		s.release(ctx, key)
	}
	if err = results.Err(); err != nil {
		s.logger.Warn("低库存预警部分渠道失败",
			elog.Any("alertID", alertID),
			elog.Int64("merchantID", evt.MerchantID),
			elog.Int("succeeded", results.Succeeded()),
			elog.FieldErr(err),
		)
	} else {
		s.logger.Info("低库存预警已分发",
			elog.Any("alertID", alertID),
			elog.Int64("merchantID", evt.MerchantID),
			elog.Int("channels", len(results)),
		)
	}
	return domain.AlertOutcome{
		Status:  domain.AlertStatusDispatched,
		AlertID: alertID,
		Results: results,
	}, nil
}

func cooldownKey(evt domain.ProductUpdatedEvent) string {
	return fmt.Sprintf("%d:%d:%d", evt.MerchantID, evt.ProductID, *evt.Quantity)
}

// duplicated 存储出错时放行。claimed 表示本次占用了冷却 key
func (s *service) duplicated(ctx context.Context, key string) (dup, claimed bool) {
	if s.idempotent == nil {
		return false, false
	}
	exists, err := s.idempotent.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("预警去重失败", elog.String("key", key), elog.FieldErr(err))
		return false, false
	}
	return exists, !exists
}

func (s *service) release(ctx context.Context, key string) {
	if err := s.idempotent.Release(ctx, key); err != nil {
		s.logger.Warn("释放预警冷却失败", elog.String("key", key), elog.FieldErr(err))
	}
}

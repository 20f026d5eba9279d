//go:build wireinject

package ioc

import (
	"gitee.com/flycash/stock-alert/internal/ioc"
	"gitee.com/flycash/stock-alert/internal/repository"
	"gitee.com/flycash/stock-alert/internal/repository/dao"
	"gitee.com/flycash/stock-alert/internal/service/alert"
	"gitee.com/flycash/stock-alert/internal/service/merchant"
	"gitee.com/flycash/stock-alert/internal/web"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitIdempotencyService,
		ioc.InitIDGenerator,
		ioc.InitJwtAuth,
		ioc.InitSallaClient,
	)
	merchantSvcSet = wire.NewSet(
		merchant.NewService,
		repository.NewMerchantRepository,
		dao.NewMerchantDAO,
	)
	alertSvcSet = wire.NewSet(
		alert.NewService,
		ioc.InitDispatcher,
		ioc.InitSenders,
	)
	webSet = wire.NewSet(
		web.NewHandler,
		ioc.InitWebConfig,
		ioc.InitGinServer,
		ioc.InitGovernor,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 商家安装与设置
		merchantSvcSet,

		// 低库存告警
		alertSvcSet,

		// HTTP 服务器
		webSet,
		wire.Struct(new(ioc.App), "*"),
	)

	return new(ioc.App)
}

package main

import (
	"context"

	"gitee.com/flycash/stock-alert/cmd/platform/ioc"
	prodioc "gitee.com/flycash/stock-alert/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时直接使用配置文件和进程环境变量
	_ = godotenv.Load()

	egoApp := ego.New()
	tp := prodioc.InitZipkinTracer()
	app := ioc.InitApp()
	if err := egoApp.Serve(app.Web, app.Governor).
		Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
	if tp != nil {
		_ = tp.Shutdown(context.Background())
	}
}

package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

type App struct {
	Web      *egin.Component
	Governor *egovernor.Component
}

package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

// InitIDGenerator 告警 ID 生成器，多实例部署时需要配置不同的 machineId
func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		MachineID uint16 `yaml:"machineId"`
	}
	var cfg Config
	err := econf.UnmarshalKey("alert", &cfg)
	if err != nil {
		panic(err)
	}
	st := sonyflake.Settings{
		StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg.MachineID != 0 {
		st.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	sf, err := sonyflake.New(st)
	if err != nil {
		panic(err)
	}
	return sf
}

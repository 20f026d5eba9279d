package ioc

import "os"

// overrideByEnv 环境变量优先于配置文件，密钥一般只放在 .env 里
func overrideByEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const defaultExpiration = 24 * time.Hour

type JwtAuth struct {
	key    string
	issuer string
}

func NewJwtAuth(key string) *JwtAuth {
	return &JwtAuth{
		key:    key,
		issuer: "stock-alert",
	}
}

func (a *JwtAuth) Decode(tokenString string) (jwt.MapClaims, error) {
	// 去除可能的 Bearer 前缀
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return []byte(a.key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("令牌解析失败: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if iss, _ := claims["iss"].(string); iss != a.issuer {
			return nil, fmt.Errorf("令牌签发方不匹配: %s", iss)
		}
		return claims, nil
	}
	return nil, fmt.Errorf("无效的令牌")
}

// Encode 生成 JWT Token，自定义声明会覆盖默认声明
func (a *JwtAuth) Encode(customClaims jwt.MapClaims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"iss": a.issuer,
	}
	for k, v := range customClaims {
		claims[k] = v
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = now.Add(defaultExpiration).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.key))
}

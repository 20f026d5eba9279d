package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/service/alert"
	"gitee.com/flycash/stock-alert/internal/service/merchant"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	SessionCookie      = "stock_alert_session"
	SessionHeader      = "X-Session-Token"
	SignatureHeader    = "X-Salla-Signature"
	webhookReceived    = "Webhook Received"
	sessionMaxAge      = 24 * 60 * 60
	ctxKeyMerchantID   = "mid"
	contentTypeHTML    = "text/html; charset=utf-8"
	contentTypeText    = "text/plain; charset=utf-8"
	authenticateFailed = "Authentication failed"
)

// Config HTTP 层配置
type Config struct {
	WebhookSecret string // 为空时不校验签名
	CookieSecure  bool
}

// Handler 安装、Webhook 和设置接口
type Handler struct {
	alertSvc    alert.Service
	merchantSvc merchant.Service
	cfg         Config
	logger      *elog.Component
}

func NewHandler(alertSvc alert.Service, merchantSvc merchant.Service, cfg Config) *Handler {
	return &Handler{
		alertSvc:    alertSvc,
		merchantSvc: merchantSvc,
		cfg:         cfg,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/", h.Index)
	server.GET("/oauth/login", h.Login)
	server.GET("/oauth/callback", h.Callback)
	server.POST("/webhooks/app-events", h.Webhook)

	settings := server.Group("/api/merchants/:id/settings", h.RequireSession)
	settings.GET("", h.GetSettings)
	settings.PUT("", h.UpdateSettings)
}

func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML,
		[]byte(`Low Stock Alert App is Running! 🚀 <br> <a href="/oauth/login">Login with Salla</a>`))
}

func (h *Handler) Login(c *gin.Context) {
	u, err := h.merchantSvc.LoginURL(c.Request.Context())
	if err != nil {
		h.logger.Error("生成授权地址失败", elog.FieldErr(err))
		c.String(http.StatusInternalServerError, authenticateFailed)
		return
	}
	c.Redirect(http.StatusFound, u)
}

func (h *Handler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "No code provided")
		return
	}

	res, err := h.merchantSvc.Install(c.Request.Context(), code, c.Query("state"))
	if err != nil {
		// 具体原因已在服务层记录，对用户只返回统一的失败信息
		c.String(http.StatusInternalServerError, authenticateFailed)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, res.Session, sessionMaxAge, "/", "", h.cfg.CookieSecure, true)
	c.Header(SessionHeader, res.Session)
	c.Data(http.StatusOK, contentTypeHTML, []byte(fmt.Sprintf(
		"<h1>Authorization Successful!</h1> <p>Welcome, %s. Your App is installed.</p>",
		html.EscapeString(res.Merchant.Name))))
}

// Webhook 无论处理结果如何都返回 200，平台不会因失败重试
func (h *Handler) Webhook(c *gin.Context) {
	defer c.Data(http.StatusOK, contentTypeText, []byte(webhookReceived))

	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("读取 Webhook 请求失败", elog.FieldErr(err))
		return
	}
	if h.cfg.WebhookSecret != "" && !verifySignature(h.cfg.WebhookSecret, body, c.GetHeader(SignatureHeader)) {
		h.logger.Warn("Webhook 签名校验失败，忽略", elog.String("ip", c.ClientIP()))
		return
	}

	var req WebhookReq
	if err = json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("Webhook 请求格式错误", elog.FieldErr(err))
		return
	}
	h.logger.Info("收到 Webhook", elog.String("event", req.Event), elog.String("merchant", req.Merchant.String()))

	evt, err := req.toProductUpdatedEvent()
	if err != nil {
		h.logger.Warn("Webhook 数据格式错误", elog.String("event", req.Event), elog.FieldErr(err))
		return
	}
	// 分发不受请求超时和客户端断开影响，各渠道只受自身超时控制
	ctx := context.WithoutCancel(c.Request.Context())
	outcome, err := h.alertSvc.HandleProductUpdated(ctx, evt)
	if err != nil {
		h.logger.Error("处理 Webhook 失败",
			elog.String("event", req.Event),
			elog.Int64("merchantID", evt.MerchantID),
			elog.FieldErr(err))
		return
	}
	h.logger.Debug("Webhook 处理完成", elog.String("status", string(outcome.Status)))
}

// RequireSession 会话中的商家必须与路径中的商家一致
func (h *Handler) RequireSession(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		token = c.GetHeader(SessionHeader)
	}
	if token == "" {
		token, _ = c.Cookie(SessionCookie)
	}
	mid, err := h.merchantSvc.ParseSession(token)
	if err != nil {
		h.abort(c, err)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.abort(c, fmt.Errorf("%w: id = %s", errs.ErrInvalidParameter, c.Param("id")))
		return
	}
	if id != mid {
		h.abort(c, fmt.Errorf("%w: session = %d, path = %d", errs.ErrForbidden, mid, id))
		return
	}
	c.Set(ctxKeyMerchantID, id)
	c.Next()
}

func (h *Handler) GetSettings(c *gin.Context) {
	prefs, err := h.merchantSvc.GetSettings(c.Request.Context(), c.GetInt64(ctxKeyMerchantID))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, Result[SettingsVO]{Msg: "OK", Data: newSettingsVO(prefs)})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req SettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err))
		return
	}
	prefs, err := h.merchantSvc.UpdateSettings(c.Request.Context(), c.GetInt64(ctxKeyMerchantID), req.toDomain())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, Result[SettingsVO]{Msg: "OK", Data: newSettingsVO(prefs)})
}

func (h *Handler) abort(c *gin.Context, err error) {
	code := statusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.logger.Error("请求处理失败", elog.String("path", c.FullPath()), elog.FieldErr(err))
		msg = "系统错误"
	}
	c.AbortWithStatusJSON(code, Result[any]{Code: code, Msg: msg})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrMerchantNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

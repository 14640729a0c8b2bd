// Package server 以 HTTP 形式提供计算接口、曲线页面和分布图。
// 每个请求独立计算，不共享状态。
package server

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"temline/metrics"
)

// Server HTTP 服务
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// NewServer 创建服务并注册路由
func NewServer(addr string, logger *log.Logger) *Server {
	s := &Server{logger: logger}
	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		path := strings.TrimPrefix(pattern, "GET ")
		mux.Handle(pattern, metrics.Middleware(path, s.recoverMiddleware(h)))
	}
	route("GET /healthz", healthz)
	route("GET /api/materials", materialsHandler)
	route("GET /api/solve", s.solveHandler)
	route("GET /chart", s.chartHandler)
	route("GET /plot/{kind}", s.plotHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.loggingMiddleware(mux),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler 返回路由处理器
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// ListenAndServe 启动服务
func (s *Server) ListenAndServe() error { return s.httpServer.ListenAndServe() }

// Shutdown 优雅关闭
func (s *Server) Shutdown(ctx context.Context) error { return s.httpServer.Shutdown(ctx) }

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sr, r)
		if r.URL.Path == "/healthz" {
			return
		}
		s.logger.Printf("%s %s %d %s %s", r.Method, r.URL.RequestURI(), sr.statusCode, time.Since(start), r.RemoteAddr)
	})
}

// recoverMiddleware 处理器中的意外错误转为 500，服务继续运行。
// 计数由外层 metrics.Middleware 按 code="500" 记录
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				s.logger.Printf("panic: %s %s: %v", r.Method, r.URL.Path, v)
				writeError(w, http.StatusInternalServerError, "计算出错, 请检查输入参数是否有效")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

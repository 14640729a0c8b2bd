package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"temline"
	"temline/chart"
	"temline/material"
	"temline/metrics"
	"temline/utils"
)

// writeJSON 先编码再写状态码，编码失败时返回 500
func writeJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "结果编码失败: "+err.Error())
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	b, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func materialsHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"conductors":  material.Conductors(),
		"dielectrics": material.Dielectrics(),
	})
}

var errNonFinite = errors.New("计算结果不是有限值")

// evaluate 由查询参数计算，失败时已写出错误响应
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) (*temline.Evaluation, bool) {
	start := time.Now()
	in, err := temline.InputFromParams(temline.DefaultInput(), utils.FromValues(r.URL.Query()))
	var ev *temline.Evaluation
	if err == nil {
		ev, err = temline.Evaluate(in)
	}
	if err == nil && !ev.Finite() {
		err = fmt.Errorf("%w: 频率 %v Hz 下出现 Inf 或 NaN (γ = %v, Z0 = %v)", errNonFinite, in.Frequency, ev.Gamma, ev.Z0)
	}
	switch {
	case err == nil:
		metrics.ObserveEvaluation(metrics.OutcomeOK, time.Since(start))
		return ev, true
	case errors.Is(err, temline.ErrInvalidInput):
		metrics.ObserveEvaluation(metrics.OutcomeInvalid, 0)
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		metrics.ObserveEvaluation(metrics.OutcomeError, 0)
		s.logger.Printf("计算出错: %v", err)
		writeError(w, http.StatusInternalServerError, "计算出错: "+err.Error())
	}
	return nil, false
}

func (s *Server) solveHandler(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	if err := writeJSON(w, http.StatusOK, ev); err != nil {
		s.logger.Printf("结果编码失败: %v", err)
	}
}

func (s *Server) chartHandler(w http.ResponseWriter, r *http.Request) {
	ev, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	c := &chart.Charts{Record: chart.NewRecord(ev)}
	c.Handler(w, r)
}

func (s *Server) plotHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(strings.TrimSuffix(r.PathValue("kind"), ".png"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	ev, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := chart.NewRecord(ev).WritePNG(&buf, kind); err != nil {
		s.logger.Printf("绘图失败: %v", err)
		writeError(w, http.StatusInternalServerError, "绘图失败: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

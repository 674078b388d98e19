package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/model"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/parser"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/report"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/store"
)

// Handlers serves the upload and report API.
type Handlers struct {
	store          *store.Store
	maxUploadBytes int64
}

// NewHandlers creates the API handlers.
func NewHandlers(st *store.Store, maxUploadBytes int64) *Handlers {
	return &Handlers{
		store:          st,
		maxUploadBytes: maxUploadBytes,
	}
}

// Response is the common envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

func tableKind(param string) (model.TableKind, bool) {
	switch model.TableKind(param) {
	case model.TableDraft:
		return model.TableDraft, true
	case model.TableSubmitted:
		return model.TableSubmitted, true
	case model.TableForecast:
		return model.TableForecast, true
	}
	return "", false
}

// UploadFile accepts one of the three Excel workbooks:
// POST /api/upload/:kind with kind in draft|submitted|forecast.
func (h *Handlers) UploadFile(c *gin.Context) {
	kind, ok := tableKind(c.Param("kind"))
	if !ok {
		errorResponse(c, 1001, "unknown upload kind, expected draft, submitted or forecast")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "please attach a file")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		errorResponse(c, 1003, "file too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		errorResponse(c, 1002, "only .xlsx and .xls files are supported")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, 1002, "failed to read file")
		return
	}

	table, err := parser.LoadWorkbook(bytes.NewReader(content))
	if err != nil {
		errorResponse(c, 2001, "failed to parse workbook: "+err.Error())
		return
	}

	info := store.UploadInfo{
		ID:       uuid.New().String(),
		FileName: header.Filename,
		Rows:     len(table.Rows),
	}

	if kind == model.TableForecast {
		forecast, err := parser.DecodeForecast(table)
		if err != nil {
			errorResponse(c, 2002, err.Error())
			return
		}
		h.store.SetForecast(forecast, info)
	} else {
		order, err := parser.DecodeOrder(table, kind)
		if err != nil {
			errorResponse(c, 2002, err.Error())
			return
		}
		h.store.SetOrder(kind, order, info)
	}

	success(c, gin.H{
		"kind":   kind,
		"upload": info,
	})
}

// GetStatus reports which of the three inputs are loaded.
func (h *Handlers) GetStatus(c *gin.Context) {
	uploads, ready := h.store.Status()
	success(c, gin.H{
		"uploads": uploads,
		"ready":   ready,
	})
}

// GetReport builds the unified comparison report. The report is
// computed fresh from the current uploads on every call.
func (h *Handlers) GetReport(c *gin.Context) {
	draft, submitted, forecast, ready := h.store.Snapshot()
	if !ready {
		errorResponse(c, 2003, "waiting for uploads: draft, submitted and forecast are all required")
		return
	}

	rep := report.Generate(draft, submitted, forecast)
	success(c, rep)
}

// DownloadCSV serves the unified report as a CSV file.
func (h *Handlers) DownloadCSV(c *gin.Context) {
	draft, submitted, forecast, ready := h.store.Snapshot()
	if !ready {
		errorResponse(c, 2003, "waiting for uploads: draft, submitted and forecast are all required")
		return
	}

	rep := report.Generate(draft, submitted, forecast)
	text, err := report.CSV(rep)
	if err != nil {
		errorResponse(c, 3001, "failed to serialize CSV: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="unified_comparison_report.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(text))
}

// Reset clears the session's uploads.
func (h *Handlers) Reset(c *gin.Context) {
	h.store.Clear()
	success(c, gin.H{"cleared": true})
}

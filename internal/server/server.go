// Package server exposes the solver over HTTP as a JSON API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/piwi3910/cutplan/internal/config"
	"github.com/piwi3910/cutplan/internal/engine"
	"github.com/piwi3910/cutplan/internal/model"
)

// StockInput is the stock sheet part of an optimize request.
type StockInput struct {
	Length json.Number      `json:"length"`
	Width  json.Number      `json:"width"`
	Grain  model.StockGrain `json:"grain"`
}

// CutInput is one demanded piece of an optimize request.
type CutInput struct {
	Rect  model.Rect       `json:"rect"`
	Qty   json.Number      `json:"qty"`
	Grain model.PieceGrain `json:"grain"`
}

// OptimizeRequest is the body of POST /optimize. Numeric fields accept
// integers or non-negative whole floats; omitted fields take their
// documented defaults.
type OptimizeRequest struct {
	Stock        StockInput         `json:"stock"`
	Cuts         []CutInput         `json:"cuts"`
	Kerf         json.Number        `json:"kerf"`
	CutDirection model.CutDirection `json:"cut_direction"`
	AllowRotate  *bool              `json:"allow_rotate"`
}

// OptimizeResponse is the body of a successful optimize call.
type OptimizeResponse struct {
	Sheets       []model.SheetResult `json:"sheets"`
	Stock        model.Rect          `json:"stock"`
	SheetCount   int                 `json:"sheet_count"`
	WastePercent float64             `json:"waste_percent"`
}

// corsConfig mirrors the middleware setup of the other backends: wide
// open unless the config pins specific origins.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Content-Type", "Content-Length", "Accept", "Origin"}
	c.MaxAge = 12 * time.Hour
	return c
}

// Router builds the gin engine with logging, panic recovery and CORS.
func Router(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/up", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/optimize", optimizeHandler(cfg))

	return r
}

// optimizeHandler validates the request, runs the solver and returns
// the cutting plan. Every validation failure is a 400 with a reason.
func optimizeHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OptimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		stock, kerf, demands, err := buildInput(cfg, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		solution := engine.New(stock, kerf, req.CutDirection, req.Stock.Grain, demands).Solve()

		c.JSON(http.StatusOK, OptimizeResponse{
			Sheets:       solution.Sheets,
			Stock:        solution.Stock,
			SheetCount:   solution.SheetCount(),
			WastePercent: solution.TotalWastePercent(),
		})
	}
}

// buildInput converts a request into solver inputs, enforcing the
// preconditions the core relies on.
func buildInput(cfg *config.Config, req OptimizeRequest) (model.Rect, uint32, []model.Demand, error) {
	length, err := model.ParseJSONNumber(req.Stock.Length)
	if err != nil {
		return model.Rect{}, 0, nil, fmt.Errorf("stock length: %w", err)
	}
	width, err := model.ParseJSONNumber(req.Stock.Width)
	if err != nil {
		return model.Rect{}, 0, nil, fmt.Errorf("stock width: %w", err)
	}
	stock := model.NewRect(length, width)
	if stock.Length == 0 || stock.Width == 0 {
		return model.Rect{}, 0, nil, fmt.Errorf("stock dimensions must be non-zero")
	}

	kerf := cfg.DefaultKerf
	if req.Kerf != "" {
		kerf, err = model.ParseJSONNumber(req.Kerf)
		if err != nil {
			return model.Rect{}, 0, nil, fmt.Errorf("kerf: %w", err)
		}
	}

	allowRotate := true
	if req.AllowRotate != nil {
		allowRotate = *req.AllowRotate
	}

	demands := make([]model.Demand, 0, len(req.Cuts))
	for _, cut := range req.Cuts {
		if cut.Rect.Length == 0 || cut.Rect.Width == 0 {
			return model.Rect{}, 0, nil, fmt.Errorf("cut dimensions must be non-zero")
		}
		qty, err := model.ParseJSONNumber(cut.Qty)
		if err != nil {
			return model.Rect{}, 0, nil, fmt.Errorf("cut quantity: %w", err)
		}
		if qty == 0 {
			return model.Rect{}, 0, nil, fmt.Errorf("cut quantity must be non-zero")
		}

		rot := model.ResolveRotation(req.Stock.Grain, cut.Grain, allowRotate, req.CutDirection, cut.Rect)
		if !model.FitsStock(cut.Rect, stock, rot) {
			return model.Rect{}, 0, nil, fmt.Errorf("piece %s does not fit in stock %s", cut.Rect, stock)
		}

		d := model.NewDemand(cut.Rect, qty)
		d.AllowRotate = allowRotate
		d.Grain = cut.Grain
		demands = append(demands, d)
	}

	return stock, kerf, demands, nil
}

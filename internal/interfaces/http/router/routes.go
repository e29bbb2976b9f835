package router

import (
	"github.com/erp/godown/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers are the endpoint handlers mounted by Mount
type Handlers struct {
	Godown     *handler.GodownHandler
	Assignment *handler.AssignmentHandler
	Stock      *handler.StockHandler
	Transfer   *handler.TransferHandler
	System     *handler.SystemHandler
}

// Mount registers the probes at the root and the API under /api/v1.
// idempotent guards the mutating transfer endpoints; nil skips it.
func Mount(engine *gin.Engine, h Handlers, idempotent gin.HandlerFunc) {
	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	guard := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if idempotent == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{idempotent, fn}
	}

	godowns := NewDomainGroup("godowns", "/godowns").
		POST("", h.Godown.Create).
		GET("", h.Godown.List).
		GET("/:id", h.Godown.GetByID).
		DELETE("/:id", h.Godown.Delete).
		POST("/:id/activate", h.Godown.Activate).
		POST("/:id/deactivate", h.Godown.Deactivate).
		GET("/:id/transfer-targets", h.Godown.TransferTargets).
		GET("/:id/seller-listings", h.Godown.SellerListings).
		GET("/:id/assignments", h.Assignment.List).
		PUT("/:id/assignments/:unitId/wards", h.Assignment.AssignWards).
		POST("/:id/assignments/areas", h.Assignment.AssignAreas).
		DELETE("/:id/assignments/:unitId", h.Assignment.Remove).
		GET("/:id/assignments/:unitId/available-wards", h.Assignment.AvailableWards).
		POST("/:id/stock", h.Stock.Add).
		GET("/:id/stock", h.Stock.List).
		GET("/:id/stock/aggregate", h.Stock.Aggregate).
		GET("/:id/stock/availability", h.Stock.Availability).
		GET("/:id/stock/history", h.Stock.History)

	units := NewDomainGroup("administrative-units", "/administrative-units").
		GET("", h.Assignment.ListUnits)

	stockEntries := NewDomainGroup("stock-entries", "/stock-entries").
		DELETE("/:id", h.Stock.Remove)

	transfers := NewDomainGroup("transfers", "/transfers").
		POST("", guard(h.Transfer.Create)...).
		GET("", h.Transfer.List).
		GET("/:id", h.Transfer.GetByID).
		POST("/:id/approve", guard(h.Transfer.Approve)...).
		POST("/:id/reject", guard(h.Transfer.Reject)...)

	NewRouter(engine).
		Register(godowns).
		Register(units).
		Register(stockEntries).
		Register(transfers).
		Setup()
}

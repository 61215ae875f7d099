package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"workshop-service/internal/export"
	"workshop-service/internal/http/middleware"
	"workshop-service/internal/model"
	"workshop-service/internal/repository"
	"workshop-service/internal/service"
)

type Handler struct {
	orderService *service.OrderService
	log          zerolog.Logger
}

func NewHandler(orderService *service.OrderService, log zerolog.Logger) *Handler {
	return &Handler{
		orderService: orderService,
		log:          log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")

	orders := api.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.POST("", h.createOrder)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.PUT("/:id/status", h.changeStatus)
		orders.PUT("/:id/advance", h.advanceStatus)
		orders.POST("/:id/updates", h.addProgressUpdate)
		orders.PUT("/:id/updates/:index", h.editProgressNote)
		orders.DELETE("/:id/updates/:index", h.removeProgressUpdate)
		orders.GET("/:id/receipt", h.downloadReceipt)
		orders.GET("/:id/report", h.downloadTechnicalReport)
	}

	api.GET("/export/orders.csv", h.exportCSV)
	api.GET("/stats", h.getStats)
}

func (h *Handler) createOrder(c *gin.Context) {
	var req struct {
		OperationType string           `json:"operation_type" binding:"required"`
		Owner         model.Owner      `json:"owner" binding:"required"`
		Motorcycle    model.Motorcycle `json:"motorcycle" binding:"required"`
		Checklist     map[string]bool  `json:"checklist"`
		ClientReport  string           `json:"client_report"`
		Observations  string           `json:"observations"`
		WorkHours     float64          `json:"work_hours"`
		EstimatedCost float64          `json:"estimated_cost"`
		PhotoVehicle  string           `json:"photo_vehicle"`
		PhotoChassis  string           `json:"photo_chassis"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), service.CreateOrderInput{
		OperationType: req.OperationType,
		Owner:         req.Owner,
		Motorcycle:    req.Motorcycle,
		Checklist:     req.Checklist,
		ClientReport:  req.ClientReport,
		Observations:  req.Observations,
		WorkHours:     req.WorkHours,
		EstimatedCost: req.EstimatedCost,
		PhotoVehicle:  req.PhotoVehicle,
		PhotoChassis:  req.PhotoChassis,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().
		Str("request_id", middleware.GetRequestID(c)).
		Str("order_id", order.ID).
		Str("plate", order.Motorcycle.Plate).
		Msg("order created")

	c.JSON(http.StatusCreated, successResponse(order))
}

func (h *Handler) listOrders(c *gin.Context) {
	filter := repository.ListFilter{
		Search: strings.TrimSpace(c.Query("search")),
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		s := model.OrderStatus(status)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, errorResponse("invalid status filter"))
			return
		}
		filter.Status = &s
	}

	c.JSON(http.StatusOK, successResponse(h.orderService.List(filter)))
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(order))
}

func (h *Handler) updateOrder(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	order.ID = c.Param("id")

	updated, err := h.orderService.Update(c.Request.Context(), order)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(updated))
}

// deleteOrder is irreversible, so the explicit confirmation the UI
// gathers from the user is surfaced here as a required query flag.
func (h *Handler) deleteOrder(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, errorResponse("deletion requires confirm=true"))
		return
	}

	id := c.Param("id")
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().
		Str("request_id", middleware.GetRequestID(c)).
		Str("order_id", id).
		Msg("order deleted")

	c.Status(http.StatusNoContent)
}

func (h *Handler) changeStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	order, err := h.orderService.ChangeStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(order))
}

func (h *Handler) advanceStatus(c *gin.Context) {
	order, err := h.orderService.AdvanceStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(order))
}

func (h *Handler) addProgressUpdate(c *gin.Context) {
	var req struct {
		Photo string `json:"photo" binding:"required"`
		Note  string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	order, err := h.orderService.AppendProgressUpdate(c.Request.Context(), c.Param("id"), req.Photo, req.Note)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(order))
}

func (h *Handler) editProgressNote(c *gin.Context) {
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	order, err := h.orderService.EditProgressNote(c.Request.Context(), c.Param("id"), index, req.Note)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(order))
}

func (h *Handler) removeProgressUpdate(c *gin.Context) {
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	order, err := h.orderService.RemoveProgressUpdate(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(order))
}

func (h *Handler) downloadReceipt(c *gin.Context) {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	doc, err := export.ReceiptHTML(*order)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.ReceiptFilename(*order)+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

func (h *Handler) downloadTechnicalReport(c *gin.Context) {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	// The technical report documents a finished job.
	if order.Status != model.StatusCompleted {
		c.JSON(http.StatusConflict, errorResponse("technical report is only available for completed orders"))
		return
	}

	doc, err := export.TechnicalReportHTML(*order)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.TechnicalReportFilename(*order)+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

func (h *Handler) exportCSV(c *gin.Context) {
	doc, err := export.CSV(h.orderService.List(repository.ListFilter{}))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.CSVFilename()+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", doc)
}

func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(h.orderService.Stats()))
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid update index"))
		return 0, false
	}
	return index, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().
			Str("request_id", middleware.GetRequestID(c)).
			Err(err).
			Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

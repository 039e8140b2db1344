package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleet-service/internal/auth"
	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/permissions"
	"fleet-service/internal/service"
	"fleet-service/internal/validation"
)

type Handler struct {
	fleetService       *service.FleetService
	dashboardService   *service.DashboardService
	maintenanceService *service.MaintenanceService
	assignmentService  *service.AssignmentService
	issuer             *auth.Issuer
	log                zerolog.Logger
}

func NewHandler(
	fleetService *service.FleetService,
	dashboardService *service.DashboardService,
	maintenanceService *service.MaintenanceService,
	assignmentService *service.AssignmentService,
	issuer *auth.Issuer,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		fleetService:       fleetService,
		dashboardService:   dashboardService,
		maintenanceService: maintenanceService,
		assignmentService:  assignmentService,
		issuer:             issuer,
		log:                log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	r.POST("/auth/login", h.login)

	protected := r.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/auth/routes", h.listRoutes)
	protected.GET("/auth/permissions", h.resolvePermissions)

	vehicles := protected.Group("/vehicles")
	vehicles.Use(middleware.RequireRoute("/vehicles"))
	{
		vehicles.GET("", h.listVehicles)
		vehicles.POST("", h.createVehicle)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
	}

	// Assignment history backs the vehicle detail view, so it shares the
	// vehicles route gate.
	assignments := protected.Group("/assignments")
	assignments.Use(middleware.RequireRoute("/vehicles"))
	{
		assignments.GET("", h.listAssignments)
	}

	maintenance := protected.Group("/maintenance")
	maintenance.Use(middleware.RequireRoute("/maintenance"))
	{
		maintenance.GET("", h.listMaintenance)
	}

	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequireRoute("/dashboard"))
	{
		dashboard.GET("/stats", h.dashboardStats)
		dashboard.GET("/activity", h.dashboardActivity)
		dashboard.GET("/alerts", h.dashboardAlerts)
	}
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, ok := auth.Authenticate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("Invalid username or password"))
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) listRoutes(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": permissions.AccessibleRoutes(principal.Role)})
}

func (h *Handler) resolvePermissions(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	c.JSON(http.StatusOK, permissions.Resolve(principal.Role))
}

type vehicleRequest struct {
	VehicleID       string   `json:"vehicleId"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Year            int      `json:"year"`
	VIN             string   `json:"vin"`
	Status          string   `json:"status"`
	CurrentMileage  float64  `json:"currentMileage"`
	LastServiceDate string   `json:"lastServiceDate"`
	AssignedDriver  string   `json:"assignedDriver"`
	LicensePlate    string   `json:"licensePlate"`
	Color           string   `json:"color"`
	PurchaseDate    string   `json:"purchaseDate"`
	FuelType        string   `json:"fuelType"`
	Transmission    string   `json:"transmission"`
	PurchasePrice   *float64 `json:"purchasePrice"`
	Notes           string   `json:"notes"`
}

func (req vehicleRequest) toInput() (service.VehicleInput, error) {
	input := service.VehicleInput{
		VehicleID:      req.VehicleID,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		VIN:            req.VIN,
		Status:         model.VehicleStatus(req.Status),
		CurrentMileage: req.CurrentMileage,
		AssignedDriver: req.AssignedDriver,
		LicensePlate:   req.LicensePlate,
		Color:          req.Color,
		FuelType:       req.FuelType,
		Transmission:   req.Transmission,
		PurchasePrice:  req.PurchasePrice,
		Notes:          req.Notes,
	}

	if req.LastServiceDate != "" {
		date, err := parseDate(req.LastServiceDate)
		if err != nil {
			return service.VehicleInput{}, errors.New("invalid lastServiceDate")
		}
		input.LastServiceDate = date
	}
	if req.PurchaseDate != "" {
		date, err := parseDate(req.PurchaseDate)
		if err != nil {
			return service.VehicleInput{}, errors.New("invalid purchaseDate")
		}
		input.PurchaseDate = &date
	}

	return input, nil
}

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicles, err := h.fleetService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) getVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	vehicle, err := h.fleetService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	// Client-entry validation; the service repeats it before the
	// authoritative write.
	if result := validation.ValidateVehicleDraft(input.Draft()); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     "vehicle validation failed",
			"fieldErrors": result.FieldErrors,
		})
		return
	}

	vehicle, err := h.fleetService.Create(c.Request.Context(), principal, input)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			// The vehicle is kept in the local list; the client learns the
			// authoritative write did not land.
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": "vehicle stored locally; authoritative store unavailable",
				"vehicle": vehicle,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *Handler) updateVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if result := validation.ValidateVehicleDraft(input.Draft()); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     "vehicle validation failed",
			"fieldErrors": result.FieldErrors,
		})
		return
	}

	vehicle, err := h.fleetService.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) listMaintenance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	records, err := h.maintenanceService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) listAssignments(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	history, err := h.assignmentService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *Handler) dashboardStats(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	out, err := h.dashboardService.Stats(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) dashboardActivity(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	out, err := h.dashboardService.Activity(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) dashboardAlerts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	alerts, err := h.dashboardService.Alerts(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     verr.Error(),
			"fieldErrors": verr.Fields,
		})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse("Vehicle not found"))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		// Uniqueness collisions answer 400 for wire compatibility with the
		// original API.
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{"message": message}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid date format")
}

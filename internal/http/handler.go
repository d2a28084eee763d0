package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/repository"
	"fleet-service/internal/service"
)

type Handler struct {
	truckService       *service.TruckService
	driverService      *service.DriverService
	tripService        *service.TripService
	fuelService        *service.FuelService
	maintenanceService *service.MaintenanceService
	inventoryService   *service.InventoryService
	reportService      *service.ReportService
	log                zerolog.Logger
}

func NewHandler(
	truckService *service.TruckService,
	driverService *service.DriverService,
	tripService *service.TripService,
	fuelService *service.FuelService,
	maintenanceService *service.MaintenanceService,
	inventoryService *service.InventoryService,
	reportService *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		truckService:       truckService,
		driverService:      driverService,
		tripService:        tripService,
		fuelService:        fuelService,
		maintenanceService: maintenanceService,
		inventoryService:   inventoryService,
		reportService:      reportService,
		log:                log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/")
	protected.Use(authMiddleware)

	admin := protected.Group("/admin")
	{
		admin.GET("/trucks", h.listTrucks)
		admin.POST("/trucks", h.createTruck)
		admin.GET("/trucks/:id", h.getTruck)
		admin.PUT("/trucks/:id", h.updateTruck)
		admin.PUT("/trucks/:id/compliance-docs", h.updateComplianceDocs)
		admin.DELETE("/trucks/:id", h.deleteTruck)

		admin.GET("/drivers", h.listDrivers)
		admin.POST("/drivers", h.createDriver)
		admin.GET("/drivers/:id", h.getDriver)
		admin.PUT("/drivers/:id", h.updateDriver)
		admin.PUT("/drivers/:id/assign-truck", h.assignTruck)
		admin.DELETE("/drivers/:id", h.deleteDriver)

		admin.GET("/trips", h.listTrips)
		admin.POST("/trips", h.createTrip)
		admin.GET("/trips/:id", h.getTrip)
		admin.PUT("/trips/:id/assign", h.assignTrip)
		admin.PUT("/trips/:id/status", h.updateTripStatus)
		admin.DELETE("/trips/:id", h.deleteTrip)
		admin.POST("/trips/:id/cargo", h.addCargoItem)
		admin.GET("/trips/:id/cargo", h.listCargo)
		admin.DELETE("/cargo/:id", h.deleteCargoItem)

		admin.GET("/maintenance", h.listMaintenance)
		admin.POST("/maintenance", h.createMaintenance)
		admin.GET("/maintenance/:id", h.getMaintenance)
		admin.PUT("/maintenance/:id", h.updateMaintenance)
		admin.DELETE("/maintenance/:id", h.deleteMaintenance)

		admin.GET("/fuel-records", h.listFuelRecords)
		admin.POST("/fuel-records", h.recordFuel)
		admin.DELETE("/fuel-records/:id", h.deleteFuelRecord)
		admin.GET("/tanks", h.listTanks)
		admin.POST("/tanks", h.createTank)
		admin.POST("/tanks/:id/refills", h.refillTank)
		admin.GET("/tanks/:id/refills", h.listRefills)

		admin.GET("/inventory", h.listInventory)
		admin.POST("/inventory", h.createInventoryItem)
		admin.GET("/inventory/low-stock", h.listLowStock)
		admin.PUT("/inventory/:id/adjust", h.adjustInventory)
		admin.DELETE("/inventory/:id", h.deleteInventoryItem)

		admin.GET("/dashboard", h.dashboard)
		admin.GET("/reports/fleet", h.fleetReport)
		admin.GET("/reports/fuel", h.fuelReport)
		admin.GET("/reports/maintenance", h.maintenanceReport)
		admin.GET("/reports/compliance", h.complianceReport)
		admin.GET("/reports/financial", h.financialReport)
		admin.GET("/reports/operational", h.operationalReport)
	}

	driver := protected.Group("/driver")
	{
		driver.GET("/trips", h.listTrips)
		driver.GET("/trips/:id", h.getTrip)
		driver.GET("/trips/:id/cargo", h.listCargo)
		driver.PUT("/trips/:id/start", h.startTrip)
		driver.PUT("/trips/:id/complete", h.completeTrip)
		driver.GET("/truck-compliance", h.myTruckCompliance)
	}

	attendant := protected.Group("/attendant")
	{
		attendant.GET("/fuel-records", h.listFuelRecords)
		attendant.POST("/fuel-records", h.recordFuel)
		attendant.GET("/tanks", h.listTanks)
		attendant.POST("/tanks/:id/refills", h.refillTank)
		attendant.GET("/tanks/:id/refills", h.listRefills)
		attendant.GET("/reports/fuel", h.fuelReport)
	}
}

// Truck handlers

func (h *Handler) createTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		TruckNumber     string   `json:"truck_number" binding:"required"`
		Make            string   `json:"make"`
		Model           string   `json:"model"`
		Year            *int     `json:"year"`
		CapacityTons    *float64 `json:"capacity_tons"`
		NTSAExpiry      *string  `json:"ntsa_expiry"`
		InsuranceExpiry *string  `json:"insurance_expiry"`
		TGLExpiry       *string  `json:"tgl_expiry"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	truck, err := h.truckService.Create(c.Request.Context(), principal, service.CreateTruckInput{
		TruckNumber:     req.TruckNumber,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		CapacityTons:    req.CapacityTons,
		NTSAExpiry:      req.NTSAExpiry,
		InsuranceExpiry: req.InsuranceExpiry,
		TGLExpiry:       req.TGLExpiry,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(truck))
}

func (h *Handler) getTruck(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
		return
	}

	truck, err := h.truckService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(truck))
}

func (h *Handler) listTrucks(c *gin.Context) {
	filter := repository.TruckListFilter{}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		ts := model.TruckStatus(strings.ToUpper(status))
		filter.Status = &ts
	}

	trucks, err := h.truckService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trucks))
}

func (h *Handler) updateTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
		return
	}

	var req struct {
		Make         *string            `json:"make"`
		Model        *string            `json:"model"`
		Year         *int               `json:"year"`
		CapacityTons *float64           `json:"capacity_tons"`
		Status       *model.TruckStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	truck, err := h.truckService.Update(c.Request.Context(), principal, id, service.UpdateTruckInput{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		CapacityTons: req.CapacityTons,
		Status:       req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(truck))
}

func (h *Handler) updateComplianceDocs(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
		return
	}

	var req struct {
		NTSAExpiry      *string `json:"ntsa_expiry"`
		InsuranceExpiry *string `json:"insurance_expiry"`
		TGLExpiry       *string `json:"tgl_expiry"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	truck, err := h.truckService.UpdateComplianceDocs(c.Request.Context(), principal, id, service.UpdateComplianceDocsInput{
		NTSAExpiry:      req.NTSAExpiry,
		InsuranceExpiry: req.InsuranceExpiry,
		TGLExpiry:       req.TGLExpiry,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(truck))
}

func (h *Handler) deleteTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
		return
	}

	if err := h.truckService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Driver handlers

func (h *Handler) createDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		FullName      string  `json:"full_name" binding:"required"`
		Phone         string  `json:"phone"`
		LicenseNumber string  `json:"license_number" binding:"required"`
		LicenseExpiry *string `json:"license_expiry"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), principal, service.CreateDriverInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(driver))
}

func (h *Handler) getDriver(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver id"))
		return
	}

	driver, err := h.driverService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) listDrivers(c *gin.Context) {
	filter := repository.DriverListFilter{}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		ds := model.DriverStatus(strings.ToUpper(status))
		filter.Status = &ds
	}

	truckID := strings.TrimSpace(c.Query("truck_id"))
	if truckID != "" {
		id, err := uuid.Parse(truckID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
			return
		}
		filter.TruckID = &id
	}

	drivers, err := h.driverService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(drivers))
}

func (h *Handler) updateDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver id"))
		return
	}

	var req struct {
		FullName      *string             `json:"full_name"`
		Phone         *string             `json:"phone"`
		LicenseExpiry *string             `json:"license_expiry"`
		Status        *model.DriverStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), principal, id, service.UpdateDriverInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		LicenseExpiry: req.LicenseExpiry,
		Status:        req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) assignTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver id"))
		return
	}

	var req struct {
		TruckID *string `json:"truck_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.driverService.AssignTruck(c.Request.Context(), principal, id, req.TruckID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) deleteDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver id"))
		return
	}

	if err := h.driverService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Trip handlers

func (h *Handler) createTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		TripNumber           string   `json:"trip_number" binding:"required"`
		TruckID              *string  `json:"truck_id"`
		DriverID             *string  `json:"driver_id"`
		Origin               string   `json:"origin" binding:"required"`
		Destination          string   `json:"destination" binding:"required"`
		DistanceKM           *float64 `json:"distance_km"`
		PlannedDeparture     string   `json:"planned_departure" binding:"required"`
		PlannedArrival       string   `json:"planned_arrival" binding:"required"`
		CargoValueUSD        *float64 `json:"cargo_value_usd"`
		FuelCost             *float64 `json:"fuel_cost"`
		TollCost             *float64 `json:"toll_cost"`
		OtherExpenses        *float64 `json:"other_expenses"`
		EstimatedWearTearKSH *float64 `json:"estimated_wear_tear_ksh"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), principal, service.CreateTripInput{
		TripNumber:           req.TripNumber,
		TruckID:              req.TruckID,
		DriverID:             req.DriverID,
		Origin:               req.Origin,
		Destination:          req.Destination,
		DistanceKM:           req.DistanceKM,
		PlannedDeparture:     req.PlannedDeparture,
		PlannedArrival:       req.PlannedArrival,
		CargoValueUSD:        req.CargoValueUSD,
		FuelCost:             req.FuelCost,
		TollCost:             req.TollCost,
		OtherExpenses:        req.OtherExpenses,
		EstimatedWearTearKSH: req.EstimatedWearTearKSH,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(trip))
}

func (h *Handler) getTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) listTrips(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.TripListFilter{}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		ts := model.TripStatus(strings.ToUpper(status))
		filter.Status = &ts
	}

	truckID := strings.TrimSpace(c.Query("truck_id"))
	if truckID != "" {
		id, err := uuid.Parse(truckID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
			return
		}
		filter.TruckID = &id
	}

	driverID := strings.TrimSpace(c.Query("driver_id"))
	if driverID != "" {
		id, err := uuid.Parse(driverID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid driver id"))
			return
		}
		filter.DriverID = &id
	}

	if raw := strings.TrimSpace(c.Query("departure_from")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid departure_from"))
			return
		}
		filter.DepartureFrom = &t
	}

	if raw := strings.TrimSpace(c.Query("departure_to")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid departure_to"))
			return
		}
		filter.DepartureTo = &t
	}

	trips, err := h.tripService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trips))
}

func (h *Handler) assignTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	var req struct {
		TruckID  *string `json:"truck_id"`
		DriverID *string `json:"driver_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trip, err := h.tripService.Assign(c.Request.Context(), principal, id, service.AssignTripInput{
		TruckID:  req.TruckID,
		DriverID: req.DriverID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) updateTripStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	next := model.TripStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	trip, err := h.tripService.UpdateStatus(c.Request.Context(), principal, id, next)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) startTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	trip, err := h.tripService.UpdateStatus(c.Request.Context(), principal, id, model.TripStatusInProgress)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) completeTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	trip, err := h.tripService.UpdateStatus(c.Request.Context(), principal, id, model.TripStatusCompleted)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) deleteTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	if err := h.tripService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Cargo handlers

func (h *Handler) addCargoItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	tripID := strings.TrimSpace(c.Param("id"))
	if tripID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	var req struct {
		Description string   `json:"description" binding:"required"`
		WeightTons  *float64 `json:"weight_tons"`
		ValueUSD    *float64 `json:"value_usd"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	item, err := h.tripService.AddCargoItem(c.Request.Context(), principal, tripID, service.CargoItemInput{
		Description: req.Description,
		WeightTons:  req.WeightTons,
		ValueUSD:    req.ValueUSD,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(item))
}

func (h *Handler) listCargo(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	tripID := strings.TrimSpace(c.Param("id"))
	if tripID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip id"))
		return
	}

	items, err := h.tripService.ListCargo(c.Request.Context(), principal, tripID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(items))
}

func (h *Handler) deleteCargoItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid cargo item id"))
		return
	}

	if err := h.tripService.DeleteCargoItem(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Maintenance handlers

func (h *Handler) createMaintenance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		TruckID          string             `json:"truck_id" binding:"required"`
		MaintenanceTypes []string           `json:"maintenance_types" binding:"required"`
		ServiceType      *model.ServiceType `json:"service_type"`
		ServiceDate      string             `json:"service_date" binding:"required"`
		Cost             float64            `json:"cost"`
		Technician       *string            `json:"technician"`
		Provider         *string            `json:"provider"`
		ItemsPurchased   *string            `json:"items_purchased"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.maintenanceService.Create(c.Request.Context(), principal, service.CreateMaintenanceInput{
		TruckID:          req.TruckID,
		MaintenanceTypes: req.MaintenanceTypes,
		ServiceType:      req.ServiceType,
		ServiceDate:      req.ServiceDate,
		Cost:             req.Cost,
		Technician:       req.Technician,
		Provider:         req.Provider,
		ItemsPurchased:   req.ItemsPurchased,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) getMaintenance(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid maintenance record id"))
		return
	}

	record, err := h.maintenanceService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) listMaintenance(c *gin.Context) {
	filter := repository.MaintenanceListFilter{}

	truckID := strings.TrimSpace(c.Query("truck_id"))
	if truckID != "" {
		id, err := uuid.Parse(truckID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
			return
		}
		filter.TruckID = &id
	}

	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		ms := model.MaintenanceStatus(strings.ToUpper(status))
		filter.Status = &ms
	}

	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid date_from"))
			return
		}
		filter.DateFrom = &t
	}

	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid date_to"))
			return
		}
		filter.DateTo = &t
	}

	records, err := h.maintenanceService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) updateMaintenance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid maintenance record id"))
		return
	}

	var req struct {
		MaintenanceTypes []string                 `json:"maintenance_types"`
		ServiceType      *model.ServiceType       `json:"service_type"`
		ServiceDate      *string                  `json:"service_date"`
		Cost             *float64                 `json:"cost"`
		Status           *model.MaintenanceStatus `json:"status"`
		Technician       *string                  `json:"technician"`
		Provider         *string                  `json:"provider"`
		ItemsPurchased   *string                  `json:"items_purchased"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.maintenanceService.Update(c.Request.Context(), principal, id, service.UpdateMaintenanceInput{
		MaintenanceTypes: req.MaintenanceTypes,
		ServiceType:      req.ServiceType,
		ServiceDate:      req.ServiceDate,
		Cost:             req.Cost,
		Status:           req.Status,
		Technician:       req.Technician,
		Provider:         req.Provider,
		ItemsPurchased:   req.ItemsPurchased,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteMaintenance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid maintenance record id"))
		return
	}

	if err := h.maintenanceService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Fuel handlers

func (h *Handler) recordFuel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		TruckID         string            `json:"truck_id" binding:"required"`
		Liters          float64           `json:"liters" binding:"required"`
		CostPerLiter    float64           `json:"cost_per_liter"`
		TotalCost       *float64          `json:"total_cost"`
		FuelDate        string            `json:"fuel_date" binding:"required"`
		OdometerReading *float64          `json:"odometer_reading"`
		Source          *model.FuelSource `json:"source"`
		TankID          *string           `json:"tank_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fuelService.RecordFuel(c.Request.Context(), principal, service.RecordFuelInput{
		TruckID:         req.TruckID,
		Liters:          req.Liters,
		CostPerLiter:    req.CostPerLiter,
		TotalCost:       req.TotalCost,
		FuelDate:        req.FuelDate,
		OdometerReading: req.OdometerReading,
		Source:          req.Source,
		TankID:          req.TankID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) listFuelRecords(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.FuelListFilter{}

	truckID := strings.TrimSpace(c.Query("truck_id"))
	if truckID != "" {
		id, err := uuid.Parse(truckID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid truck id"))
			return
		}
		filter.TruckID = &id
	}

	source := strings.TrimSpace(c.Query("source"))
	if source != "" {
		fs := model.FuelSource(strings.ToUpper(source))
		filter.Source = &fs
	}

	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid date_from"))
			return
		}
		filter.DateFrom = &t
	}

	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid date_to"))
			return
		}
		filter.DateTo = &t
	}

	records, err := h.fuelService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) deleteFuelRecord(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid fuel record id"))
		return
	}

	if err := h.fuelService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reserve tank handlers

func (h *Handler) createTank(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Name           string  `json:"name" binding:"required"`
		CapacityLiters float64 `json:"capacity_liters" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	tank, err := h.fuelService.CreateTank(c.Request.Context(), principal, service.CreateTankInput{
		Name:           req.Name,
		CapacityLiters: req.CapacityLiters,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(tank))
}

func (h *Handler) listTanks(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	tanks, err := h.fuelService.ListTanks(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(tanks))
}

func (h *Handler) refillTank(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid tank id"))
		return
	}

	var req struct {
		Liters       float64 `json:"liters" binding:"required"`
		CostPerLiter float64 `json:"cost_per_liter"`
		Supplier     *string `json:"supplier"`
		RefilledAt   string  `json:"refilled_at" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	refill, err := h.fuelService.RefillTank(c.Request.Context(), principal, id, service.RefillTankInput{
		Liters:       req.Liters,
		CostPerLiter: req.CostPerLiter,
		Supplier:     req.Supplier,
		RefilledAt:   req.RefilledAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(refill))
}

func (h *Handler) listRefills(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid tank id"))
		return
	}

	refills, err := h.fuelService.ListRefills(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(refills))
}

// Inventory handlers

func (h *Handler) createInventoryItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Name         string  `json:"name" binding:"required"`
		PartNumber   string  `json:"part_number" binding:"required"`
		Quantity     int     `json:"quantity"`
		UnitCostKSH  float64 `json:"unit_cost_ksh"`
		ReorderLevel int     `json:"reorder_level"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	item, err := h.inventoryService.Create(c.Request.Context(), principal, service.CreateInventoryItemInput{
		Name:         req.Name,
		PartNumber:   req.PartNumber,
		Quantity:     req.Quantity,
		UnitCostKSH:  req.UnitCostKSH,
		ReorderLevel: req.ReorderLevel,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(item))
}

func (h *Handler) listInventory(c *gin.Context) {
	items, err := h.inventoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(items))
}

func (h *Handler) listLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(items))
}

func (h *Handler) adjustInventory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid inventory item id"))
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	item, err := h.inventoryService.AdjustQuantity(c.Request.Context(), principal, id, req.Delta)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(item))
}

func (h *Handler) deleteInventoryItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid inventory item id"))
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
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

func parseTime(raw string) (time.Time, error) {
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
	return time.Time{}, errors.New("invalid time format")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
)

type machineHandler struct {
	machineService portssvc.MachineSvcFacade
}

func newMachineHandler(ms portssvc.MachineSvcFacade) *machineHandler {
	return &machineHandler{machineService: ms}
}

// registerMachineRoutes wires up machine status routes. The bulk reset is
// restricted to owners and cashiers; the read and single-status routes are
// open to every authenticated role.
func registerMachineRoutes(rg *gin.RouterGroup, ms portssvc.MachineSvcFacade) {
	h := newMachineHandler(ms)

	branchMachines := rg.Group("/branches/:branchID/machines")
	{
		branchMachines.GET("", h.listMachines)
		branchMachines.POST("/reset", middleware.RequireRoles(domain.RoleOwner, domain.RoleCashier), h.bulkResetMachines)
	}

	machines := rg.Group("/machines")
	{
		machines.GET("/:machineID", h.getMachineByID)
		machines.PATCH("/:machineID/status", h.setMachineStatus)
	}
}

// listMachines godoc
// @Summary List machines for a branch
// @Description Retrieves every washer and dryer registered at a branch with its current status.
// @Tags machines
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {array} dto.MachineResponse "Machines"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /branches/{branchID}/machines [get]
// @Security BearerAuth
func (h *machineHandler) listMachines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	machines, err := h.machineService.ListMachines(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list machines", "branch_id", branchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponses(machines))
}

// getMachineByID godoc
// @Summary Get a machine
// @Description Retrieves a single machine by ID.
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Success 200 {object} dto.MachineResponse "Machine details"
// @Failure 404 {object} map[string]string "Machine not found"
// @Router /machines/{machineID} [get]
// @Security BearerAuth
func (h *machineHandler) getMachineByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	machineID := c.Param("machineID")

	machine, err := h.machineService.GetMachineByID(c.Request.Context(), machineID)
	if err != nil {
		logger.Warn("Failed to get machine", "machine_id", machineID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// setMachineStatus godoc
// @Summary Set a machine's status
// @Description Overwrites a machine's status. Any status may move to any other.
// @Tags machines
// @Accept json
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param status body dto.SetMachineStatusRequest true "New status"
// @Success 200 {object} dto.MachineResponse "Updated machine"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Machine not found"
// @Router /machines/{machineID}/status [patch]
// @Security BearerAuth
func (h *machineHandler) setMachineStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	machineID := c.Param("machineID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.SetMachineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid set machine status request", "machine_id", machineID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	machine, err := h.machineService.SetStatus(c.Request.Context(), machineID, req.Status, actorID)
	if err != nil {
		logger.Error("Failed to set machine status", "machine_id", machineID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// bulkResetMachines godoc
// @Summary Reset all machines in a branch to available
// @Description Best-effort shift-start reset: every machine is set to AVAILABLE, per-machine failures are counted rather than aborting the batch.
// @Tags machines
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {object} dto.BulkResetResponse "Per-row outcome"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /branches/{branchID}/machines/reset [post]
// @Security BearerAuth
func (h *machineHandler) bulkResetMachines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := h.machineService.BulkSetAvailable(c.Request.Context(), branchID, actorID)
	if err != nil {
		logger.Error("Failed to bulk reset machines", "branch_id", branchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

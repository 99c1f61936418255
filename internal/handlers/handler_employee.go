package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
)

type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes wires up employee account routes. All of them are
// owner-only except the self-profile lookup.
func registerEmployeeRoutes(rg *gin.RouterGroup, es portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(es)

	rg.GET("/me", h.getProfile)

	employees := rg.Group("/employees", middleware.RequireRoles(domain.RoleOwner))
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:employeeID", h.getEmployeeByID)
		employees.PATCH("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deactivateEmployee)
	}
}

// getProfile godoc
// @Summary Get the authenticated employee's profile
// @Description Retrieves the employee record behind the current session token.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.EmployeeResponse "Profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /me [get]
// @Security BearerAuth
func (h *employeeHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to get profile", "employee_id", employeeID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves employees, optionally filtered by branch. Owner only.
// @Tags employees
// @Produce json
// @Param branchID query string false "Branch filter"
// @Success 200 {array} dto.EmployeeResponse "Employees"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /employees [get]
// @Security BearerAuth
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var branchID *string
	if v := c.Query("branchID"); v != "" {
		branchID = &v
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list employees", "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// createEmployee godoc
// @Summary Register an employee
// @Description Creates a new local-auth employee account. Cashier accounts require a branch. Owner only.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse "Created employee"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Failure 409 {object} map[string]string "Duplicate username"
// @Router /employees [post]
// @Security BearerAuth
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create employee request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create employee", "username", req.Username, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployeeByID godoc
// @Summary Get an employee
// @Description Retrieves an employee by ID. Owner only.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse "Employee details"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{employeeID} [get]
// @Security BearerAuth
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		logger.Warn("Failed to get employee", "employee_id", employeeID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Updates mutable employee details. Owner only.
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse "Updated employee"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{employeeID} [patch]
// @Security BearerAuth
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update employee request", "employee_id", employeeID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req, actorID)
	if err != nil {
		logger.Error("Failed to update employee", "employee_id", employeeID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Description Soft-deletes an employee account so it can no longer sign in. Owner only.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{employeeID} [delete]
// @Security BearerAuth
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), employeeID, actorID); err != nil {
		logger.Error("Failed to deactivate employee", "employee_id", employeeID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

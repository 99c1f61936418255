package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
)

type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{branchService: bs}
}

// registerBranchRoutes wires up branch routes. Writes are owner-only.
func registerBranchRoutes(rg *gin.RouterGroup, bs portssvc.BranchSvcFacade) {
	h := newBranchHandler(bs)
	branches := rg.Group("/branches")
	{
		branches.GET("", h.listBranches)
		branches.GET("/:branchID", h.getBranchByID)
		branches.POST("", middleware.RequireRoles(domain.RoleOwner), h.createBranch)
		branches.PATCH("/:branchID", middleware.RequireRoles(domain.RoleOwner), h.updateBranch)
	}
}

// listBranches godoc
// @Summary List branches
// @Description Retrieves all branches. Inactive branches are included when includeInactive=true.
// @Tags branches
// @Produce json
// @Param includeInactive query bool false "Include inactive branches"
// @Success 200 {array} dto.BranchResponse "Branches"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /branches [get]
// @Security BearerAuth
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	branches, err := h.branchService.ListBranches(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list branches", "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponses(branches))
}

// getBranchByID godoc
// @Summary Get a branch
// @Description Retrieves a single branch by ID.
// @Tags branches
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse "Branch details"
// @Failure 404 {object} map[string]string "Branch not found"
// @Router /branches/{branchID} [get]
// @Security BearerAuth
func (h *branchHandler) getBranchByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), branchID)
	if err != nil {
		logger.Warn("Failed to get branch", "branch_id", branchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// createBranch godoc
// @Summary Register a new branch
// @Description Creates a new laundry outlet. Owner only.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse "Created branch"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Failure 409 {object} map[string]string "Duplicate branch code"
// @Router /branches [post]
// @Security BearerAuth
func (h *branchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create branch request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create branch", "code", req.Code, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// updateBranch godoc
// @Summary Update a branch
// @Description Updates branch details. Owner only. Omitted fields are left unchanged.
// @Tags branches
// @Accept json
// @Produce json
// @Param branchID path string true "Branch ID"
// @Param branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.BranchResponse "Updated branch"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Failure 404 {object} map[string]string "Branch not found"
// @Router /branches/{branchID} [patch]
// @Security BearerAuth
func (h *branchHandler) updateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update branch request", "branch_id", branchID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), branchID, req, actorID)
	if err != nil {
		logger.Error("Failed to update branch", "branch_id", branchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

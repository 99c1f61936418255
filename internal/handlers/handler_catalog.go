package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes wires up catalog routes. Reads are open to every
// authenticated role; catalog writes are owner-only.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(cs)

	branches := rg.Group("/branches/:branchID")
	{
		branches.GET("/services", h.listServices)
		branches.GET("/products", h.listProducts)
	}

	catalog := rg.Group("/catalog", middleware.RequireRoles(domain.RoleOwner))
	{
		catalog.POST("/services", h.createService)
		catalog.POST("/products", h.createProduct)
	}
}

// listServices godoc
// @Summary List active services for a branch
// @Description Retrieves the priced laundry services offered at a branch.
// @Tags catalog
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {array} dto.CatalogServiceResponse "Services"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /branches/{branchID}/services [get]
// @Security BearerAuth
func (h *catalogHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	services, err := h.catalogService.ListServices(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list services", "branch_id", branchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	responses := make([]dto.CatalogServiceResponse, len(services))
	for i := range services {
		responses[i] = dto.ToCatalogServiceResponse(&services[i])
	}
	c.JSON(http.StatusOK, responses)
}

// listProducts godoc
// @Summary List active products for a branch
// @Description Retrieves the over-the-counter products sold at a branch.
// @Tags catalog
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {array} dto.CatalogProductResponse "Products"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /branches/{branchID}/products [get]
// @Security BearerAuth
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	products, err := h.catalogService.ListProducts(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list products", "branch_id", branchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	responses := make([]dto.CatalogProductResponse, len(products))
	for i := range products {
		responses[i] = dto.ToCatalogProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createService godoc
// @Summary Add a service to a branch catalog
// @Description Registers a new priced laundry service. Owner only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.CatalogServiceResponse "Created service"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Failure 409 {object} map[string]string "Duplicate service name"
// @Router /catalog/services [post]
// @Security BearerAuth
func (h *catalogHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create service request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create service", "branch_id", req.BranchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCatalogServiceResponse(service))
}

// createProduct godoc
// @Summary Add a product to a branch catalog
// @Description Registers a new over-the-counter product. Owner only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.CatalogProductResponse "Created product"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Failure 409 {object} map[string]string "Duplicate product name"
// @Router /catalog/products [post]
// @Security BearerAuth
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create product request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create product", "branch_id", req.BranchID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCatalogProductResponse(product))
}

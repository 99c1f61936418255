package dto

import "github.com/KilauLaundry/laundry_pos_app/internal/core/domain"

// CreateBranchRequest registers a new outlet.
type CreateBranchRequest struct {
	Code    string `json:"code" binding:"required,uppercase,max=8"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateBranchRequest updates outlet details. Pointers distinguish omitted
// fields from zero values.
type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// BranchResponse is the branch view returned to clients.
type BranchResponse struct {
	BranchID string `json:"branchID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
}

// ToBranchResponse converts a domain.Branch to its response DTO.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID: b.BranchID,
		Code:     b.Code,
		Name:     b.Name,
		Address:  b.Address,
		Phone:    b.Phone,
		IsActive: b.IsActive,
	}
}

// ToBranchResponses converts a slice of branches.
func ToBranchResponses(bs []domain.Branch) []BranchResponse {
	responses := make([]BranchResponse, len(bs))
	for i := range bs {
		responses[i] = ToBranchResponse(&bs[i])
	}
	return responses
}

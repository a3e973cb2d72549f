// Package models defines request, filter and response shapes shared between
// the API layer and the services.
package models

// CreateAnimaRequest creates a new anima for the authenticated user.
type CreateAnimaRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Description    string                 `json:"description"`
	Metadata       map[string]interface{} `json:"metadata"`
	OrganizationID string                 `json:"organization_id" binding:"required"`
}

// UpdateAnimaRequest patches mutable anima fields. Nil pointers are left
// untouched.
type UpdateAnimaRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
	IsDormant   *bool                  `json:"is_dormant"`
}

// AnimaFilters narrows anima listings.
type AnimaFilters struct {
	IncludeDeleted bool
	IncludeDormant bool
	Limit          int
	Offset         int
}

// CascadeResult reports per-table row counts touched by a cascade
// soft-delete or restore.
type CascadeResult struct {
	Counts map[string]int `json:"counts"`
}
